package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/nextstep-io/jobtrust/internal/match"
	"github.com/nextstep-io/jobtrust/internal/model"
)

// Cache defines the interface for scan result caching
type Cache interface {
	Get(key string) (model.ScanResult, bool)
	Set(key string, result model.ScanResult, ttl time.Duration) error
	Delete(key string) error
	Clear() error
	Len() int
}

// Fingerprint generates a cache key from posting text. The text is
// normalized first so whitespace and casing differences hit the same
// entry.
func Fingerprint(text string) string {
	hash := sha256.Sum256([]byte(match.Normalize(text)))
	return "jobtrust:v1:" + hex.EncodeToString(hash[:])
}
