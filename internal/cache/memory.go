package cache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/nextstep-io/jobtrust/internal/model"
)

// MemoryCache implements in-memory caching of scan results with a
// bounded entry count. TTL expiry is handled by the backing store;
// capacity is enforced here by evicting the oldest insertion first.
type MemoryCache struct {
	cache      *gocache.Cache
	maxEntries int

	mu    sync.Mutex
	order []string // insertion order, oldest first
}

// NewMemoryCache creates a new memory cache. maxEntries <= 0 means
// unbounded.
func NewMemoryCache(defaultTTL time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		cache:      gocache.New(defaultTTL, defaultTTL),
		maxEntries: maxEntries,
	}
}

// Get retrieves a scan result from the cache
func (c *MemoryCache) Get(key string) (model.ScanResult, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(model.ScanResult), true
	}
	return model.ScanResult{}, false
}

// Set stores a scan result with the given TTL. Concurrent writers to
// the same key race benignly: the last write wins and the earlier
// entry is simply replaced.
func (c *MemoryCache) Set(key string, result model.ScanResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.cache.Get(key); !exists {
		c.evictLocked()
		c.order = append(c.order, key)
	}
	c.cache.Set(key, result, ttl)
	return nil
}

// evictLocked makes room for one new entry. Expired entries drop out
// of the order index first; a live oldest entry is evicted only when
// the cache is genuinely full.
func (c *MemoryCache) evictLocked() {
	if c.maxEntries <= 0 {
		return
	}
	compact := c.order[:0]
	for _, k := range c.order {
		if _, live := c.cache.Get(k); live {
			compact = append(compact, k)
		}
	}
	c.order = compact

	for len(c.order) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.cache.Delete(oldest)
	}
}

// Delete removes a scan result from the cache
func (c *MemoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Delete(key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes all scan results from the cache
func (c *MemoryCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Flush()
	c.order = nil
	return nil
}

// Len reports the number of live entries
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
