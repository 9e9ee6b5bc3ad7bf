package cache

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nextstep-io/jobtrust/internal/model"
)

func TestFingerprint_NormalizesText(t *testing.T) {
	a := Fingerprint("Software   Engineer\nat Google")
	b := Fingerprint("software engineer at google")
	if a != b {
		t.Errorf("Expected normalized texts to share a fingerprint: %s vs %s", a, b)
	}

	c := Fingerprint("software engineer at amazon")
	if a == c {
		t.Error("Expected different texts to produce different fingerprints")
	}

	if !strings.HasPrefix(a, "jobtrust:v1:") {
		t.Errorf("Expected versioned key prefix, got %s", a)
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(5*time.Minute, 100)

	key := Fingerprint("some posting text")
	result := model.ScanResult{ScanID: "abc", Score: 72, RiskLevel: model.RiskLow}

	if err := c.Set(key, result, 5*time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("Expected cache hit")
	}
	if got.ScanID != "abc" || got.Score != 72 {
		t.Errorf("Expected stored result, got %+v", got)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(5*time.Minute, 100)

	if _, found := c.Get("jobtrust:v1:missing"); found {
		t.Error("Expected cache miss")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(5*time.Minute, 100)

	key := Fingerprint("expiring posting")
	c.Set(key, model.ScanResult{ScanID: "abc"}, 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Error("Expected entry to expire")
	}
}

func TestMemoryCache_EvictsOldestAtCapacity(t *testing.T) {
	c := NewMemoryCache(5*time.Minute, 3)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key-%d", i), model.ScanResult{Score: i}, 5*time.Minute)
	}
	c.Set("key-3", model.ScanResult{Score: 3}, 5*time.Minute)

	if _, found := c.Get("key-0"); found {
		t.Error("Expected oldest entry evicted")
	}
	for i := 1; i <= 3; i++ {
		if _, found := c.Get(fmt.Sprintf("key-%d", i)); !found {
			t.Errorf("Expected key-%d to survive", i)
		}
	}
}

func TestMemoryCache_OverwriteDoesNotEvict(t *testing.T) {
	c := NewMemoryCache(5*time.Minute, 3)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key-%d", i), model.ScanResult{Score: i}, 5*time.Minute)
	}
	// Rewriting an existing key must not push anything out
	c.Set("key-1", model.ScanResult{Score: 99}, 5*time.Minute)

	for i := 0; i < 3; i++ {
		if _, found := c.Get(fmt.Sprintf("key-%d", i)); !found {
			t.Errorf("Expected key-%d to survive overwrite", i)
		}
	}

	got, _ := c.Get("key-1")
	if got.Score != 99 {
		t.Errorf("Expected last write to win, got %+v", got)
	}
}

func TestMemoryCache_ExpiredEntriesFreeCapacity(t *testing.T) {
	c := NewMemoryCache(5*time.Minute, 2)

	c.Set("key-0", model.ScanResult{Score: 0}, 10*time.Millisecond)
	c.Set("key-1", model.ScanResult{Score: 1}, 5*time.Minute)

	time.Sleep(30 * time.Millisecond)

	// key-0 is expired; inserting must evict it, not key-1
	c.Set("key-2", model.ScanResult{Score: 2}, 5*time.Minute)

	if _, found := c.Get("key-1"); !found {
		t.Error("Expected live entry to survive when an expired one could be dropped")
	}
	if _, found := c.Get("key-2"); !found {
		t.Error("Expected new entry present")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(5*time.Minute, 100)

	c.Set("key-0", model.ScanResult{}, 5*time.Minute)
	c.Set("key-1", model.ScanResult{}, 5*time.Minute)

	c.Delete("key-0")
	if _, found := c.Get("key-0"); found {
		t.Error("Expected deleted entry gone")
	}

	c.Clear()
	if _, found := c.Get("key-1"); found {
		t.Error("Expected cache empty after clear")
	}
	if c.Len() != 0 {
		t.Errorf("Expected length 0, got %d", c.Len())
	}
}

func TestMemoryCache_ConcurrentWriters(t *testing.T) {
	c := NewMemoryCache(5*time.Minute, 100)
	key := Fingerprint("contended posting")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Set(key, model.ScanResult{Score: n}, 5*time.Minute)
		}(i)
	}
	wg.Wait()

	if _, found := c.Get(key); !found {
		t.Error("Expected one of the concurrent writes to be stored")
	}
}
