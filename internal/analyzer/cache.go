package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/zombar/searchintel/internal/models"
)

// resultCache is a TTL cache keyed on (result content hash, metric, mode).
// It is a cost/latency optimization only: disabling it never changes
// output. Safe for concurrent use; a miss race between two in-flight
// analyses of the same result costs at most duplicated work.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry

	// now is swappable for TTL tests.
	now func() time.Time
}

type cacheEntry struct {
	value      any
	provenance models.Provenance
	expiresAt  time.Time
}

func newResultCache() *resultCache {
	return &resultCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *resultCache) get(key string) (any, models.Provenance, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, "", false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent set may have
		// refreshed the entry.
		if cur, ok := c.entries[key]; ok && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, "", false
	}
	return entry.value, entry.provenance, true
}

func (c *resultCache) set(key string, value any, provenance models.Provenance, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		value:      value,
		provenance: provenance,
		expiresAt:  c.now().Add(ttl),
	}
	c.mu.Unlock()
}

// cacheKey builds a stable key from result content, metric name, and mode.
func cacheKey(result models.SearchResult, metric models.Metric, mode Mode) string {
	h := sha256.Sum256([]byte(result.Title + "\x00" + result.Description + "\x00" + result.URL))
	return fmt.Sprintf("%s:%s:%s", hex.EncodeToString(h[:]), metric, mode)
}
