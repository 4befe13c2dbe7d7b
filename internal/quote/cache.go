// Package quote provides the external valuation subsystem: a TTL-bounded
// price/NAV cache, HTTP clients for the external quote sources, and the
// resolver that couples caching policy to fetch policy.
package quote

import (
	"sync"
	"time"
)

// Cache is a process-wide TTL keyed store mapping a symbol or scheme code to
// its last successfully fetched quote. A single instance is constructed at
// startup and shared by all resolvers. Entries are replaced atomically; a
// failed fetch never touches the cache, so the previous value stays servable
// to concurrent callers until it expires.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry

	now func() time.Time
}

type cacheEntry struct {
	value     float64
	fetchedAt time.Time
}

// NewCache creates a Cache with the given time-to-live per entry.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached quote for key. The second return value is false for
// keys that were never fetched and for entries past their TTL; expired
// entries are never returned.
func (c *Cache) Get(key string) (float64, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return 0, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return 0, false
	}
	return entry.value, true
}

// Set stores a quote for key, replacing any previous entry and resetting its
// TTL. Last write wins on overlapping fetches for the same key.
func (c *Cache) Set(key string, value float64) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
	c.mu.Unlock()
}

// Flush drops every entry. Used by tests and the developer tooling.
func (c *Cache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
