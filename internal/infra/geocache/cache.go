// Package geocache implements the short-TTL memoization layer in front of
// the geocoding provider. The cache is advisory: absence is never an
// error, it only triggers a provider call.
package geocache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a cached geocoding result stays valid. Entries
// older than this are treated as absent and evicted lazily on read.
const DefaultTTL = 60 * time.Second

// Cache is the port for the geocode debounce cache. Values are opaque
// serialized payloads (suggestion lists or resolved addresses); callers
// own the encoding.
type Cache interface {
	// Get returns the cached value for key, or false when the key is
	// absent or its entry has outlived the TTL.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key with a fresh timestamp, overwriting any
	// prior entry. Concurrent writes on the same key are last-write-wins.
	Set(ctx context.Context, key string, value []byte)

	// Clear drops all entries.
	Clear(ctx context.Context)
}

// AutocompleteKey builds the cache key for a free-text autocomplete
// query. Input is trimmed and lowercased so rapid near-identical
// keystroke queries collapse onto one slot.
func AutocompleteKey(input string) string {
	return "autocomplete:" + strings.ToLower(strings.TrimSpace(input))
}

// ReverseKey builds the cache key for a reverse geocode lookup. The
// coordinates are rounded to 4 decimal places (~11 m grid) so nearby
// repeated lookups share a slot.
func ReverseKey(lat, lng float64) string {
	return fmt.Sprintf("reverse:%.4f:%.4f", lat, lng)
}

type entry struct {
	value    []byte
	storedAt time.Time
}

// MemoryCache is the in-process implementation of Cache. It is created
// once at process start and injected into the location resolver, so
// tests can instantiate isolated instances with their own clock.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates a memory cache with the given TTL. A
// non-positive TTL falls back to DefaultTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock overrides the cache's clock. Test helper.
func (c *MemoryCache) WithClock(now func() time.Time) *MemoryCache {
	c.now = now

	return c
}

// Get implements Cache. Stale entries are evicted on read; evicting an
// already-evicted key is a no-op.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry since the read above.
		if cur, ok := c.entries[key]; ok && c.now().Sub(cur.storedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		return nil, false
	}

	return e.value, true
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
	c.mu.Unlock()
}

// Clear implements Cache.
func (c *MemoryCache) Clear(_ context.Context) {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
