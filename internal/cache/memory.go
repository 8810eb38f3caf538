package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL tells Set to use the cache's default expiration
const DefaultTTL = gocache.DefaultExpiration

// MemoryCache is an in-process TTL cache. It is safe for concurrent use.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache. A cleanupInterval <= 0 disables
// the background janitor; expired entries are still never returned.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get returns a copy of the stored value
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return append([]byte(nil), val.([]byte)...), true
}

// Set stores a copy of value. Pass DefaultTTL for the cache default.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}

// Len returns the number of stored entries, possibly including expired
// ones the janitor has not removed yet
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
