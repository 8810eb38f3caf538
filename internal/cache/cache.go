package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores encoded analyses by key
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
	Len() int
}

// CacheKey derives a cache key from the post text
func CacheKey(post string) string {
	hash := sha256.Sum256([]byte(post))
	return "postguard:v1:" + hex.EncodeToString(hash[:])
}
