package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// Cache is the process-wide cache for hot catalog lists.
var Cache *cache.Cache

// InitCache sets up the global cache (5 min default TTL, 10 min sweep).
func InitCache() {
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// CacheGet reads a value from the global cache.
func CacheGet(key string) (interface{}, bool) {
	return Cache.Get(key)
}

// CacheSet stores a value in the global cache.
func CacheSet(key string, value interface{}, duration time.Duration) {
	Cache.Set(key, value, duration)
}

// CacheDelete removes a key from the global cache.
func CacheDelete(key string) {
	Cache.Delete(key)
}

// CacheClear drops everything from the global cache.
func CacheClear() {
	Cache.Flush()
}

// cacheItem wraps a value with its expiry.
type cacheItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// QueryCache is a bounded TTL cache over an LRU, used for ranked catalog
// query results keyed by their filter.
type QueryCache[T any] struct {
	storage *lru.Cache[string, cacheItem[T]]
	ttl     time.Duration
}

// NewQueryCache builds a cache holding at most size entries for ttl each.
func NewQueryCache[T any](size int, ttl time.Duration) *QueryCache[T] {
	// lru.New is thread safe
	c, _ := lru.New[string, cacheItem[T]](size)
	return &QueryCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

// Set stores a value; Add handles both insert and update.
func (c *QueryCache[T]) Set(key string, value T) {
	item := cacheItem[T]{
		Value:     value,
		ExpiredAt: time.Now().Add(c.ttl),
	}
	c.storage.Add(key, item)
}

// Get reads a value, dropping it when expired.
func (c *QueryCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}

	if time.Now().After(item.ExpiredAt) {
		c.storage.Remove(key)
		return zero, false
	}

	return item.Value, true
}

// Delete removes a key.
func (c *QueryCache[T]) Delete(key string) {
	c.storage.Remove(key)
}

// Clear empties the cache.
func (c *QueryCache[T]) Clear() {
	c.storage.Purge()
}

// Len reports the current number of entries.
func (c *QueryCache[T]) Len() int {
	return c.storage.Len()
}
