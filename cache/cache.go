// Package cache provides a thread-safe LRU cache with hit/miss statistics,
// used by the boundary point cache.
package cache

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is the default maximum number of entries.
const DefaultCapacity = 256

// LRU is a thread-safe LRU cache with a fixed capacity.
//
// Features:
//   - LRU eviction with configurable capacity
//   - Thread-safe for concurrent access
//   - Atomic statistics for monitoring
//   - GetOrCreate to prevent duplicate computation
type LRU[K comparable, V any] struct {
	mu    sync.Mutex
	inner *lru.Cache[K, V]

	capacity int

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a new LRU cache with the specified capacity.
// If capacity <= 0, DefaultCapacity (256) is used.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &LRU[K, V]{capacity: capacity}
	// lru.New only fails for capacity <= 0, which is ruled out above.
	c.inner, _ = lru.New[K, V](capacity)
	return c
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
//
// On cache hit, the entry is moved to the front of the LRU list.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	value, ok := c.inner.Get(key)
	c.mu.Unlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return value, ok
}

// Set stores a value in the cache, evicting the oldest entry if the cache
// is at capacity.
//
// The value is stored as-is (not copied). Callers should not modify it
// after caching.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	if c.inner.Add(key, value) {
		c.evictions.Add(1)
	}
	c.mu.Unlock()
}

// GetOrCreate returns a cached value or creates it using the provided
// function. This is the preferred method for cache access as it prevents
// duplicate computation.
//
// The create function is called with the cache lock held to prevent
// thundering herd. Keep the create function fast to minimize contention.
// If create returns an error, nothing is cached and the error is returned.
func (c *LRU[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.inner.Get(key); ok {
		c.hits.Add(1)
		return value, nil
	}
	c.misses.Add(1)

	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}

	if c.inner.Add(key, value) {
		c.evictions.Add(1)
	}
	return value, nil
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Remove(key)
}

// Clear removes all entries from the cache.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	c.inner.Purge()
	c.mu.Unlock()
}

// Len returns the current number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	evictions := c.evictions.Load()

	var hitRate float64
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: evictions,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *LRU[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the cache capacity.
	Capacity int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries.
	Evictions uint64
}
