// Package lru contains a size-bounded least recently used cache.
// It is inspired by the Cache type at https://github.com/hashicorp/golang-lru.
package lru

import (
	"sync"

	"go.lepak.sg/sfmovies/lmap"
)

const DefaultCacheMax = 100

// Cache is a LRU cache. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu  sync.Mutex
	l   *lmap.LinkedMap[K, V]
	max int

	hits, misses int
}

// New creates a new Cache ready for use, holding at most max entries.
// If max <= 0, DefaultCacheMax is used.
func New[K comparable, V any](max int) *Cache[K, V] {
	if max <= 0 {
		max = DefaultCacheMax
	}

	return &Cache[K, V]{
		l:   lmap.New[K, V](),
		max: max,
	}
}

// Add adds a key-value pair to the cache, making it the most recently
// used. If the least recently used entry had to make room for it,
// Add returns true.
func (c *Cache[K, V]) Add(key K, value V) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.l.Get(key, false); !ok && c.l.Len() >= c.max {
		_, _, evicted = c.l.Head(true)
	}

	c.l.Set(key, value, true)
	return
}

// Get reads a value from the cache and marks it as recently used.
// If the key was not found, ok will be false.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok = c.l.Get(key, true)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return
}

// Len returns the number of entries in the cache.
func (c *Cache[_, _]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.l.Len()
}

// Stats returns the number of Get calls that found and did not find
// their key.
func (c *Cache[_, _]) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// Keys returns the keys in the cache, least recently used first.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	ks := make([]K, 0, c.l.Len())
	for k := range c.l.All() {
		ks = append(ks, k)
	}

	return ks
}
