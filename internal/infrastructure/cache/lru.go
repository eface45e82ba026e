// Package cache provides bounded caches for the application layer.
package cache

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bnema/listnav/internal/application/port"
)

// LRU is a fixed-capacity cache that evicts the least recently used entry.
// Get and Set both count as a use. It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	capacity int

	mu sync.Mutex
	// Oldest pair is the eviction candidate; every use moves a key to the back.
	entries *orderedmap.OrderedMap[K, V]
}

var _ port.Cache[string, int] = (*LRU[string, int])(nil)

// NewLRU creates a cache holding at most capacity entries (at least one).
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		capacity: max(1, capacity),
		entries:  orderedmap.New[K, V](),
	}
}

// Get returns the cached value for key.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries.Get(key)
	if ok {
		_ = c.entries.MoveToBack(key)
	}
	return v, ok
}

// Set stores value under key, evicting the oldest entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, present := c.entries.Set(key, value); present {
		_ = c.entries.MoveToBack(key)
		return
	}
	for c.entries.Len() > c.capacity {
		c.entries.Delete(c.entries.Oldest().Key)
	}
}

// Remove drops key. Missing keys are ignored.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Delete(key)
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Clear drops every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = orderedmap.New[K, V]()
}
