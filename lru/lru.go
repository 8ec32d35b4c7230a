// Package lru provides a capacity-bounded, recency-ordered key/value cache
// with hit/miss accounting.
//
// A Cache is not safe for concurrent use. It is meant to be owned by a single
// render loop; hosts that share one across goroutines must serialize access.
package lru

import (
	"container/list"
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned by New for a capacity below 1.
var ErrInvalidCapacity = errors.New("lru: capacity must be positive")

// Stats is a snapshot of the cache's lookup counters.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Ratio returns Hits/(Hits+Misses), or 0 when nothing has been looked up.
func (s Stats) Ratio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (s Stats) String() string {
	return fmt.Sprintf("hits=%d misses=%d ratio=%.2f", s.Hits, s.Misses, s.Ratio())
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache maps keys to values, evicting the least recently used key once more
// than Cap keys are stored.
type Cache[K comparable, V any] struct {
	capacity int
	order    *list.List // front = most recently used
	items    map[K]*list.Element
	stats    Stats
}

// New returns an empty cache holding at most capacity keys.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}, nil
}

// MustNew is New for capacities known to be valid; it panics otherwise.
func MustNew[K comparable, V any](capacity int) *Cache[K, V] {
	c, err := New[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return c
}

// Set stores value under key and marks key most recently used.
func (c *Cache[K, V]) Set(key K, value V) {
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry[K, V]).key)
	}
}

// Get returns the value stored under key. A present key counts as a hit and
// becomes most recently used, whatever its value; an absent key counts as a
// miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Peek returns the value under key without touching recency or stats.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if el, ok := c.items[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is stored, without touching recency or stats.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Remove deletes key and returns the value it held. Stats are unaffected.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.Remove(el)
	delete(c.items, key)
	return el.Value.(*entry[K, V]).value, true
}

// Keys returns the stored keys, most recently used first.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[K, V]).key)
	}
	return keys
}

// Len returns the number of stored keys.
func (c *Cache[K, V]) Len() int { return c.order.Len() }

// Cap returns the maximum number of stored keys.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Stats returns the hit/miss counters accumulated since the last Clear.
func (c *Cache[K, V]) Stats() Stats { return c.stats }

// Clear drops every entry and resets the stats.
func (c *Cache[K, V]) Clear() {
	c.order.Init()
	clear(c.items)
	c.stats = Stats{}
}
