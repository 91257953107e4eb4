// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package cache provides a thread-safe LRU cache with TTL support.
//
// The recommendation system stores computed responses here keyed by target,
// parameters and graph version, so a mutation of the rating graph naturally
// stops old entries from being served.
package cache

import (
	"sync"
	"time"
)

// entry is a node in the LRU list.
type entry[V any] struct {
	key       string
	value     V
	prev      *entry[V]
	next      *entry[V]
	expiresAt time.Time
}

// Stats contains cache statistics.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`

	// Evictions counts entries dropped to make room at capacity.
	Evictions int64 `json:"evictions"`

	// Expired counts entries dropped because their TTL had passed.
	Expired int64 `json:"expired"`

	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

// LRUCache implements a thread-safe Least Recently Used cache with TTL support.
//
// Key features:
//   - O(1) Get, Add, Remove operations
//   - O(1) LRU eviction when capacity is reached
//   - TTL support with lazy expiration
//   - Thread-safe operations
//
// A doubly-linked list keeps recency order and a map provides lookups.
type LRUCache[V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration

	items map[string]*entry[V]

	// head.next is the most recently used, tail.prev the least recently used
	head *entry[V]
	tail *entry[V]

	hits      int64
	misses    int64
	evictions int64
	expired   int64

	now func() time.Time
}

// NewLRUCache creates a new LRU cache with the specified capacity and TTL.
func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 10000
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	c := &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry[V], capacity),
		head:     &entry[V]{},
		tail:     &entry[V]{},
		now:      time.Now,
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get retrieves a value from the cache.
// Found entries are moved to the front (most recently used).
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, exists := c.items[key]
	if !exists {
		c.misses++
		return zero, false
	}

	if c.now().After(e.expiresAt) {
		c.removeEntry(e)
		c.expired++
		c.misses++
		return zero, false
	}

	c.moveToFront(e)
	c.hits++
	return e.value, true
}

// Add adds or updates an entry in the cache.
// If the cache is at capacity, the least recently used entry is evicted.
func (c *LRUCache[V]) Add(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)

	if e, exists := c.items[key]; exists {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry[V]{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	}
	c.addToFront(e)
	c.items[key] = e

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Remove removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *LRUCache[V]) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.items[key]; exists {
		c.removeEntry(e)
		return true
	}
	return false
}

// Len returns the current number of entries in the cache.
func (c *LRUCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries from the cache.
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// CleanupExpired removes all expired entries from the cache.
// Returns the number of entries removed.
func (c *LRUCache[V]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	// Walk from tail (oldest) to head (newest)
	for e := c.tail.prev; e != c.head; {
		prev := e.prev
		if now.After(e.expiresAt) {
			c.removeEntry(e)
			removed++
		}
		e = prev
	}

	c.expired += int64(removed)
	return removed
}

// Stats returns cache hit/miss statistics.
func (c *LRUCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Expired:   c.expired,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Internal methods (must be called with lock held)

func (c *LRUCache[V]) addToFront(e *entry[V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRUCache[V]) moveToFront(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *LRUCache[V]) removeEntry(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}

func (c *LRUCache[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.evictions++
}
