// Package cache provides a concurrency-safe in-memory key-value store with
// per-entry time-to-live expiry, plus deterministic key derivation for the
// services that share it.
package cache

import (
	"sync"
	"time"
)

// entry pairs a cached value with its expiry instant. Entries never leave
// the cache; callers only ever see the value.
type entry[T any] struct {
	value     T
	createdAt time.Time
	expiresAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// Cache is a mutex-guarded expiring store. Expired entries are removed
// lazily on Get; Sweep only bounds memory and is never needed for
// correctness.
//
// There is no per-key locking, so population is not deduplicated across
// concurrent callers: two simultaneous misses for one key may each fetch
// upstream and both write, last writer wins.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
}

// New creates an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]entry[T])}
}

// Get returns the value stored under key if present and not expired. An
// expired entry is deleted on the way out; a clean miss has no side effect.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if e.expired(time.Now()) {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the given TTL, unconditionally
// overwriting any existing entry.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

// Delete removes the entry under key, reporting whether it existed.
func (c *Cache[T]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Clear empties the whole store.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[T])
}

// Sweep removes every expired entry and returns how many were removed.
func (c *Cache[T]) Sweep() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Size returns the number of stored entries, including expired ones that
// have not been swept yet.
func (c *Cache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
