// Package cache internal/infrastructure/cache/memo.go
package cache

import (
	"sync"
	"time"
)

// entry is a cached value with the time it was stored.
type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Memo is a thread-safe in-memory cache with a fixed time-to-live. Both the
// country directory and rate lookups memoize through it; historical rates
// never change, so only "today" entries can go stale inside the window.
type Memo[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry[V]
}

// DefaultTTL is the staleness tolerance applied when none is configured.
const DefaultTTL = 24 * time.Hour

// NewMemo creates a cache with the given time-to-live.
func NewMemo[V any](ttl time.Duration) *Memo[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Memo[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
	}
}

// Get retrieves a value if present and not expired.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || time.Since(e.storedAt) > m.ttl {
		var zero V
		return zero, false
	}

	return e.value, true
}

// Put stores a value under key, resetting its age.
func (m *Memo[V]) Put(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry[V]{value: value, storedAt: time.Now()}
}

// GetOrFetch returns the cached value for key, or runs produce and caches its
// result. Errors are never cached. Two callers racing on the same key may
// both run produce; the second write wins, which is acceptable because
// produced values for a key are identical.
func (m *Memo[V]) GetOrFetch(key string, produce func() (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}

	v, err := produce()
	if err != nil {
		var zero V
		return zero, err
	}

	m.Put(key, v)
	return v, nil
}

// Size returns the number of entries, expired ones included.
func (m *Memo[V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Clear drops every entry.
func (m *Memo[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]entry[V])
}

// SetTTL changes the time-to-live for subsequent reads.
func (m *Memo[V]) SetTTL(ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ttl = ttl
}

// CleanExpired removes expired entries and reports how many were dropped.
func (m *Memo[V]) CleanExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	now := time.Now()

	for key, e := range m.entries {
		if now.Sub(e.storedAt) > m.ttl {
			delete(m.entries, key)
			count++
		}
	}

	return count
}
