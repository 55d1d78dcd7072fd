// Package buffer provides bounded buffering for pipeline output.
package buffer

import "sync"

// Ring is a fixed-capacity circular buffer.
// When full, the oldest values are silently evicted.
// All operations are goroutine-safe.
type Ring[T any] struct {
	mu       sync.RWMutex
	values   []T
	head     int // next write position
	count    int
	capacity int
	dropped  uint64
}

// NewRing creates a ring buffer with the given capacity.
// A non-positive capacity defaults to 1024.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Ring[T]{
		values:   make([]T, capacity),
		capacity: capacity,
	}
}

// Push adds a value. If full, the oldest value is evicted.
func (r *Ring[T]) Push(v T) {
	r.mu.Lock()
	r.values[r.head] = v
	r.head = (r.head + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	} else {
		r.dropped++
	}
	r.mu.Unlock()
}

// Snapshot returns a copy of the buffered values, oldest first.
func (r *Ring[T]) Snapshot() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, r.count)
	if r.count < r.capacity {
		copy(result, r.values[:r.count])
	} else {
		n := copy(result, r.values[r.head:])
		copy(result[n:], r.values[:r.head])
	}
	return result
}

// Len returns the number of buffered values.
func (r *Ring[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Dropped returns the number of evicted values.
func (r *Ring[T]) Dropped() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dropped
}

// Cap returns the buffer capacity.
func (r *Ring[T]) Cap() int {
	return r.capacity
}
