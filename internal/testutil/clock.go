// Package testutil provides deterministic helpers for harness tests.
package testutil

import "sync"

// DeterministicClock is a thread-safe monotonic logical clock.
//
// The harness numbers captured output steps with clock readings; swapping
// in a DeterministicClock makes transcripts identical across runs, which
// golden-file comparison depends on.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu  sync.Mutex
	seq int64
}

// NewDeterministicClock creates a clock starting at 0.
//
// The first call to Next() returns 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{seq: 0}
}

// Next increments and returns the next sequence number.
//
// Monotonic: always returns seq+1, never decreases.
func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *DeterministicClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset resets the clock to 0.
//
// Used for test reuse. After Reset(), the next call to Next() returns 1.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
