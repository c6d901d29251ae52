package core

import "sync/atomic"

// KeyQueue counts key presses that have not been consumed yet. Frontends push
// from their input goroutine; the run loop consumes from its own.
type KeyQueue struct {
	pending atomic.Int64
}

// Push records one key press.
func (q *KeyQueue) Push() { q.pending.Add(1) }

// Pending reports the number of unconsumed key presses.
func (q *KeyQueue) Pending() int { return int(q.pending.Load()) }

// Cancelled reports whether a key press is pending and consumes exactly one
// if so.
func (q *KeyQueue) Cancelled() bool {
	for {
		n := q.pending.Load()
		if n <= 0 {
			return false
		}
		if q.pending.CompareAndSwap(n, n-1) {
			return true
		}
	}
}
