// Package sched provides the deferred-execution primitive used by the editor
// bridge: callbacks that must run after the current update cycle completes,
// not immediately. The host owns a Queue and flushes it at the end of each
// cycle of its event loop.
package sched

import "sync"

// Scheduler schedules a callback to run after the current update cycle.
// There is no cancellation: a deferred callback always runs on the next flush.
type Scheduler interface {
	Defer(fn func())
}

// Queue is a Scheduler backed by a FIFO of pending callbacks. It is safe for
// concurrent use; callbacks run during Flush in the order they were deferred.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Defer enqueues fn for the next Flush. A nil fn is ignored.
func (q *Queue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Flush runs every callback deferred before this call and returns how many
// ran. Callbacks run outside the queue's lock; a callback that defers new
// work schedules it for the following flush, not this one.
func (q *Queue) Flush() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Immediate is a Scheduler that runs callbacks synchronously at Defer time.
// It collapses the one-cycle delay and exists for tests and for hosts without
// an update loop.
type Immediate struct{}

// Defer runs fn at once.
func (Immediate) Defer(fn func()) {
	if fn != nil {
		fn()
	}
}
