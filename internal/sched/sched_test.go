package sched

import "testing"

func TestQueue_DeferDoesNotRunImmediately(t *testing.T) {
	q := NewQueue()

	ran := false
	q.Defer(func() { ran = true })

	if ran {
		t.Error("deferred callback must not run before Flush")
	}
	if q.Len() != 1 {
		t.Errorf("expected 1 pending callback, got %d", q.Len())
	}
}

func TestQueue_FlushRunsInOrder(t *testing.T) {
	q := NewQueue()

	var order []int
	q.Defer(func() { order = append(order, 1) })
	q.Defer(func() { order = append(order, 2) })
	q.Defer(func() { order = append(order, 3) })

	if n := q.Flush(); n != 3 {
		t.Errorf("expected Flush to report 3 callbacks, got %d", n)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("callbacks ran out of order: %v", order)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after Flush, got %d", q.Len())
	}
}

func TestQueue_DeferDuringFlushWaitsForNextFlush(t *testing.T) {
	q := NewQueue()

	nested := false
	q.Defer(func() {
		q.Defer(func() { nested = true })
	})

	q.Flush()
	if nested {
		t.Error("work deferred during a flush must wait for the next flush")
	}

	q.Flush()
	if !nested {
		t.Error("second flush should run the nested callback")
	}
}

func TestQueue_NilCallbackIgnored(t *testing.T) {
	q := NewQueue()
	q.Defer(nil)

	if q.Len() != 0 {
		t.Errorf("nil callback should be ignored, got %d pending", q.Len())
	}
	q.Flush()
}

func TestImmediate_RunsAtDeferTime(t *testing.T) {
	ran := false
	Immediate{}.Defer(func() { ran = true })

	if !ran {
		t.Error("Immediate scheduler should run the callback synchronously")
	}
	Immediate{}.Defer(nil)
}
