// Package mpsc implements a lock-free, intrusive, multi-producer /
// single-consumer queue. Producers push concurrently from any goroutine;
// exactly one goroutine may dequeue at a time.
package mpsc

import (
	"sync/atomic"

	"github.com/joeycumines/go-eco/internal/xreverse"
	"golang.org/x/sys/cpu"
)

// Hook is the embeddable link state for an element of a Queue[T].
type Hook[T any] struct {
	next  *Hook[T]
	owner *T
}

// Element constrains the element type of a Queue: *T must supply a way to
// reach its own embedded Hook[T].
type Element[T any] interface {
	*T
	MpscHook() *Hook[T]
}

func hookOf[T any, PT Element[T]](e *T) *Hook[T] {
	h := PT(e).MpscHook()
	if h.owner == nil {
		h.owner = e
	}
	return h
}

// Queue is a lock-free MPSC queue. The zero value is an empty queue ready
// for use; New returns one as well.
//
// enqueue and dequeue are kept on separate cache lines: producers hammer
// enqueue with CAS loops while the consumer only ever touches dequeue, and
// letting them share a line would serialize unrelated cores on the same
// cache traffic.
type Queue[T any, PT Element[T]] struct {
	enqueue atomic.Pointer[Hook[T]]
	_       cpu.CacheLinePad
	dequeue *Hook[T]
	_       cpu.CacheLinePad
}

// New returns an empty Queue.
func New[T any, PT Element[T]]() *Queue[T, PT] {
	return &Queue[T, PT]{}
}

// Enqueue links e onto the queue. Safe to call concurrently from any number
// of goroutines.
func (q *Queue[T, PT]) Enqueue(e *T) {
	h := hookOf[T, PT](e)
	for {
		old := q.enqueue.Load()
		h.next = old
		if q.enqueue.CompareAndSwap(old, h) {
			return
		}
	}
}

// TryDequeue removes and returns the oldest enqueued element, or reports
// false if the queue is currently empty. Must only be called from a single
// goroutine at a time; concurrent calls are undefined behavior by contract.
func (q *Queue[T, PT]) TryDequeue() (*T, bool) {
	if q.dequeue != nil {
		h := q.dequeue
		q.dequeue = h.next
		h.next = nil
		return h.owner, true
	}
	if q.enqueue.Load() == nil {
		return nil, false
	}
	drained := q.enqueue.Swap(nil)
	if drained == nil {
		return nil, false
	}
	oldest := xreverse.Reverse(drained,
		func(h *Hook[T]) *Hook[T] { return h.next },
		func(h, next *Hook[T]) { h.next = next },
	)
	q.dequeue = oldest.next
	oldest.next = nil
	return oldest.owner, true
}

// IsEmpty reports whether the queue currently has no elements. A
// concurrently racing Enqueue may not yet be visible; IsEmpty is a
// snapshot, not a synchronization point.
func (q *Queue[T, PT]) IsEmpty() bool {
	return q.dequeue == nil && q.enqueue.Load() == nil
}
