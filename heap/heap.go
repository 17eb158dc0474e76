// Package heap implements an intrusive binary heap over an implicit,
// complete binary tree addressed by parent pointers, following the shape
// and ordering rules of container/heap but without requiring slice storage:
// elements link to each other directly via an embedded Hook.
package heap

import (
	"github.com/joeycumines/go-eco/internal/linkident"
	"github.com/joeycumines/go-eco/internal/ordered"
)

// Hook is the embeddable link state for an element of a Heap[T, K].
type Hook[T any] struct {
	child  [2]*Hook[T]
	parent *Hook[T]
	owner  *T
	id     linkident.Identity
}

// Element constrains the element type of a Heap: *T must supply a way to
// reach its own embedded Hook[T].
type Element[T any] interface {
	*T
	HeapHook() *Hook[T]
}

func hookOf[T any, PT Element[T]](e *T) *Hook[T] {
	h := PT(e).HeapHook()
	if h.owner == nil {
		h.owner = e
	}
	return h
}

// Heap is an intrusive binary heap, generically keyed and ordered by a
// strict less-than comparator derived from a three-way Comparator: the root
// always compares less-or-equal to every other node (so with the natural
// ordering this is a min-heap; invert the comparator for a max-heap).
type Heap[T any, K any, PT Element[T]] struct {
	root    *Hook[T]
	size    int
	sel     ordered.KeySelector[T, K]
	lessKey func(a, b *K) bool
	token   *linkident.Token
}

// New returns an empty heap ordered by cmp (a three-way comparator), with
// keys extracted from elements via sel.
func New[T any, K any, PT Element[T]](sel ordered.KeySelector[T, K], cmp ordered.Comparator[K]) *Heap[T, K, PT] {
	return &Heap[T, K, PT]{sel: sel, lessKey: ordered.Less(cmp)}
}

func (h *Heap[T, K, PT]) lazyToken() *linkident.Token {
	if h.token == nil {
		h.token = linkident.NewToken()
	}
	return h.token
}

// Size returns the number of elements in the heap.
func (h *Heap[T, K, PT]) Size() int {
	return h.size
}

// IsEmpty reports whether the heap has no elements.
func (h *Heap[T, K, PT]) IsEmpty() bool {
	return h.size == 0
}

// Peek returns the minimum element without removing it. Panics if the heap
// is empty.
func (h *Heap[T, K, PT]) Peek() *T {
	if h.IsEmpty() {
		linkident.Fail("heap: Peek on empty heap")
	}
	return h.root.owner
}

func (h *Heap[T, K, PT]) key(hk *Hook[T]) *K {
	return h.sel(hk.owner)
}

func (h *Heap[T, K, PT]) less(a, b *Hook[T]) bool {
	return h.lessKey(h.key(a), h.key(b))
}
