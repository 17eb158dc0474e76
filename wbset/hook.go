// Package wbset implements an intrusive, weight-balanced ordered set. Each
// node stores the size (weight) of its own subtree; rebalancing compares
// weights against a fixed delta/ratio pair instead of tracking a separate
// height or balance tag. The weight is also what makes order-statistics
// (Select, Rank) O(log n) without any extra bookkeeping.
package wbset

import (
	"github.com/joeycumines/go-eco/internal/linkident"
	"github.com/joeycumines/go-eco/internal/ordered"
)

const (
	wbDelta = 4
	wbRatio = 2
)

// Hook is the embeddable link state for an element of a Set[T, K].
//
// parent and side are the explicit back-link pair used throughout this
// module in place of recovering a node's side by comparing against the
// address of its parent's child-slot array.
type Hook[T any] struct {
	children [2]*Hook[T]
	parent   *Hook[T]
	side     int8
	weight   uintptr
	owner    *T
	id       linkident.Identity
}

// Element constrains the element type of a Set: *T must supply a way to
// reach its own embedded Hook[T].
type Element[T any] interface {
	*T
	WbHook() *Hook[T]
}

func hookOf[T any, PT Element[T]](e *T) *Hook[T] {
	h := PT(e).WbHook()
	if h.owner == nil {
		h.owner = e
	}
	return h
}

// IsIdle reports whether the hook is not currently linked into any set.
// Without the eco_debug build tag no identity is tracked and IsIdle always
// reports true.
func (h *Hook[T]) IsIdle() bool {
	return h.id.IsIdle()
}

func weight[T any](h *Hook[T]) uintptr {
	if h == nil {
		return 0
	}
	return h.weight
}

// Set is a generic, intrusive, weight-balanced ordered set keyed by K
// (extracted from elements via sel) and ordered by cmp.
type Set[T any, K any, PT Element[T]] struct {
	root  *Hook[T]
	sel   ordered.KeySelector[T, K]
	cmp   ordered.Comparator[K]
	token *linkident.Token
}

// New returns an empty Set.
func New[T any, K any, PT Element[T]](sel ordered.KeySelector[T, K], cmp ordered.Comparator[K]) *Set[T, K, PT] {
	return &Set[T, K, PT]{sel: sel, cmp: cmp}
}

func (s *Set[T, K, PT]) lazyToken() *linkident.Token {
	if s.token == nil {
		s.token = linkident.NewToken()
	}
	return s.token
}

// Size returns the number of elements in the set. There is no separate
// counter: the root hook's own weight already is the tree size.
func (s *Set[T, K, PT]) Size() int {
	if s.root == nil {
		return 0
	}
	return int(s.root.weight)
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T, K, PT]) IsEmpty() bool {
	return s.root == nil
}
