// Package avlset implements an intrusive, height-balanced ordered set. Each
// node's balance factor is packed as a one-bit tag on its child pointers
// (at most one side's tag is ever set) rather than stored as a separate
// field, following the tagged-pointer technique in internal/tagged.
package avlset

import (
	"github.com/joeycumines/go-eco/internal/linkident"
	"github.com/joeycumines/go-eco/internal/ordered"
	"github.com/joeycumines/go-eco/internal/tagged"
)

const tagBits = 1

// Hook is the embeddable link state for an element of a Set[T, K].
//
// parent points directly at the owning node (nil for the root); side
// records which of the parent's two child slots this hook occupies. This
// is the explicit (parent, side) pair the balanced-tree design notes offer
// as the safer alternative to recovering side by comparing a
// slot-array-base address; the balance tags themselves still live on the
// tagged child pointers, since that packing is the part worth keeping.
type Hook[T any] struct {
	children [2]tagged.Pointer[Hook[T]]
	parent   *Hook[T]
	side     int8
	owner    *T
	id       linkident.Identity
}

// Element constrains the element type of a Set: *T must supply a way to
// reach its own embedded Hook[T].
type Element[T any] interface {
	*T
	AvlHook() *Hook[T]
}

func hookOf[T any, PT Element[T]](e *T) *Hook[T] {
	h := PT(e).AvlHook()
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

func init() {
	// The balance tag needs 1 free low-order bit; any pointer-containing
	// struct clears that bar on every platform Go targets, but this still
	// documents and enforces the precondition the way a const-generic
	// static_assert would in a language that has one.
	tagged.CheckAlignment[Hook[int]](tagBits)
}

// Set is a generic, intrusive, height-balanced ordered set keyed by K
// (extracted from elements via sel) and ordered by cmp.
type Set[T any, K any, PT Element[T]] struct {
	root  *Hook[T]
	size  int
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

// Size returns the number of elements in the set.
func (s *Set[T, K, PT]) Size() int {
	return s.size
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T, K, PT]) IsEmpty() bool {
	return s.size == 0
}
