package wbset

import "github.com/joeycumines/go-eco/internal/linkident"

// Select returns the element of rank rank (0-indexed, in ascending key
// order). Panics if rank is out of range or the set is empty.
func (s *Set[T, K, PT]) Select(rank int) *T {
	h := s.root
	if h == nil {
		linkident.Fail("wbset: Select called on an empty set")
	}
	for {
		if rank < 0 || uintptr(rank) >= h.weight {
			linkident.Fail("wbset: rank out of range")
		}
		leftWeight := weight(h.children[0])
		switch {
		case uintptr(rank) == leftWeight:
			return h.owner
		case uintptr(rank) > leftWeight:
			rank -= int(leftWeight) + 1
			h = h.children[1]
		default:
			h = h.children[0]
		}
	}
}

// Rank returns e's 0-indexed position in ascending key order. e must
// currently be linked into this set.
func (s *Set[T, K, PT]) Rank(e *T) int {
	h := hookOf[T, PT](e)
	h.id.Check(s.token)

	rank := int(weight(h.children[0]))
	for h.parent != nil {
		parent := h.parent
		if h != parent.children[0] {
			rank += int(weight(parent.children[0])) + 1
		}
		h = parent
	}
	return rank
}

// Root returns the element at the root of the tree. Panics if the set is
// empty.
func (s *Set[T, K, PT]) Root() *T {
	if s.root == nil {
		linkident.Fail("wbset: Root called on an empty set")
	}
	return s.root.owner
}

// Weight returns the size of the subtree rooted at e, e included. e must
// currently be linked into this set.
func (s *Set[T, K, PT]) Weight(e *T) int {
	h := hookOf[T, PT](e)
	h.id.Check(s.token)
	return int(h.weight)
}

// Children holds the left and right subtree roots of a node, either of
// which may be nil.
type Children[T any] struct {
	Left, Right *T
}

// Children returns e's immediate children. e must currently be linked into
// this set.
func (s *Set[T, K, PT]) Children(e *T) Children[T] {
	h := hookOf[T, PT](e)
	h.id.Check(s.token)
	var c Children[T]
	if left := h.children[0]; left != nil {
		c.Left = left.owner
	}
	if right := h.children[1]; right != nil {
		c.Right = right.owner
	}
	return c
}
