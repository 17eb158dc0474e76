package wbset

import (
	"github.com/joeycumines/go-eco/internal/debugmode"
	"github.com/joeycumines/go-eco/internal/ordered"
)

// Insert links e into the set if no equivalent element is already present.
// Returns the existing equivalent element (with Inserted=false) on a
// duplicate key, otherwise e itself (with Inserted=true).
func (s *Set[T, K, PT]) Insert(e *T) ordered.InsertResult[T] {
	key := s.sel(e)
	parent, side, found := s.find(key)
	if found != nil {
		return ordered.InsertResult[T]{Element: found.owner, Inserted: false}
	}

	h := hookOf[T, PT](e)
	h.children[0] = nil
	h.children[1] = nil
	h.weight = 1
	s.setChildPtr(parent, side, h)
	h.id.Adopt(s.lazyToken())

	s.rebalance(parent, side, true)
	s.checkInvariant()
	return ordered.InsertResult[T]{Element: e, Inserted: true}
}

// Remove unlinks e from the set. e must currently be linked into this set.
func (s *Set[T, K, PT]) Remove(e *T) {
	h := hookOf[T, PT](e)
	h.id.Check(s.token)

	parent := h.parent
	l := int(h.side)
	balanceAt := parent
	balanceL := l

	lChild := h.children[0]
	rChild := h.children[1]

	if lChild != nil || rChild != nil {
		// Successor drawn from the heavier side of the removed node.
		succL := 0
		if weight(rChild) > weight(lChild) {
			succL = 1
		}
		succR := 1 - succL

		heavy := s.childPtr(h, succL)
		other := s.childPtr(h, succR)

		successor := heavy
		balanceAt = heavy
		balanceL = succL

		if s.childPtr(heavy, succR) != nil {
			successor = leftmost(heavy, succR)

			succParent := successor.parent
			succChild := s.childPtr(successor, succL)

			s.setChildPtr(succParent, succR, succChild)
			s.setChildPtr(successor, succL, heavy)

			balanceAt = succParent
			balanceL = succR
		}

		successor.weight = h.weight
		s.setChildPtr(successor, succR, other)
		s.setChildPtr(parent, l, successor)
	} else {
		s.setChildPtr(parent, l, nil)
	}

	h.children[0] = nil
	h.children[1] = nil
	h.parent = nil
	h.id.Release(s.token)

	s.rebalance(balanceAt, balanceL, false)
	s.checkInvariant()
}

func (s *Set[T, K, PT]) checkInvariant() {
	if !debugmode.Enabled {
		return
	}
	s.Invariant()
}
