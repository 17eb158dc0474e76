package avlset

import (
	"github.com/joeycumines/go-eco/internal/debugmode"
	"github.com/joeycumines/go-eco/internal/ordered"
	"github.com/joeycumines/go-eco/internal/tagged"
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
	h.children[0] = tagged.Pointer[Hook[T]]{}
	h.children[1] = tagged.Pointer[Hook[T]]{}
	s.setChild(parent, side, h, 0)
	h.id.Adopt(s.lazyToken())
	s.size++

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

	lChild := h.children[0].Ptr(tagBits)
	rChild := h.children[1].Ptr(tagBits)

	if lChild != nil || rChild != nil {
		succL := 0
		if h.children[1].Tag(tagBits) != 0 {
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
			s.setChild(successor, succL, heavy, s.childTag(h, succL))

			balanceAt = succParent
			balanceL = succR
		}

		s.setChildTag(successor, succL, s.childTag(h, succL))
		s.setChild(successor, succR, other, 0)
		s.setChildPtr(parent, l, successor)
	} else {
		s.setChildPtr(parent, l, nil)
	}

	h.children[0] = tagged.Pointer[Hook[T]]{}
	h.children[1] = tagged.Pointer[Hook[T]]{}
	h.parent = nil
	h.id.Release(s.token)
	s.size--

	s.rebalance(balanceAt, balanceL, false)
	s.checkInvariant()
}

func (s *Set[T, K, PT]) checkInvariant() {
	if !debugmode.Enabled {
		return
	}
	s.Invariant()
}
