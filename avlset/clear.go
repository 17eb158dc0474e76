package avlset

import "github.com/joeycumines/go-eco/internal/tagged"

// Clear removes every element from the set in an iterative, left-leaning
// post-order walk, releasing each hook's identity as it goes. After Clear
// the set is empty.
func (s *Set[T, K, PT]) Clear() {
	if s.root == nil {
		return
	}
	node := leftmost(s.root, 0)
	for node != nil {
		if r := node.children[1].Ptr(tagBits); r != nil {
			node = leftmost(r, 0)
			continue
		}

		parent := node.parent
		side := int(node.side)
		if parent == nil {
			s.root = nil
		} else {
			parent.children[side] = tagged.Pointer[Hook[T]]{}
		}
		node.parent = nil
		node.id.Release(s.token)
		node = parent
	}
	s.size = 0
	s.checkInvariant()
}
