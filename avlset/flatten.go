package avlset

import "github.com/joeycumines/go-eco/list"

// FlattenElement is the constraint an element type must satisfy to be
// flattened into a list: it needs both the set's own hook accessor and the
// list package's.
type FlattenElement[T any] interface {
	Element[T]
	list.Element[T]
}

func rawChild[T any](h *Hook[T], side int) *Hook[T] {
	if h == nil {
		return nil
	}
	return h.children[side].Ptr(tagBits)
}

func setRawChild[T any](h *Hook[T], side int, child *Hook[T]) {
	h.children[side].SetPtr(tagBits, child)
}

// flattenSide peels node's l-side subtree into a sorted chain by
// repeatedly rotating its leftmost (in direction r) spine rightward: each
// pass promotes one node up, turning what was a subtree into a straight
// line threaded through children[l]/children[r]. No key comparisons, no
// allocation, purely rotation.
func flattenSide[T any](node *Hook[T], l int) *Hook[T] {
	r := 1 - l
	for rawChild(node, l) != nil {
		child := rawChild(node, l)
		if pivot := rawChild(child, r); pivot != nil {
			setRawChild(child, r, rawChild(pivot, l))
			setRawChild(pivot, l, child)
			setRawChild(node, l, pivot)
			continue
		}
		setRawChild(child, r, node)
		node = child
	}
	return node
}

// Flatten empties s and returns a new list holding the same elements in
// ascending order. Flatten is a free function, not a method, because it
// needs an additional type parameter (the list's own element-constraint
// witness) that a method cannot introduce.
//
// The reordering itself is the same destructive spine-rotation the set's
// own Remove/rebalance machinery already does: no key comparisons, no
// allocation, just pointer surgery turning the tree into a sorted circular
// chain threaded through the hooks' own child slots. Go has no cast
// between distinct generic struct types, so the chain can't be
// reinterpreted directly as list storage; the final step instead walks
// the already-sorted chain once and Appends each element into a fresh
// list.List, an O(n) zero-comparison pass.
func Flatten[T any, K any, PT FlattenElement[T]](s *Set[T, K, PT]) *list.List[T, PT] {
	l := list.New[T, PT]()
	root := s.root
	if root == nil {
		return l
	}
	s.root = nil

	head := flattenSide(root, 0)
	tail := flattenSide(root, 1)
	setRawChild(head, 0, tail)
	setRawChild(tail, 1, head)

	node := head
	for {
		next := rawChild(node, 1)
		node.id.Release(s.token)
		l.Append(node.owner)
		if next == head {
			break
		}
		node = next
	}

	s.size = 0
	s.checkInvariant()
	return l
}
