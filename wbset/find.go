package wbset

// find descends from the root comparing key against each node's key.
// Returns the matching hook if present; otherwise returns the parent slot
// (parent, side) where a new node with this key would attach.
func (s *Set[T, K, PT]) find(key *K) (parent *Hook[T], side int, found *Hook[T]) {
	node := s.root
	for node != nil {
		c := s.cmp(key, s.sel(node.owner))
		switch {
		case c == 0:
			return parent, side, node
		case c < 0:
			side = 0
		default:
			side = 1
		}
		parent = node
		node = node.children[side]
	}
	return parent, side, nil
}

// Find returns the element matching key, if any.
func (s *Set[T, K, PT]) Find(key *K) (*T, bool) {
	_, _, found := s.find(key)
	if found == nil {
		return nil, false
	}
	return found.owner, true
}

// FindEquivalent searches using a heterogeneous comparator: cmp compares a
// query value of type Q against a key of type K. This is a free function,
// not a method, because Go methods cannot introduce their own type
// parameters.
func FindEquivalent[T any, K any, Q any, PT Element[T]](s *Set[T, K, PT], query *Q, cmp func(q *Q, k *K) int) (*T, bool) {
	node := s.root
	for node != nil {
		c := cmp(query, s.sel(node.owner))
		switch {
		case c == 0:
			return node.owner, true
		case c < 0:
			node = node.children[0]
		default:
			node = node.children[1]
		}
	}
	return nil, false
}
