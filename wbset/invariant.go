package wbset

import "github.com/joeycumines/go-eco/internal/linkident"

// Invariant verifies: at every node whose two child subtrees weigh more than
// one in total, neither child's weight is wbDelta or more times the other's
// (an empty child weighs zero), parent back-pointers are consistent, and the
// stored weight equals the node's own subtree size.
func (s *Set[T, K, PT]) Invariant() {
	var walk func(h *Hook[T]) uintptr
	walk = func(h *Hook[T]) uintptr {
		if h == nil {
			return 0
		}

		lw, rw := uintptr(0), uintptr(0)
		if c := h.children[0]; c != nil {
			if c.parent != h || int(c.side) != 0 {
				linkident.Fail("wbset: back-link mismatch on side 0")
			}
			lw = walk(c)
		}
		if c := h.children[1]; c != nil {
			if c.parent != h || int(c.side) != 1 {
				linkident.Fail("wbset: back-link mismatch on side 1")
			}
			rw = walk(c)
		}

		if lw+rw > 1 && (lw >= rw*wbDelta || rw >= lw*wbDelta) {
			linkident.Fail("wbset: weight ratio exceeds delta")
		}

		total := lw + rw + 1
		if h.weight != total {
			linkident.Fail("wbset: stored weight does not match subtree size")
		}
		return total
	}
	walk(s.root)
}
