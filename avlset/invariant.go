package avlset

import "github.com/joeycumines/go-eco/internal/linkident"

// Invariant verifies: at every node the left and right subtree heights
// differ by at most one and the stored tag equals which side (if either)
// is taller; parent back-pointers are consistent; the node count matches
// the stored size.
func (s *Set[T, K, PT]) Invariant() {
	count := 0
	var height func(h *Hook[T]) int
	height = func(h *Hook[T]) int {
		if h == nil {
			return 0
		}
		count++

		lh, rh := 0, 0
		if c := h.children[0].Ptr(tagBits); c != nil {
			if c.parent != h || int(c.side) != 0 {
				linkident.Fail("avlset: back-link mismatch on side 0")
			}
			lh = height(c)
		}
		if c := h.children[1].Ptr(tagBits); c != nil {
			if c.parent != h || int(c.side) != 1 {
				linkident.Fail("avlset: back-link mismatch on side 1")
			}
			rh = height(c)
		}

		diff := rh - lh
		if diff < -1 || diff > 1 {
			linkident.Fail("avlset: height imbalance exceeds one")
		}
		if (h.children[0].Tag(tagBits) != 0) != (lh > rh) {
			linkident.Fail("avlset: left balance tag inconsistent with height")
		}
		if (h.children[1].Tag(tagBits) != 0) != (rh > lh) {
			linkident.Fail("avlset: right balance tag inconsistent with height")
		}

		if lh > rh {
			return lh + 1
		}
		return rh + 1
	}
	height(s.root)

	if count != s.size {
		linkident.Fail("avlset: stored size does not match node count")
	}
}
