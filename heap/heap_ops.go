package heap

import (
	"math/bits"

	"github.com/joeycumines/go-eco/internal/debugmode"
	"github.com/joeycumines/go-eco/internal/linkident"
)

// locate finds the node at 1-based position pos by descending from root
// along the bits of pos with the leading bit dropped, each remaining bit
// selecting left (0) or right (1). pos must be <= the current tree size.
func locate[T any](root *Hook[T], pos int) *Hook[T] {
	n := root
	nbits := bits.Len(uint(pos))
	for i := nbits - 2; i >= 0; i-- {
		side := (pos >> uint(i)) & 1
		n = n.child[side]
	}
	return n
}

func childSide[T any](parent, child *Hook[T]) int {
	if parent.child[0] == child {
		return 0
	}
	return 1
}

// swap rewires the tree so that c, currently a child of p, takes p's
// position (inheriting p's parent link), p becomes c's child on the side it
// previously occupied, and the formerly uninvolved sibling and p's other
// children are relinked accordingly. No values move; only pointers.
func (q *Heap[T, K, PT]) swap(p, c *Hook[T]) {
	side := childSide(p, c)
	other := 1 - side
	sibling := p.child[other]
	cl, cr := c.child[0], c.child[1]
	gp := p.parent

	c.parent = gp
	if gp == nil {
		q.root = c
	} else {
		gp.child[childSide(gp, p)] = c
	}

	c.child[side] = p
	p.parent = c

	c.child[other] = sibling
	if sibling != nil {
		sibling.parent = c
	}

	p.child[0] = cl
	p.child[1] = cr
	if cl != nil {
		cl.parent = p
	}
	if cr != nil {
		cr.parent = p
	}
}

func (q *Heap[T, K, PT]) percolateUp(n *Hook[T]) {
	for n.parent != nil && q.less(n, n.parent) {
		q.swap(n.parent, n)
	}
}

func (q *Heap[T, K, PT]) siftDown(n *Hook[T]) {
	for {
		smallest := n
		if n.child[0] != nil && q.less(n.child[0], smallest) {
			smallest = n.child[0]
		}
		if n.child[1] != nil && q.less(n.child[1], smallest) {
			smallest = n.child[1]
		}
		if smallest == n {
			return
		}
		q.swap(n, smallest)
	}
}

func (q *Heap[T, K, PT]) unlinkFromParent(n *Hook[T]) {
	p := n.parent
	if p == nil {
		q.root = nil
	} else {
		p.child[childSide(p, n)] = nil
	}
	n.parent = nil
}

func (q *Heap[T, K, PT]) spliceInto(newNode, oldNode *Hook[T]) {
	p := oldNode.parent
	newNode.parent = p
	if p == nil {
		q.root = newNode
	} else {
		p.child[childSide(p, oldNode)] = newNode
	}
	newNode.child[0] = oldNode.child[0]
	newNode.child[1] = oldNode.child[1]
	if newNode.child[0] != nil {
		newNode.child[0].parent = newNode
	}
	if newNode.child[1] != nil {
		newNode.child[1].parent = newNode
	}
}

// Push inserts e into the heap.
func (q *Heap[T, K, PT]) Push(e *T) {
	h := hookOf[T, PT](e)
	h.child[0], h.child[1] = nil, nil

	pos := q.size + 1
	if pos == 1 {
		h.parent = nil
		q.root = h
	} else {
		parent := locate(q.root, pos>>1)
		h.parent = parent
		parent.child[pos&1] = h
	}
	q.size++
	h.id.Adopt(q.lazyToken())
	q.percolateUp(h)
	q.checkInvariant()
}

// Pop removes and returns the minimum element. Panics if the heap is empty.
func (q *Heap[T, K, PT]) Pop() *T {
	e := q.Peek()
	q.Remove(e)
	return e
}

// Remove detaches e from the heap. e must currently be linked into this
// heap.
func (q *Heap[T, K, PT]) Remove(e *T) {
	h := hookOf[T, PT](e)
	h.id.Check(q.token)

	lastPos := q.size
	last := locate(q.root, lastPos)

	if last == h {
		q.unlinkFromParent(h)
		q.size--
		h.id.Release(q.token)
		q.checkInvariant()
		return
	}

	q.unlinkFromParent(last)
	q.size--

	q.spliceInto(last, h)
	h.id.Release(q.token)
	h.parent, h.child[0], h.child[1] = nil, nil, nil

	q.siftDown(last)
	q.percolateUp(last)
	q.checkInvariant()
}

func (q *Heap[T, K, PT]) checkInvariant() {
	if !debugmode.Enabled {
		return
	}
	q.Invariant()
}

// Invariant verifies the heap's structural invariants: the tree is
// complete (deepest and shallowest leaf depths differ by at most one),
// every node compares less-or-equal to both of its children, parent
// back-links are consistent, and the node count matches the stored size.
func (q *Heap[T, K, PT]) Invariant() {
	if q.size == 0 {
		if q.root != nil {
			linkident.Fail("heap: empty heap has a non-nil root")
		}
		return
	}

	minDepth, maxDepth := -1, -1
	count := 0
	var walk func(n *Hook[T], depth int)
	walk = func(n *Hook[T], depth int) {
		count++
		if n.child[0] == nil && n.child[1] == nil {
			if minDepth == -1 || depth < minDepth {
				minDepth = depth
			}
			if depth > maxDepth {
				maxDepth = depth
			}
		}
		for _, c := range n.child {
			if c == nil {
				continue
			}
			if c.parent != n {
				linkident.Fail("heap: parent back-link mismatch")
			}
			if q.less(c, n) {
				linkident.Fail("heap: heap-order violated")
			}
			walk(c, depth+1)
		}
	}
	walk(q.root, 0)

	if count != q.size {
		linkident.Fail("heap: node count does not match stored size")
	}
	if maxDepth-minDepth > 1 {
		linkident.Fail("heap: tree is not complete (leaf depths differ by more than one)")
	}
}
