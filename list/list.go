package list

import (
	"github.com/joeycumines/go-eco/internal/debugmode"
	"github.com/joeycumines/go-eco/internal/linkident"
)

// List is a circular, intrusive, doubly-linked list rooted at a sentinel
// hook. An empty list's sentinel points to itself on both sides.
type List[T any, PT Element[T]] struct {
	root  Hook[T]
	size  int
	token *linkident.Token
}

// New returns an empty list.
func New[T any, PT Element[T]]() *List[T, PT] {
	l := &List[T, PT]{}
	l.root.sibling[sideNext] = &l.root
	l.root.sibling[sidePrev] = &l.root
	return l
}

func (l *List[T, PT]) lazyToken() *linkident.Token {
	if l.token == nil {
		l.token = linkident.NewToken()
	}
	return l.token
}

// Size returns the number of elements currently linked into the list.
func (l *List[T, PT]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T, PT]) IsEmpty() bool {
	return l.size == 0
}

// First returns the first element, or the zero value and false if empty.
func (l *List[T, PT]) First() (*T, bool) {
	if l.IsEmpty() {
		return nil, false
	}
	return l.root.sibling[sideNext].owner, true
}

// Last returns the last element, or the zero value and false if empty.
func (l *List[T, PT]) Last() (*T, bool) {
	if l.IsEmpty() {
		return nil, false
	}
	return l.root.sibling[sidePrev].owner, true
}

func (l *List[T, PT]) insertBetween(before, after *Hook[T], h *Hook[T]) {
	h.sibling[sidePrev] = before
	h.sibling[sideNext] = after
	before.sibling[sideNext] = h
	after.sibling[sidePrev] = h
	h.id.Adopt(l.lazyToken())
	l.size++
}

// Prepend inserts e at the front of the list.
func (l *List[T, PT]) Prepend(e *T) {
	h := hookOf[T, PT](e)
	l.insertBetween(&l.root, l.root.sibling[sideNext], h)
	l.checkInvariant()
}

// Append inserts e at the back of the list.
func (l *List[T, PT]) Append(e *T) {
	h := hookOf[T, PT](e)
	l.insertBetween(l.root.sibling[sidePrev], &l.root, h)
	l.checkInvariant()
}

// InsertBefore inserts e immediately before existing, which must already be
// linked into this list.
func (l *List[T, PT]) InsertBefore(existing, e *T) {
	eh := hookOf[T, PT](existing)
	h := hookOf[T, PT](e)
	l.insertBetween(eh.sibling[sidePrev], eh, h)
	l.checkInvariant()
}

// InsertAfter inserts e immediately after existing, which must already be
// linked into this list.
func (l *List[T, PT]) InsertAfter(existing, e *T) {
	eh := hookOf[T, PT](existing)
	h := hookOf[T, PT](e)
	l.insertBetween(eh, eh.sibling[sideNext], h)
	l.checkInvariant()
}

// Remove unlinks e from the list. e must currently be linked into this
// list.
func (l *List[T, PT]) Remove(e *T) {
	h := hookOf[T, PT](e)
	h.id.Check(l.token)
	before, after := h.sibling[sidePrev], h.sibling[sideNext]
	before.sibling[sideNext] = after
	after.sibling[sidePrev] = before
	h.sibling[sideNext] = nil
	h.sibling[sidePrev] = nil
	h.id.Release(l.token)
	l.size--
	l.checkInvariant()
}

// Adopt installs a pre-built circular ring of size elements, with head as
// its first element, as the entire contents of an empty list, taking over
// token as the list's identity handle in the same stroke (no hook's
// identity is touched individually; the handle is transferred in bulk, the
// same handle every hook in the ring already holds). It lets a caller that
// built a ring outside of any List hand it over in O(1). The ring itself is
// not checked: head's prev-side neighbour is taken as the last element.
func (l *List[T, PT]) Adopt(head *Hook[T], size int, token *linkident.Token) {
	if !l.IsEmpty() {
		linkident.Fail("list: Adopt requires an empty list")
	}
	l.token = token
	if size == 0 {
		return
	}
	tail := head.sibling[sidePrev]
	l.root.sibling[sideNext] = head
	l.root.sibling[sidePrev] = tail
	head.sibling[sidePrev] = &l.root
	tail.sibling[sideNext] = &l.root
	l.size = size
	l.checkInvariant()
}

func (l *List[T, PT]) checkInvariant() {
	if !debugmode.Enabled {
		return
	}
	l.Invariant()
}

// Invariant verifies the list's structural invariants: the ring is
// consistent (detected via Floyd's tortoise-and-hare), the stored size
// matches the number of distinct reachable hooks, and every hook's back-link
// matches.
func (l *List[T, PT]) Invariant() {
	if l.IsEmpty() {
		if l.root.sibling[sideNext] != &l.root || l.root.sibling[sidePrev] != &l.root {
			linkident.Fail("list: empty list sentinel does not point to itself")
		}
		return
	}

	tortoise := l.root.sibling[sideNext]
	hare := tortoise
	for {
		hare = hare.sibling[sideNext]
		if hare == &l.root {
			break
		}
		hare = hare.sibling[sideNext]
		if hare == &l.root {
			break
		}
		tortoise = tortoise.sibling[sideNext]
		if hare == tortoise {
			linkident.Fail("list: ring is broken (cycle detected before reaching sentinel)")
		}
	}

	count := 0
	for h := l.root.sibling[sideNext]; h != &l.root; h = h.sibling[sideNext] {
		if h.sibling[sideNext].sibling[sidePrev] != h {
			linkident.Fail("list: back-link mismatch")
		}
		count++
	}
	if count != l.size {
		linkident.Fail("list: stored size does not match reachable hook count")
	}
}
