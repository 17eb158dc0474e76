// Package xreverse holds the one in-place singly-linked-list reversal used
// by both the MPSC queue's drain step and the async mutex's LIFO-to-FIFO
// handoff on Unlock: both take a stack built by repeated prepend and need it
// walked oldest-first.
package xreverse

// Reverse walks a singly-linked list starting at head, following next, and
// returns the head of the reversed list. next must return the successor of
// a node and setNext must install a new successor. Safe to call with a nil
// head (returns nil).
func Reverse[N any](head *N, next func(*N) *N, setNext func(*N, *N)) *N {
	var prev *N
	curr := head
	for curr != nil {
		n := next(curr)
		setNext(curr, prev)
		prev = curr
		curr = n
	}
	return prev
}
