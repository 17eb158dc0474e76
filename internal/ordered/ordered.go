// Package ordered holds the small generic vocabulary shared by the
// balanced-tree containers: how to pull a key out of an element, how to
// compare two keys, and the shape of an insert result.
package ordered

import "cmp"

// KeySelector maps an element to the key used to order it. The identity
// selector (func(e *T) *K { return e }) is used when the element is its own
// key.
type KeySelector[T, K any] func(e *T) *K

// Comparator is a three-way comparator: negative if a < b, zero if
// equivalent, positive if a > b.
type Comparator[K any] func(a, b *K) int

// Less adapts a three-way Comparator into a strict less-than predicate, for
// consumers (the heap) that only need strict ordering.
func Less[K any](cmp Comparator[K]) func(a, b *K) bool {
	return func(a, b *K) bool {
		return cmp(a, b) < 0
	}
}

// Identity returns a KeySelector for element types that are their own key.
func Identity[T any]() KeySelector[T, T] {
	return func(e *T) *T { return e }
}

// Compare builds a Comparator for any cmp.Ordered key from the standard
// library's three-way comparison.
func Compare[K cmp.Ordered]() Comparator[K] {
	return func(a, b *K) int {
		return cmp.Compare(*a, *b)
	}
}

// InsertResult is returned by every ordered set's Insert: Element is either
// the newly inserted element or, on a duplicate key, the existing
// equivalent element; Inserted reports which.
type InsertResult[T any] struct {
	Element  *T
	Inserted bool
}
