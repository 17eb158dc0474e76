package xreverse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type node struct {
	val  int
	next *node
}

func TestReverse(t *testing.T) {
	n3 := &node{val: 3}
	n2 := &node{val: 2, next: n3}
	n1 := &node{val: 1, next: n2}

	head := Reverse(n1,
		func(n *node) *node { return n.next },
		func(n, next *node) { n.next = next },
	)

	var got []int
	for n := head; n != nil; n = n.next {
		got = append(got, n.val)
	}
	require.Equal(t, []int{3, 2, 1}, got)
}

func TestReverseNil(t *testing.T) {
	head := Reverse[node](nil,
		func(n *node) *node { return n.next },
		func(n, next *node) { n.next = next },
	)
	require.Nil(t, head)
}

func TestReverseSingle(t *testing.T) {
	n1 := &node{val: 1}
	head := Reverse(n1,
		func(n *node) *node { return n.next },
		func(n, next *node) { n.next = next },
	)
	require.Same(t, n1, head)
	require.Nil(t, head.next)
}
