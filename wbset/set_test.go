package wbset

import (
	"math/rand"
	"testing"

	"github.com/joeycumines/go-eco/internal/ordered"
	"github.com/joeycumines/go-eco/list"
	"github.com/stretchr/testify/require"
)

type node struct {
	key      int
	hook     Hook[node]
	listHook list.Hook[node]
}

func (e *node) WbHook() *Hook[node]        { return &e.hook }
func (e *node) ListHook() *list.Hook[node] { return &e.listHook }

func newIntSet() *Set[node, int, *node] {
	return New[node, int, *node](
		func(e *node) *int { return &e.key },
		ordered.Compare[int](),
	)
}

func inOrder(s *Set[node, int, *node]) []int {
	var out []int
	for it := s.Begin(); !it.IsEnd(); it = it.Next() {
		out = append(out, it.Element().key)
	}
	return out
}

func TestWbPathologicalInsert(t *testing.T) {
	s := newIntSet()
	for _, v := range []int{9, 7, 5, 8, 6, 2, 4, 1, 3} {
		res := s.Insert(&node{key: v})
		require.True(t, res.Inserted)
	}
	require.Equal(t, 9, s.Size())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, inOrder(s))
	s.Invariant()
}

func TestWbSelectAndRank(t *testing.T) {
	s := newIntSet()
	nodesByKey := make(map[int]*node)
	for _, v := range []int{5, 2, 8, 1, 9, 3, 7, 4, 6} {
		n := &node{key: v}
		nodesByKey[v] = n
		s.Insert(n)
	}
	s.Invariant()

	for i := 0; i < 9; i++ {
		require.Equal(t, i+1, s.Select(i).key)
	}
	for v, n := range nodesByKey {
		require.Equal(t, v-1, s.Rank(n))
	}
}

func TestWbDuplicateInsertReturnsExisting(t *testing.T) {
	s := newIntSet()
	a := &node{key: 5}
	b := &node{key: 5}

	res1 := s.Insert(a)
	require.True(t, res1.Inserted)
	require.Equal(t, a, res1.Element)

	res2 := s.Insert(b)
	require.False(t, res2.Inserted)
	require.Equal(t, a, res2.Element)
	require.Equal(t, 1, s.Size())
}

func TestWbFindMissing(t *testing.T) {
	s := newIntSet()
	s.Insert(&node{key: 1})
	key := 99
	_, ok := s.Find(&key)
	require.False(t, ok)
}

func TestWbRemovalCombinatorics(t *testing.T) {
	values := []int{40, 20, 60, 10, 30, 50, 70}

	build := func() (*Set[node, int, *node], map[int]*node) {
		s := newIntSet()
		byKey := make(map[int]*node, len(values))
		for _, v := range values {
			n := &node{key: v}
			byKey[v] = n
			s.Insert(n)
		}
		return s, byKey
	}

	for _, v := range values {
		s, byKey := build()
		s.Remove(byKey[v])
		s.Invariant()

		var expect []int
		for _, w := range values {
			if w != v {
				expect = append(expect, w)
			}
		}
		for i := 0; i < len(expect); i++ {
			for j := i + 1; j < len(expect); j++ {
				if expect[j] < expect[i] {
					expect[i], expect[j] = expect[j], expect[i]
				}
			}
		}
		require.Equal(t, expect, inOrder(s))
	}
}

func TestWbRandomInsertRemoveInvariant(t *testing.T) {
	s := newIntSet()
	r := rand.New(rand.NewSource(7))
	var live []*node

	for i := 0; i < 2000; i++ {
		if len(live) == 0 || r.Intn(2) == 0 {
			v := r.Intn(1000)
			n := &node{key: v}
			res := s.Insert(n)
			if res.Inserted {
				live = append(live, n)
			}
		} else {
			idx := r.Intn(len(live))
			s.Remove(live[idx])
			live = append(live[:idx], live[idx+1:]...)
		}
		s.Invariant()
	}

	out := inOrder(s)
	for i := 1; i < len(out); i++ {
		require.Less(t, out[i-1], out[i])
	}
	require.Equal(t, len(live), s.Size())
}

func TestWbChildrenAndWeight(t *testing.T) {
	s := newIntSet()
	for _, v := range []int{5, 2, 8, 1, 9} {
		s.Insert(&node{key: v})
	}
	root := s.Root()
	require.Equal(t, s.Size(), s.Weight(root))

	c := s.Children(root)
	if c.Left != nil {
		require.Less(t, c.Left.key, root.key)
	}
	if c.Right != nil {
		require.Greater(t, c.Right.key, root.key)
	}
}

func TestWbFlatten(t *testing.T) {
	s := newIntSet()
	for _, v := range []int{5, 2, 8, 1, 9, 3} {
		s.Insert(&node{key: v})
	}

	l := Flatten[node, int, *node](s)
	require.True(t, s.IsEmpty())
	require.Equal(t, 6, l.Size())

	var out []int
	for e, ok := l.First(); ok; {
		out = append(out, e.key)
		it := l.MakeIterator(e)
		it = it.Next()
		if it.IsEnd() {
			break
		}
		e = it.Element()
	}
	require.Equal(t, []int{1, 2, 3, 5, 8, 9}, out)
}
