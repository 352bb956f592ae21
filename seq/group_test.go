package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(n int) int { return n }

func TestGroupBySequential(t *testing.T) {
	groups := GroupBy(FromSlice([]int{1, 1, 2, 3, 3, 3, 1}), identity)

	var keys []int
	var sizes []int
	for p := range Values(groups) {
		keys = append(keys, p.First)
		sizes = append(sizes, len(Collect(p.Second)))
	}
	assert.Equal(t, []int{1, 2, 3, 1}, keys)
	assert.Equal(t, []int{2, 1, 3, 1}, sizes)
}

func TestGroupByOutOfOrder(t *testing.T) {
	parity := func(n int) bool { return n%2 == 0 }
	groups := GroupBy(FromSlice([]int{1, 3, 2, 4, 6, 5}), parity)

	odd := groups.Next().Unwrap()
	even := groups.Next().Unwrap()
	last := groups.Next().Unwrap()
	assert.True(t, groups.Next().IsNone())

	assert.False(t, odd.First)
	assert.True(t, even.First)
	assert.False(t, last.First)
	assert.True(t, even.Second.Key())

	assert.Equal(t, []int{5}, Collect(last.Second))
	assert.Equal(t, []int{2, 4, 6}, Collect(even.Second))
	assert.Equal(t, []int{1, 3}, Collect(odd.Second))
}

func TestGroupByPartiallyRead(t *testing.T) {
	groups := GroupBy(FromSlice([]int{1, 1, 1, 2}), identity)

	first := groups.Next().Unwrap().Second
	assert.Equal(t, 1, first.Next().Unwrap())

	second := groups.Next().Unwrap().Second
	assert.Equal(t, []int{2}, Collect(second))
	assert.Equal(t, []int{1, 1}, Collect(first), "unread elements are buffered when the outer iterator advances")
}

func TestGroupByDiscard(t *testing.T) {
	groups := GroupBy(FromSlice([]int{1, 1, 2, 2}), identity)

	first := groups.Next().Unwrap().Second
	first.Discard()
	second := groups.Next().Unwrap().Second
	require.True(t, first.Next().IsNone())
	assert.Empty(t, first.buffer)
	assert.Equal(t, []int{2, 2}, Collect(second))
}

func TestGroupByCurrentGroupStopsAtBoundary(t *testing.T) {
	groups := GroupBy(FromSlice([]int{7, 7, 8}), identity)
	g := groups.Next().Unwrap().Second
	assert.Equal(t, []int{7, 7}, Collect(g))
	assert.True(t, g.Next().IsNone())

	next := groups.Next().Unwrap()
	assert.Equal(t, 8, next.First)
	assert.Equal(t, []int{8}, Collect(next.Second))
}

func TestGroupByEmpty(t *testing.T) {
	assert.True(t, GroupBy(Empty[int](), identity).Next().IsNone())
}
