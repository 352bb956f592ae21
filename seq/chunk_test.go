package seq

import (
	"testing"

	"github.com/kbukum/gomonad/errors"
	"github.com/kbukum/gomonad/option"
	"github.com/stretchr/testify/assert"
)

func TestArrayChunkPartialTail(t *testing.T) {
	chunks := ArrayChunk[rune](FromString("loerm"), 2)

	assert.Equal(t, option.Some([]rune("lo")), chunks.Next())
	assert.Equal(t, option.Some([]rune("er")), chunks.Next())
	assert.True(t, chunks.Next().IsNone())
	assert.Equal(t, option.Some([]rune("m")), chunks.Unused())
}

func TestArrayChunkExact(t *testing.T) {
	chunks := ArrayChunk[int](FromSlice(ints(4)), 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, Collect(chunks))
	assert.True(t, chunks.Unused().IsNone())
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Collect(Chunk[int](FromSlice(ints(5)), 2)))
	assert.Equal(t, [][]int{{1, 2, 3}}, Collect(Chunk[int](FromSlice(ints(3)), 3)))
	assert.Equal(t, [][]int{}, Collect(Chunk[int](Empty[int](), 3)))
}

func TestChunkStopsAfterPartialTail(t *testing.T) {
	src := &oscillating{}
	c := Chunk[int](src, 2)

	assert.Equal(t, option.Some([]int{0}), c.Next())
	assert.True(t, c.Next().IsNone())
	assert.True(t, c.Next().IsNone())
	assert.Equal(t, 2, src.calls, "source must not be pulled after the tail")
}

func TestChunkSizePreconditions(t *testing.T) {
	requireAppErrorPanic(t, errors.ErrCodeInvalidArgument, func() { ArrayChunk[int](Empty[int](), 0) })
	requireAppErrorPanic(t, errors.ErrCodeInvalidArgument, func() { Chunk[int](Empty[int](), -1) })
	requireAppErrorPanic(t, errors.ErrCodeInvalidArgument, func() {
		MapWindows(Empty[int](), 0, func([]int) int { return 0 })
	})
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestMapWindows(t *testing.T) {
	assert.Equal(t, []int{3, 5, 7}, Collect(MapWindows(FromSlice(ints(4)), 2, sum)))
	assert.Equal(t, []int{6}, Collect(MapWindows(FromSlice(ints(3)), 3, sum)))
	assert.Equal(t, []int{}, Collect(MapWindows(FromSlice(ints(1)), 2, sum)))
	assert.Equal(t, ints(3), Collect(MapWindows(FromSlice(ints(3)), 1, sum)))

	firstLast := func(w []int) [2]int { return [2]int{w[0], w[len(w)-1]} }
	assert.Equal(t, [][2]int{{1, 3}, {2, 4}}, Collect(MapWindows(FromSlice(ints(4)), 3, firstLast)))
}

func TestMapWindowsIsFused(t *testing.T) {
	src := &oscillating{}
	m := MapWindows[int](src, 1, sum)
	assert.Equal(t, option.Some(0), m.Next())
	assert.True(t, m.Next().IsNone())
	assert.True(t, m.Next().IsNone())
	assert.Equal(t, 2, src.calls)
}

func TestFuseOnMapWindowsWarns(t *testing.T) {
	buf := captureSeqLog(t)
	Fuse[int](MapWindows(FromSlice(ints(2)), 1, sum))
	assert.Contains(t, buf.String(), "MapWindows is already fused")
}
