package seq

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/gomonad/errors"
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceSources(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	assert.Equal(t, 3, s.Len())
	s.Next()
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.AdvanceBy(2).IsOk())
	assert.Equal(t, 0, s.Len())

	assert.Equal(t, []string{"x"}, Collect(Once("x")))
	assert.Equal(t, []int{}, Collect(Empty[int]()))
}

func TestFromString(t *testing.T) {
	assert.Equal(t, []rune{'h', 'é', 'l', 'l', 'o'}, Collect(FromString("héllo")))
	assert.Equal(t, []rune{}, Collect(FromString("")))
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	assert.Equal(t, m, CollectMap(FromMap(m)))
}

func TestFromSeq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Collect(FromSeq(slices.Values([]int{1, 2, 3}))))

	keys := Collect(FromSeq(maps.Keys(map[string]bool{"k": true})))
	assert.Equal(t, []string{"k"}, keys)

	p := FromSeq(slices.Values([]int{1, 2, 3}))
	assert.Equal(t, option.Some(1), p.Next())
	p.Stop()
	assert.True(t, p.Next().IsNone())
}

func TestFromPull(t *testing.T) {
	i := 0
	stopped := false
	p := FromPull(func() (int, bool) { i++; return i, i <= 2 }, func() { stopped = true })
	assert.Equal(t, []int{1, 2}, Collect(p))
	assert.True(t, stopped)
}

func TestFromFunc(t *testing.T) {
	n := 0
	gen := FromFunc(func() option.Option[int] {
		n++
		if n > 3 {
			return option.None[int]()
		}
		return option.Some(n * n)
	})
	assert.Equal(t, []int{1, 4, 9}, Collect[int](gen))
}

func TestFromCursor(t *testing.T) {
	t.Run("error ends and is kept", func(t *testing.T) {
		boom := fmt.Errorf("boom")
		i := 0
		c := FromCursor(func() (int, error) {
			i++
			if i > 2 {
				return 0, boom
			}
			return i, nil
		})
		assert.Equal(t, []int{1, 2}, Collect(c))
		assert.Equal(t, boom, c.Err())
		assert.True(t, c.Next().IsNone())
		assert.Equal(t, 3, i, "cursor is not called after it failed")
	})
	t.Run("eof is a clean end", func(t *testing.T) {
		c := FromCursor(func() (int, error) { return 0, io.EOF })
		assert.True(t, c.Next().IsNone())
		assert.NoError(t, c.Err())
	})
}

func TestFromScanner(t *testing.T) {
	lines := FromScanner(bufio.NewScanner(strings.NewReader("a\nb\n\nc")))
	assert.Equal(t, []string{"a", "b", "", "c"}, Collect(lines))
	assert.NoError(t, lines.Err())
}

func TestOnceWith(t *testing.T) {
	calls := 0
	mk := func() int { calls++; return 42 }

	o := OnceWith(mk)
	assert.Equal(t, 0, calls, "deferred until pulled")
	assert.Equal(t, option.Some(42), o.Next())
	assert.True(t, o.Next().IsNone())
	assert.True(t, o.Next().IsNone())
	assert.Equal(t, 1, calls)
}

func TestOnceWithSpecializations(t *testing.T) {
	calls := 0
	mk := func() int { calls++; return 1 }

	assert.True(t, Nth[int](OnceWith(mk), 1).IsNone())
	assert.Equal(t, 0, calls, "Nth past the value drops the function uncalled")
	assert.Equal(t, option.Some(1), Nth[int](OnceWith(mk), 0))

	assert.True(t, AdvanceBy[int](OnceWith(mk), 0).IsOk())
	assert.True(t, AdvanceBy[int](OnceWith(mk), 1).IsOk())
	assert.Equal(t, result.Err[struct{}](2), AdvanceBy[int](OnceWith(mk), 3))
	spent := OnceWith(mk)
	spent.Next()
	assert.Equal(t, result.Err[struct{}](2), AdvanceBy[int](spent, 2))

	assert.Equal(t, result.Ok[[]int, []int]([]int{1}), NextChunk[int](OnceWith(mk), 1))
	assert.Equal(t, result.Err[[]int]([]int{1}), NextChunk[int](OnceWith(mk), 3))
	assert.Equal(t, result.Err[[]int]([]int{}), NextChunk[int](spent, 1))

	assert.Equal(t, 1, Count[int](OnceWith(mk)))
	assert.Equal(t, 0, Count[int](spent))
}

type counterBox struct {
	hits []int
}

func (c counterBox) Clone() counterBox {
	return counterBox{hits: slices.Clone(c.hits)}
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []string{"a", "a", "a"}, Collect(Take[string](Repeat("a"), 3)))

	boxes := Collect(Take[counterBox](Repeat(counterBox{hits: []int{0}}), 2))
	boxes[0].hits[0] = 99
	assert.Equal(t, 0, boxes[1].hits[0], "Cloner values are deep copied")
}

func TestRepeatSpecializations(t *testing.T) {
	r := Repeat(7)
	assert.Equal(t, option.Some(7), Nth[int](r, 1000))
	assert.True(t, AdvanceBy[int](r, 1_000_000).IsOk())
	assert.Equal(t, result.Ok[[]int, []int]([]int{7, 7, 7}), NextChunk[int](r, 3))

	assert.True(t, All[int](r, func(n int) bool { return n == 7 }))
	assert.False(t, Any[int](r, func(n int) bool { return n > 7 }))
	assert.Equal(t, option.Some(7), Find[int](r, func(n int) bool { return n == 7 }))
	assert.True(t, Find[int](r, func(n int) bool { return n == 8 }).IsNone())

	requireAppErrorPanic(t, errors.ErrCodeInvalidArgument, func() { Count[int](r) })
}

func TestFindMapOnRepeatLooksOnce(t *testing.T) {
	calls := 0
	none := func(int) option.Option[string] {
		calls++
		return option.None[string]()
	}
	assert.True(t, FindMap[int](Repeat(1), none).IsNone())
	assert.Equal(t, 1, calls)

	got := FindMap[int](Repeat(2), func(n int) option.Option[string] {
		return option.Some(fmt.Sprint(n))
	})
	assert.Equal(t, option.Some("2"), got)
}

func TestMeaninglessAdaptersWarn(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"fuse once-with", func() { Fuse[int](OnceWith(func() int { return 1 })) }, "fusing a once-with iterator is meaningless"},
		{"skip once-with", func() { Skip[int](OnceWith(func() int { return 1 }), 1) }, "skipping a once-with iterator is meaningless"},
		{"fuse repeat", func() { Fuse[int](Repeat(1)) }, "fusing a repeat iterator is meaningless"},
		{"skip repeat", func() { Skip[int](Repeat(1), 2) }, "skipping a repeat iterator is meaningless"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureSeqLog(t)
			tt.fn()
			require.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"level":"warn"`)
		})
	}

	buf := captureSeqLog(t)
	Fuse[int](FromSlice(ints(1)))
	assert.Empty(t, buf.String())
}

func TestSkipOnSpecialSourcesStillSkips(t *testing.T) {
	captureSeqLog(t)
	assert.Equal(t, []int{}, Collect(Skip[int](OnceWith(func() int { return 1 }), 1)))
	assert.Equal(t, option.Some(3), Skip[int](Repeat(3), 5).Next())
}
