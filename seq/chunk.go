package seq

import (
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/validation"
)

// ArrayChunkIter yields fixed-size chunks.
type ArrayChunkIter[T any] struct {
	it     Iterator[T]
	size   int
	unused option.Option[[]T]
}

// ArrayChunk yields non-overlapping chunks of exactly n elements. A trailing
// partial chunk is not yielded; it is kept and returned by Unused. n must be
// positive.
func ArrayChunk[T any](it Iterator[T], n int) *ArrayChunkIter[T] {
	checkChunkSize(n)
	return &ArrayChunkIter[T]{it: it, size: n}
}

func (a *ArrayChunkIter[T]) Next() option.Option[[]T] {
	chunk := make([]T, 0, a.size)
	for len(chunk) < a.size {
		v, ok := a.it.Next().Get()
		if !ok {
			if len(chunk) > 0 {
				a.unused = option.Some(chunk)
			}
			return option.None[[]T]()
		}
		chunk = append(chunk, v)
	}
	return option.Some(chunk)
}

// Unused returns the trailing partial chunk left when the source ran out,
// or None if there was none.
func (a *ArrayChunkIter[T]) Unused() option.Option[[]T] {
	return a.unused
}

// ChunkIter yields chunks of up to a fixed size.
type ChunkIter[T any] struct {
	chunks   *ArrayChunkIter[T]
	finished bool
}

// Chunk yields non-overlapping chunks of n elements; the last chunk may be
// shorter. n must be positive.
func Chunk[T any](it Iterator[T], n int) *ChunkIter[T] {
	return &ChunkIter[T]{chunks: ArrayChunk(it, n)}
}

// Next yields the partial tail once after the source runs out, then None
// without pulling the source again.
func (c *ChunkIter[T]) Next() option.Option[[]T] {
	if c.finished {
		return option.None[[]T]()
	}
	if v := c.chunks.Next(); v.IsSome() {
		return v
	}
	c.finished = true
	return c.chunks.unused.Take()
}

// MapWindowsIter applies a function over a sliding window.
type MapWindowsIter[T, R any] struct {
	it     Iterator[T]
	size   int
	window []T
	f      func([]T) R
}

// MapWindows calls f on every window of n consecutive elements and yields
// the results. An input shorter than n yields nothing. The slice passed to f
// is reused between calls and must not be retained. n must be at least 1.
//
// MapWindows is fused: once the source runs out it is released.
func MapWindows[T, R any](it Iterator[T], n int, f func([]T) R) *MapWindowsIter[T, R] {
	validation.MustValidate(windowParams{WindowSize: n})
	return &MapWindowsIter[T, R]{it: it, size: n, f: f}
}

func (m *MapWindowsIter[T, R]) Next() option.Option[R] {
	if m.it == nil {
		return option.None[R]()
	}
	if m.window == nil {
		m.window = make([]T, 0, m.size)
		for len(m.window) < m.size {
			v, ok := m.it.Next().Get()
			if !ok {
				return m.release()
			}
			m.window = append(m.window, v)
		}
		return option.Some(m.f(m.window))
	}
	v, ok := m.it.Next().Get()
	if !ok {
		return m.release()
	}
	copy(m.window, m.window[1:])
	m.window[m.size-1] = v
	return option.Some(m.f(m.window))
}

func (m *MapWindowsIter[T, R]) release() option.Option[R] {
	m.it, m.window = nil, nil
	return option.None[R]()
}

func (m *MapWindowsIter[T, R]) fuseDiagnostic() (string, string) {
	return "MapWindows", "MapWindows is already fused"
}

// BatchingIter lets a function consume the source in batches.
type BatchingIter[T, B any] struct {
	it Iterator[T]
	f  func(Iterator[T]) option.Option[B]
}

// Batching calls f with the source on every Next. f pulls as many elements as
// it needs and returns the batch, or None to end the sequence.
//
//	pairs := seq.Batching(it, func(src seq.Iterator[int]) option.Option[[2]int] {
//	    a, ok := src.Next().Get()
//	    if !ok {
//	        return option.None[[2]int]()
//	    }
//	    return option.Some([2]int{a, src.Next().UnwrapOr(0)})
//	})
func Batching[T, B any](it Iterator[T], f func(Iterator[T]) option.Option[B]) *BatchingIter[T, B] {
	return &BatchingIter[T, B]{it: it, f: f}
}

func (b *BatchingIter[T, B]) Next() option.Option[B] {
	return b.f(b.it)
}
