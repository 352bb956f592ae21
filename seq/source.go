package seq

import (
	"bufio"
	stderrors "errors"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/result"
)

// SliceIter iterates over a slice.
type SliceIter[T any] struct {
	items []T
	index int
}

// FromSlice creates an iterator over xs. The slice is not copied.
func FromSlice[T any](xs []T) *SliceIter[T] {
	return &SliceIter[T]{items: xs}
}

// Once creates an iterator yielding v exactly once.
func Once[T any](v T) *SliceIter[T] {
	return FromSlice([]T{v})
}

// Empty creates an iterator with no elements.
func Empty[T any]() *SliceIter[T] {
	return FromSlice[T](nil)
}

func (s *SliceIter[T]) Next() option.Option[T] {
	if s.index >= len(s.items) {
		return option.None[T]()
	}
	v := s.items[s.index]
	s.index++
	return option.Some(v)
}

// Len returns the number of elements not yet yielded.
func (s *SliceIter[T]) Len() int {
	return len(s.items) - s.index
}

func (s *SliceIter[T]) AdvanceBy(n int) result.Result[struct{}, int] {
	checkCount(n)
	if rest := s.Len(); n > rest {
		s.index = len(s.items)
		return errSteps(n - rest)
	}
	s.index += n
	return okSteps()
}

func (s *SliceIter[T]) Count() int {
	n := s.Len()
	s.index = len(s.items)
	return n
}

// StringIter iterates over the runes of a string.
type StringIter struct {
	s string
}

// FromString creates an iterator over the runes of s. Invalid UTF-8 bytes
// are yielded as utf8.RuneError.
func FromString(s string) *StringIter {
	return &StringIter{s: s}
}

func (s *StringIter) Next() option.Option[rune] {
	if len(s.s) == 0 {
		return option.None[rune]()
	}
	r, size := utf8.DecodeRuneInString(s.s)
	s.s = s.s[size:]
	return option.Some(r)
}

// FromMap creates an iterator over a snapshot of the entries of m, in
// unspecified order.
func FromMap[K comparable, V any](m map[K]V) *SliceIter[Pair[K, V]] {
	entries := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, MakePair(k, v))
	}
	return FromSlice(entries)
}

// PullIter adapts a pull function pair, such as the one returned by
// iter.Pull, to an Iterator.
type PullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq creates an iterator pulling from a range-over-func sequence. The
// sequence is stopped once it is exhausted; call Stop to release it earlier.
func FromSeq[T any](s iter.Seq[T]) *PullIter[T] {
	return FromPull(iter.Pull(s))
}

// FromPull creates an iterator from a next/stop pair. stop may be nil.
func FromPull[T any](next func() (T, bool), stop func()) *PullIter[T] {
	return &PullIter[T]{next: next, stop: stop}
}

func (p *PullIter[T]) Next() option.Option[T] {
	if p.next == nil {
		return option.None[T]()
	}
	v, ok := p.next()
	if !ok {
		p.Stop()
		return option.None[T]()
	}
	return option.Some(v)
}

// Stop releases the underlying sequence. Next returns None afterwards.
func (p *PullIter[T]) Stop() {
	if p.stop != nil {
		p.stop()
	}
	p.next, p.stop = nil, nil
}

// FuncIter is an Iterator backed by a generator function.
type FuncIter[T any] func() option.Option[T]

// FromFunc creates an iterator calling f for every element. f decides when
// the sequence ends, and whether it resumes.
func FromFunc[T any](f func() option.Option[T]) FuncIter[T] {
	return FuncIter[T](f)
}

func (f FuncIter[T]) Next() option.Option[T] {
	return f()
}

// CursorIter adapts a fallible cursor to an Iterator. The first error ends
// the sequence; it is kept and reported by Err, except io.EOF.
type CursorIter[T any] struct {
	next func() (T, error)
	err  error
}

// FromCursor creates an iterator calling next until it returns an error.
func FromCursor[T any](next func() (T, error)) *CursorIter[T] {
	return &CursorIter[T]{next: next}
}

// FromScanner creates an iterator over the tokens of sc.
//
//	lines := seq.FromScanner(bufio.NewScanner(r))
func FromScanner(sc *bufio.Scanner) *CursorIter[string] {
	return FromCursor(func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	})
}

func (c *CursorIter[T]) Next() option.Option[T] {
	if c.next == nil {
		return option.None[T]()
	}
	v, err := c.next()
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			c.err = err
		}
		c.next = nil
		return option.None[T]()
	}
	return option.Some(v)
}

// Err returns the error that ended the sequence, or nil if it ended cleanly
// or has not ended yet.
func (c *CursorIter[T]) Err() error {
	return c.err
}
