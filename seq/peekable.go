package seq

import (
	"github.com/kbukum/gomonad/option"
)

// PeekableIter allows looking at the next element without consuming it.
type PeekableIter[T any] struct {
	it Iterator[T]
	// peeked is Some(next result) once the source has been pulled ahead;
	// the inner Option records whether that result was an element or None.
	peeked option.Option[option.Option[T]]
}

// Peekable wraps it with a one-element lookahead.
func Peekable[T any](it Iterator[T]) *PeekableIter[T] {
	return &PeekableIter[T]{it: it}
}

func (p *PeekableIter[T]) Next() option.Option[T] {
	if v, ok := p.peeked.Take().Get(); ok {
		return v
	}
	return p.it.Next()
}

// Peek returns the element the next call to Next will return, pulling the
// source at most once however often it is called.
func (p *PeekableIter[T]) Peek() option.Option[T] {
	return *p.peeked.GetOrInsertWith(p.it.Next)
}

// NextIf consumes and returns the next element if it matches pred. Otherwise
// the element stays buffered and None is returned.
func (p *PeekableIter[T]) NextIf(pred func(T) bool) option.Option[T] {
	v := p.Next()
	if v.IsSomeAnd(pred) {
		return v
	}
	p.peeked = option.Some(v)
	return option.None[T]()
}

// NextIfEq consumes and returns the next element of p if it equals want.
func NextIfEq[T comparable](p *PeekableIter[T], want T) option.Option[T] {
	return p.NextIf(func(v T) bool { return v == want })
}

// IntersperseIter places a separator between adjacent elements.
type IntersperseIter[T any] struct {
	it      *PeekableIter[T]
	sep     func() T
	needSep bool
}

// Intersperse yields sep between every two adjacent elements of it. sep is
// copied like a Repeat value for every occurrence.
func Intersperse[T any](it Iterator[T], sep T) *IntersperseIter[T] {
	return IntersperseWith(it, func() T { return clone(sep) })
}

// IntersperseWith is Intersperse with separators produced by f.
func IntersperseWith[T any](it Iterator[T], f func() T) *IntersperseIter[T] {
	return &IntersperseIter[T]{it: Peekable(it), sep: f}
}

func (s *IntersperseIter[T]) Next() option.Option[T] {
	if s.needSep && s.it.Peek().IsSome() {
		s.needSep = false
		return option.Some(s.sep())
	}
	s.needSep = true
	return s.it.Next()
}
