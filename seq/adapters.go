package seq

import (
	"github.com/kbukum/gomonad/either"
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/result"
)

// MapIter applies a function to every element.
type MapIter[T, U any] struct {
	it Iterator[T]
	f  func(T) U
}

// Map transforms each element with f.
func Map[T, U any](it Iterator[T], f func(T) U) *MapIter[T, U] {
	return &MapIter[T, U]{it: it, f: f}
}

func (m *MapIter[T, U]) Next() option.Option[U] {
	return option.Map(m.it.Next(), m.f)
}

// FilterIter yields the elements matching a predicate.
type FilterIter[T any] struct {
	it   Iterator[T]
	pred func(T) bool
}

// Filter keeps only elements for which pred returns true.
func Filter[T any](it Iterator[T], pred func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{it: it, pred: pred}
}

func (f *FilterIter[T]) Next() option.Option[T] {
	for {
		v := f.it.Next()
		if v.IsNone() || f.pred(v.UnwrapUnchecked()) {
			return v
		}
	}
}

// FilterMapIter maps and filters in one step.
type FilterMapIter[T, U any] struct {
	it Iterator[T]
	f  func(T) option.Option[U]
}

// FilterMap yields the Some results of f and skips the None results.
func FilterMap[T, U any](it Iterator[T], f func(T) option.Option[U]) *FilterMapIter[T, U] {
	return &FilterMapIter[T, U]{it: it, f: f}
}

func (f *FilterMapIter[T, U]) Next() option.Option[U] {
	for {
		v, ok := f.it.Next().Get()
		if !ok {
			return option.None[U]()
		}
		if r := f.f(v); r.IsSome() {
			return r
		}
	}
}

// FilterOk yields the values of Ok results.
func FilterOk[T, E any](it Iterator[result.Result[T, E]]) *FilterMapIter[result.Result[T, E], T] {
	return FilterMap(it, result.Result[T, E].Ok)
}

// FilterErr yields the errors of Err results.
func FilterErr[T, E any](it Iterator[result.Result[T, E]]) *FilterMapIter[result.Result[T, E], E] {
	return FilterMap(it, result.Result[T, E].Err)
}

// FilterLeft yields the Left values.
func FilterLeft[L, R any](it Iterator[either.Either[L, R]]) *FilterMapIter[either.Either[L, R], L] {
	return FilterMap(it, either.Either[L, R].LeftValue)
}

// FilterRight yields the Right values.
func FilterRight[L, R any](it Iterator[either.Either[L, R]]) *FilterMapIter[either.Either[L, R], R] {
	return FilterMap(it, either.Either[L, R].RightValue)
}

// EnumerateIter pairs each element with its zero-based position.
type EnumerateIter[T any] struct {
	it    Iterator[T]
	count int
}

// Enumerate yields Pair{index, element}. The index advances only when an
// element is produced.
func Enumerate[T any](it Iterator[T]) *EnumerateIter[T] {
	return &EnumerateIter[T]{it: it}
}

func (e *EnumerateIter[T]) Next() option.Option[Pair[int, T]] {
	v, ok := e.it.Next().Get()
	if !ok {
		return option.None[Pair[int, T]]()
	}
	p := MakePair(e.count, v)
	e.count++
	return option.Some(p)
}

// ChainIter yields the elements of one iterator followed by another.
type ChainIter[T any] struct {
	a, b Iterator[T]
}

// Chain yields every element of a, then every element of b. Each side is
// released once it returns None and is never pulled again.
func Chain[T any](a, b Iterator[T]) *ChainIter[T] {
	return &ChainIter[T]{a: a, b: b}
}

func (c *ChainIter[T]) Next() option.Option[T] {
	if c.a != nil {
		if v := c.a.Next(); v.IsSome() {
			return v
		}
		c.a = nil
	}
	if c.b != nil {
		if v := c.b.Next(); v.IsSome() {
			return v
		}
		c.b = nil
	}
	return option.None[T]()
}

// ZipIter pairs up the elements of two iterators.
type ZipIter[T, U any] struct {
	a Iterator[T]
	b Iterator[U]
}

// Zip yields Pair{a_i, b_i} until either side is exhausted. When a is
// exhausted first, b is not pulled for that step.
func Zip[T, U any](a Iterator[T], b Iterator[U]) *ZipIter[T, U] {
	return &ZipIter[T, U]{a: a, b: b}
}

func (z *ZipIter[T, U]) Next() option.Option[Pair[T, U]] {
	x, ok := z.a.Next().Get()
	if !ok {
		return option.None[Pair[T, U]]()
	}
	y, ok := z.b.Next().Get()
	if !ok {
		return option.None[Pair[T, U]]()
	}
	return option.Some(MakePair(x, y))
}

// InspectIter calls a function on each element as it passes through.
type InspectIter[T any] struct {
	it Iterator[T]
	f  func(T)
}

// Inspect calls f on each element before yielding it unchanged.
func Inspect[T any](it Iterator[T], f func(T)) *InspectIter[T] {
	return &InspectIter[T]{it: it, f: f}
}

func (i *InspectIter[T]) Next() option.Option[T] {
	return i.it.Next().Inspect(i.f)
}

// FuseIter returns None forever once its source has returned None.
type FuseIter[T any] struct {
	it Iterator[T]
}

// Fuse makes None sticky: the source is released on its first None and never
// pulled again.
func Fuse[T any](it Iterator[T]) *FuseIter[T] {
	diagnoseFuse(it)
	return &FuseIter[T]{it: it}
}

func (f *FuseIter[T]) Next() option.Option[T] {
	if f.it == nil {
		return option.None[T]()
	}
	v := f.it.Next()
	if v.IsNone() {
		f.it = nil
	}
	return v
}

// UniqueIter yields elements whose key has not been seen before.
type UniqueIter[T any, K comparable] struct {
	it   Iterator[T]
	key  func(T) K
	seen map[K]struct{}
}

// Unique drops elements equal to an earlier one.
func Unique[T comparable](it Iterator[T]) *UniqueIter[T, T] {
	return UniqueBy(it, func(v T) T { return v })
}

// UniqueBy drops elements whose key equals the key of an earlier element.
// Keys of every distinct element are kept for the lifetime of the iterator.
func UniqueBy[T any, K comparable](it Iterator[T], key func(T) K) *UniqueIter[T, K] {
	return &UniqueIter[T, K]{it: it, key: key, seen: make(map[K]struct{})}
}

func (u *UniqueIter[T, K]) Next() option.Option[T] {
	for {
		v, ok := u.it.Next().Get()
		if !ok {
			return option.None[T]()
		}
		k := u.key(v)
		if _, dup := u.seen[k]; !dup {
			u.seen[k] = struct{}{}
			return option.Some(v)
		}
	}
}
