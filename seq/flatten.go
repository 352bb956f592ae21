package seq

import (
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/result"
)

// FlatMapIter maps each element to an iterator and yields the elements of
// those iterators in order.
type FlatMapIter[T, U any] struct {
	it    Iterator[T]
	f     func(T) Iterator[U]
	inner Iterator[U]
}

// FlatMap maps each element to an iterator with f and flattens the results.
// An inner iterator is released as soon as it returns None.
func FlatMap[T, U any](it Iterator[T], f func(T) Iterator[U]) *FlatMapIter[T, U] {
	return &FlatMapIter[T, U]{it: it, f: f}
}

func (f *FlatMapIter[T, U]) Next() option.Option[U] {
	for {
		if f.inner != nil {
			if v := f.inner.Next(); v.IsSome() {
				return v
			}
			f.inner = nil
		}
		v, ok := f.it.Next().Get()
		if !ok {
			return option.None[U]()
		}
		f.inner = f.f(v)
	}
}

// FlattenIter yields the elements of a sequence of iterators.
type FlattenIter[T any] = FlatMapIter[Iterator[T], T]

// Flatten removes one level of nesting from an iterator of iterators.
func Flatten[T any](it Iterator[Iterator[T]]) *FlattenIter[T] {
	return FlatMap(it, func(inner Iterator[T]) Iterator[T] { return inner })
}

// FlattenSlices yields the elements of each slice in turn.
func FlattenSlices[T any](it Iterator[[]T]) *FlatMapIter[[]T, T] {
	return FlatMap(it, func(xs []T) Iterator[T] { return FromSlice(xs) })
}

// FlattenOptions yields the values of Some elements and skips None elements.
func FlattenOptions[T any](it Iterator[option.Option[T]]) *FilterMapIter[option.Option[T], T] {
	return FilterMap(it, func(o option.Option[T]) option.Option[T] { return o })
}

// FlattenResults yields the values of Ok elements and skips Err elements.
func FlattenResults[T, E any](it Iterator[result.Result[T, E]]) *FilterMapIter[result.Result[T, E], T] {
	return FilterOk(it)
}
