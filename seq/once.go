package seq

import (
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/result"
)

// OnceWithIter yields the result of a deferred function exactly once.
type OnceWithIter[T any] struct {
	f func() T
}

// OnceWith creates an iterator that calls f on the first Next and yields its
// result. Later calls return None.
func OnceWith[T any](f func() T) *OnceWithIter[T] {
	return &OnceWithIter[T]{f: f}
}

func (o *OnceWithIter[T]) Next() option.Option[T] {
	if o.f == nil {
		return option.None[T]()
	}
	f := o.f
	o.f = nil
	return option.Some(f())
}

// Nth returns the value for n == 0. For n > 0 the function is dropped without
// being called and None is returned.
func (o *OnceWithIter[T]) Nth(n int) option.Option[T] {
	checkCount(n)
	if n == 0 {
		return o.Next()
	}
	o.f = nil
	return option.None[T]()
}

// AdvanceBy drops the function without calling it.
func (o *OnceWithIter[T]) AdvanceBy(n int) result.Result[struct{}, int] {
	checkCount(n)
	switch {
	case n == 0:
		return okSteps()
	case o.f == nil:
		return errSteps(n)
	}
	o.f = nil
	if n == 1 {
		return okSteps()
	}
	return errSteps(n - 1)
}

// NextChunk returns Ok with the value when n == 1 and Err with whatever is
// left otherwise.
func (o *OnceWithIter[T]) NextChunk(n int) result.Result[[]T, []T] {
	checkChunkSize(n)
	rest := o.Next().ToSlice()
	if n == 1 && len(rest) == 1 {
		return result.Ok[[]T, []T](rest)
	}
	return result.Err[[]T](rest)
}

func (o *OnceWithIter[T]) Count() int {
	if o.f == nil {
		return 0
	}
	o.f = nil
	return 1
}

func (o *OnceWithIter[T]) fuseDiagnostic() (string, string) {
	return "OnceWith", "fusing a once-with iterator is meaningless"
}

func (o *OnceWithIter[T]) skipDiagnostic() (string, string) {
	return "OnceWith", "skipping a once-with iterator is meaningless"
}
