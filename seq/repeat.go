package seq

import (
	"github.com/kbukum/gomonad/errors"
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/result"
)

// Cloner is implemented by values that need a deep copy when yielded
// repeatedly, such as structs holding slices or maps.
type Cloner[T any] interface {
	Clone() T
}

func clone[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// RepeatIter yields copies of one value forever.
type RepeatIter[T any] struct {
	value T
}

// Repeat creates an infinite iterator of copies of v. Values implementing
// Cloner are cloned; others are copied by assignment.
func Repeat[T any](v T) *RepeatIter[T] {
	return &RepeatIter[T]{value: v}
}

func (r *RepeatIter[T]) Next() option.Option[T] {
	return option.Some(r.repeated())
}

// repeated lets FindMap, whose extra type parameter cannot be a method,
// look at the single value once.
func (r *RepeatIter[T]) repeated() T {
	return clone(r.value)
}

func (r *RepeatIter[T]) Nth(n int) option.Option[T] {
	checkCount(n)
	return r.Next()
}

func (r *RepeatIter[T]) AdvanceBy(n int) result.Result[struct{}, int] {
	checkCount(n)
	return okSteps()
}

func (r *RepeatIter[T]) NextChunk(n int) result.Result[[]T, []T] {
	checkChunkSize(n)
	out := make([]T, n)
	for i := range out {
		out[i] = clone(r.value)
	}
	return result.Ok[[]T, []T](out)
}

// Count panics: a repeated sequence has no end.
func (r *RepeatIter[T]) Count() int {
	panic(errors.InvalidArgument("iterator", "Repeat is infinite and cannot be counted"))
}

func (r *RepeatIter[T]) All(pred func(T) bool) bool {
	return pred(r.value)
}

func (r *RepeatIter[T]) Any(pred func(T) bool) bool {
	return pred(r.value)
}

func (r *RepeatIter[T]) Find(pred func(T) bool) option.Option[T] {
	if pred(r.value) {
		return r.Next()
	}
	return option.None[T]()
}

func (r *RepeatIter[T]) fuseDiagnostic() (string, string) {
	return "Repeat", "fusing a repeat iterator is meaningless"
}

func (r *RepeatIter[T]) skipDiagnostic() (string, string) {
	return "Repeat", "skipping a repeat iterator is meaningless"
}
