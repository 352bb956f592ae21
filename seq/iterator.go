package seq

import (
	"iter"

	"github.com/kbukum/gomonad/option"
)

// Iterator produces a sequence of values on demand.
//
// Next returns Some(v) for the next value and None when the sequence is
// exhausted. Implementations are not required to keep returning None
// afterwards.
type Iterator[T any] interface {
	Next() option.Option[T]
}

// Pair holds two values produced together, such as an index and an element.
type Pair[A, B any] = option.Pair[A, B]

// MakePair builds a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Values adapts it to a range-over-func sequence.
//
//	for v := range seq.Values(it) { ... }
//
// Breaking out of the loop leaves the remaining elements in it.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Pairs adapts an iterator of pairs to a two-value range-over-func sequence.
//
//	for i, v := range seq.Pairs(seq.Enumerate(it)) { ... }
func Pairs[A, B any](it Iterator[Pair[A, B]]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for {
			p, ok := it.Next().Get()
			if !ok || !yield(p.First, p.Second) {
				return
			}
		}
	}
}
