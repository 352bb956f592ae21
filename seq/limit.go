package seq

import (
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/validation"
)

// SkipIter discards a fixed number of leading elements.
type SkipIter[T any] struct {
	it      Iterator[T]
	n       int
	skipped bool
}

// Skip discards the first n elements, lazily on the first Next.
func Skip[T any](it Iterator[T], n int) *SkipIter[T] {
	checkCount(n)
	diagnoseSkip(it)
	return &SkipIter[T]{it: it, n: n}
}

func (s *SkipIter[T]) Next() option.Option[T] {
	if !s.skipped {
		s.skipped = true
		if s.n > 0 {
			return Nth(s.it, s.n)
		}
	}
	return s.it.Next()
}

// SkipWhileIter discards leading elements matching a predicate.
type SkipWhileIter[T any] struct {
	it   Iterator[T]
	pred func(T) bool
	done bool
}

// SkipWhile discards elements while pred holds, then yields the rest
// without consulting pred again.
func SkipWhile[T any](it Iterator[T], pred func(T) bool) *SkipWhileIter[T] {
	return &SkipWhileIter[T]{it: it, pred: pred}
}

func (s *SkipWhileIter[T]) Next() option.Option[T] {
	if s.done {
		return s.it.Next()
	}
	for {
		v := s.it.Next()
		if v.IsNone() {
			return v
		}
		if !s.pred(v.UnwrapUnchecked()) {
			s.done = true
			return v
		}
	}
}

// StepByIter yields every step-th element.
type StepByIter[T any] struct {
	it    Iterator[T]
	step  int
	first bool
}

// StepBy yields the first element and then every step-th one after it.
// step must be positive.
func StepBy[T any](it Iterator[T], step int) *StepByIter[T] {
	validation.MustValidate(stepParams{Step: step})
	return &StepByIter[T]{it: it, step: step, first: true}
}

func (s *StepByIter[T]) Next() option.Option[T] {
	if s.first {
		s.first = false
		return s.it.Next()
	}
	return nth(s.it, s.step-1)
}

// TakeIter yields at most a fixed number of elements.
type TakeIter[T any] struct {
	it Iterator[T]
	n  int
}

// Take yields at most n elements. Once n elements have been yielded the
// source is no longer pulled.
func Take[T any](it Iterator[T], n int) *TakeIter[T] {
	checkCount(n)
	return &TakeIter[T]{it: it, n: n}
}

func (t *TakeIter[T]) Next() option.Option[T] {
	if t.n == 0 {
		return option.None[T]()
	}
	t.n--
	return t.it.Next()
}

// TakeWhileIter yields leading elements matching a predicate.
type TakeWhileIter[T any] struct {
	it   Iterator[T]
	pred func(T) bool
	done bool
}

// TakeWhile yields elements while pred holds. The first element failing pred
// is consumed and dropped, and the iterator stays exhausted afterwards even
// if the source has more.
func TakeWhile[T any](it Iterator[T], pred func(T) bool) *TakeWhileIter[T] {
	return &TakeWhileIter[T]{it: it, pred: pred}
}

func (t *TakeWhileIter[T]) Next() option.Option[T] {
	if t.done {
		return option.None[T]()
	}
	v := t.it.Next()
	if v.IsSome() && !t.pred(v.UnwrapUnchecked()) {
		t.done = true
		return option.None[T]()
	}
	return v
}

// MapWhileIter maps elements until the mapping function returns None.
type MapWhileIter[T, U any] struct {
	it Iterator[T]
	f  func(T) option.Option[U]
}

// MapWhile yields f(v) for each element and returns None when f does. It is
// not latched: a later Next pulls the source again.
func MapWhile[T, U any](it Iterator[T], f func(T) option.Option[U]) *MapWhileIter[T, U] {
	return &MapWhileIter[T, U]{it: it, f: f}
}

func (m *MapWhileIter[T, U]) Next() option.Option[U] {
	return option.AndThen(m.it.Next(), m.f)
}

// ScanIter threads a state through the elements.
type ScanIter[T, S, B any] struct {
	it    Iterator[T]
	state S
	f     func(S, T) (S, option.Option[B])
}

// Scan calls f with the current state and each element. f returns the new
// state and the value to yield; returning None ends the sequence for that
// call.
func Scan[T, S, B any](it Iterator[T], init S, f func(S, T) (S, option.Option[B])) *ScanIter[T, S, B] {
	return &ScanIter[T, S, B]{it: it, state: init, f: f}
}

func (s *ScanIter[T, S, B]) Next() option.Option[B] {
	v, ok := s.it.Next().Get()
	if !ok {
		return option.None[B]()
	}
	var out option.Option[B]
	s.state, out = s.f(s.state, v)
	return out
}

// State returns the current state.
func (s *ScanIter[T, S, B]) State() S {
	return s.state
}
