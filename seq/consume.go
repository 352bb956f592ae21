package seq

import (
	"cmp"

	"github.com/kbukum/gomonad/either"
	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/ordering"
	"github.com/kbukum/gomonad/result"
)

// Optional fast paths. A source implementing one of these answers the
// matching free function without being pulled element by element.
type (
	advancer interface {
		AdvanceBy(n int) result.Result[struct{}, int]
	}
	nther[T any] interface {
		Nth(n int) option.Option[T]
	}
	chunker[T any] interface {
		NextChunk(n int) result.Result[[]T, []T]
	}
	counter interface {
		Count() int
	}
	finder[T any] interface {
		Find(pred func(T) bool) option.Option[T]
	}
	allMatcher[T any] interface {
		All(pred func(T) bool) bool
	}
	anyMatcher[T any] interface {
		Any(pred func(T) bool) bool
	}
	repeater[T any] interface {
		repeated() T
	}
)

// Number is the set of types Sum and Product accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// AdvanceBy pulls and discards n elements. It returns Ok if all n were
// available and Err(k) otherwise, where k is the number of steps that could
// not be taken. AdvanceBy(it, 0) is always Ok. n must not be negative.
func AdvanceBy[T any](it Iterator[T], n int) result.Result[struct{}, int] {
	checkCount(n)
	if a, ok := it.(advancer); ok {
		return a.AdvanceBy(n)
	}
	return advanceBy(it, n)
}

func advanceBy[T any](it Iterator[T], n int) result.Result[struct{}, int] {
	for i := 0; i < n; i++ {
		if it.Next().IsNone() {
			return errSteps(n - i)
		}
	}
	return okSteps()
}

func okSteps() result.Result[struct{}, int] {
	return result.Ok[struct{}, int](struct{}{})
}

func errSteps(remaining int) result.Result[struct{}, int] {
	return result.Err[struct{}](remaining)
}

// Nth returns the element n positions ahead, discarding the ones before it.
// Nth(it, 0) is equivalent to it.Next().
func Nth[T any](it Iterator[T], n int) option.Option[T] {
	checkCount(n)
	if x, ok := it.(nther[T]); ok {
		return x.Nth(n)
	}
	return nth(it, n)
}

func nth[T any](it Iterator[T], n int) option.Option[T] {
	if AdvanceBy(it, n).IsErr() {
		return option.None[T]()
	}
	return it.Next()
}

// NextChunk pulls up to n elements. It returns Ok with exactly n elements, or
// Err with the fewer elements that were available. n must be positive.
func NextChunk[T any](it Iterator[T], n int) result.Result[[]T, []T] {
	checkChunkSize(n)
	if c, ok := it.(chunker[T]); ok {
		return c.NextChunk(n)
	}
	buf := make([]T, 0, n)
	for len(buf) < n {
		v, ok := it.Next().Get()
		if !ok {
			return result.Err[[]T](buf)
		}
		buf = append(buf, v)
	}
	return result.Ok[[]T, []T](buf)
}

// Last drains it and returns the final element.
func Last[T any](it Iterator[T]) option.Option[T] {
	last := option.None[T]()
	for {
		v := it.Next()
		if v.IsNone() {
			return last
		}
		last = v
	}
}

// Count drains it and returns the number of elements. It does not return for
// infinite iterators; Repeat panics instead.
func Count[T any](it Iterator[T]) int {
	if c, ok := it.(counter); ok {
		return c.Count()
	}
	n := 0
	for it.Next().IsSome() {
		n++
	}
	return n
}

// Find returns the first element matching pred, consuming up to and including it.
func Find[T any](it Iterator[T], pred func(T) bool) option.Option[T] {
	if f, ok := it.(finder[T]); ok {
		return f.Find(pred)
	}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return option.None[T]()
		}
		if pred(v) {
			return option.Some(v)
		}
	}
}

// FindMap returns the first Some produced by f.
func FindMap[T, U any](it Iterator[T], f func(T) option.Option[U]) option.Option[U] {
	if r, ok := it.(repeater[T]); ok {
		return f(r.repeated())
	}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return option.None[U]()
		}
		if r := f(v); r.IsSome() {
			return r
		}
	}
}

// Position returns the zero-based index of the first element matching pred.
func Position[T any](it Iterator[T], pred func(T) bool) option.Option[int] {
	for i := 0; ; i++ {
		v, ok := it.Next().Get()
		if !ok {
			return option.None[int]()
		}
		if pred(v) {
			return option.Some(i)
		}
	}
}

// Index returns the zero-based index of the first element equal to want.
func Index[T comparable](it Iterator[T], want T) option.Option[int] {
	return Position(it, func(v T) bool { return v == want })
}

// Contains reports whether an element equal to want occurs, consuming up to it.
func Contains[T comparable](it Iterator[T], want T) bool {
	return Index(it, want).IsSome()
}

// Fold combines every element into an accumulator, starting from init.
func Fold[T, B any](it Iterator[T], init B, f func(B, T) B) B {
	acc := init
	for {
		v, ok := it.Next().Get()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// Reduce folds using the first element as the initial accumulator. It
// returns None for an empty iterator.
func Reduce[T any](it Iterator[T], f func(T, T) T) option.Option[T] {
	first, ok := it.Next().Get()
	if !ok {
		return option.None[T]()
	}
	return option.Some(Fold(it, first, f))
}

// Sum adds all elements. It returns None for an empty iterator.
func Sum[T Number](it Iterator[T]) option.Option[T] {
	return Reduce(it, func(a, b T) T { return a + b })
}

// Product multiplies all elements. It returns None for an empty iterator.
func Product[T Number](it Iterator[T]) option.Option[T] {
	return Reduce(it, func(a, b T) T { return a * b })
}

// All reports whether every element matches pred. It stops at the first
// mismatch and returns true for an empty iterator.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	if m, ok := it.(allMatcher[T]); ok {
		return m.All(pred)
	}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return true
		}
		if !pred(v) {
			return false
		}
	}
}

// Any reports whether some element matches pred. It stops at the first match
// and returns false for an empty iterator.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	if m, ok := it.(anyMatcher[T]); ok {
		return m.Any(pred)
	}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return false
		}
		if pred(v) {
			return true
		}
	}
}

// Max returns the greatest element. Among equal maxima the last one wins.
func Max[T cmp.Ordered](it Iterator[T]) option.Option[T] {
	return MaxBy(it, ordering.Compare[T])
}

// Min returns the least element. Among equal minima the last one wins.
func Min[T cmp.Ordered](it Iterator[T]) option.Option[T] {
	return MinBy(it, ordering.Compare[T])
}

// MaxBy returns the greatest element according to compare. Among equal
// maxima the last one wins.
func MaxBy[T any](it Iterator[T], compare func(T, T) ordering.Ordering) option.Option[T] {
	return Reduce(it, func(best, v T) T { return ordering.MaxBy(best, v, compare) })
}

// MinBy returns the least element according to compare. Among equal minima
// the last one wins.
func MinBy[T any](it Iterator[T], compare func(T, T) ordering.Ordering) option.Option[T] {
	return Reduce(it, func(best, v T) T { return ordering.MinBy(best, v, compare) })
}

// MaxByKey returns the element with the greatest key. key is called once per
// element. Among equal keys the last element wins.
func MaxByKey[T any, K cmp.Ordered](it Iterator[T], key func(T) K) option.Option[T] {
	return byKey(it, key, ordering.MaxBy[Pair[K, T]])
}

// MinByKey returns the element with the least key. key is called once per
// element. Among equal keys the last element wins.
func MinByKey[T any, K cmp.Ordered](it Iterator[T], key func(T) K) option.Option[T] {
	return byKey(it, key, ordering.MinBy[Pair[K, T]])
}

func byKey[T any, K cmp.Ordered](
	it Iterator[T],
	key func(T) K,
	pick func(a, b Pair[K, T], compare func(a, b Pair[K, T]) ordering.Ordering) Pair[K, T],
) option.Option[T] {
	keyed := Map(it, func(v T) Pair[K, T] { return MakePair(key(v), v) })
	compare := func(a, b Pair[K, T]) ordering.Ordering { return ordering.Compare(a.First, b.First) }
	best := Reduce[Pair[K, T]](keyed, func(a, b Pair[K, T]) Pair[K, T] { return pick(a, b, compare) })
	return option.Map(best, func(p Pair[K, T]) T { return p.Second })
}

// Partition drains it into the elements matching pred and the rest,
// preserving order in both.
func Partition[T any](it Iterator[T], pred func(T) bool) (matched, rest []T) {
	matched, rest = []T{}, []T{}
	PartitionInto(it, pred, &matched, &rest)
	return matched, rest
}

// PartitionInto is Partition appending to caller-supplied slices.
func PartitionInto[T any](it Iterator[T], pred func(T) bool, matched, rest *[]T) {
	ForEach(it, func(v T) {
		if pred(v) {
			*matched = append(*matched, v)
		} else {
			*rest = append(*rest, v)
		}
	})
}

// PartitionMap drains it, routing each element to the left or right slice
// according to the side f returns.
func PartitionMap[T, L, R any](it Iterator[T], f func(T) either.Either[L, R]) (lefts []L, rights []R) {
	lefts, rights = []L{}, []R{}
	PartitionMapInto(it, f, &lefts, &rights)
	return lefts, rights
}

// PartitionMapInto is PartitionMap appending to caller-supplied slices.
func PartitionMapInto[T, L, R any](it Iterator[T], f func(T) either.Either[L, R], lefts *[]L, rights *[]R) {
	ForEach(it, func(v T) {
		e := f(v)
		if e.IsLeft() {
			*lefts = append(*lefts, e.UnwrapLeftUnchecked())
		} else {
			*rights = append(*rights, e.UnwrapRightUnchecked())
		}
	})
}

// ForEach calls f for every element.
func ForEach[T any](it Iterator[T], f func(T)) {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return
		}
		f(v)
	}
}

// Remain drains the rest of it into memory and returns an iterator over the
// buffered elements.
func Remain[T any](it Iterator[T]) *SliceIter[T] {
	return FromSlice(Collect(it))
}
