// Package ordering provides a three-way comparison result and helpers that
// pick between two values with a comparator.
//
// MaxBy and MinBy return the second argument when the values compare equal,
// so folding them over a sequence keeps the last of several equal extremes.
package ordering

import "cmp"

// Ordering is the result of comparing two values.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// FromInt converts a comparison integer (negative, zero, positive) to an Ordering.
func FromInt(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

// Compare returns the Ordering of a relative to b.
func Compare[T cmp.Ordered](a, b T) Ordering {
	return FromInt(cmp.Compare(a, b))
}

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering { return -o }

// Then returns o unless it is Equal, in which case it returns other.
func (o Ordering) Then(other Ordering) Ordering {
	if o != Equal {
		return o
	}
	return other
}

func (o Ordering) IsEq() bool { return o == Equal }
func (o Ordering) IsNe() bool { return o != Equal }
func (o Ordering) IsLt() bool { return o == Less }
func (o Ordering) IsGt() bool { return o == Greater }
func (o Ordering) IsLe() bool { return o != Greater }
func (o Ordering) IsGe() bool { return o != Less }

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return "Equal"
	}
}

// MaxBy returns the greater of a and b according to compare, or b if they are equal.
func MaxBy[T any](a, b T, compare func(T, T) Ordering) T {
	if compare(a, b) == Greater {
		return a
	}
	return b
}

// MinBy returns the lesser of a and b according to compare, or b if they are equal.
func MinBy[T any](a, b T, compare func(T, T) Ordering) T {
	if compare(a, b) == Less {
		return a
	}
	return b
}

// Max returns the greater of a and b, or b if they are equal.
func Max[T cmp.Ordered](a, b T) T {
	return MaxBy(a, b, Compare[T])
}

// Min returns the lesser of a and b, or b if they are equal.
func Min[T cmp.Ordered](a, b T) T {
	return MinBy(a, b, Compare[T])
}
