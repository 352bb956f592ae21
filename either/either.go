// Package either provides Either, a value holding exactly one of two
// alternatives: Left or Right.
//
// Neither side carries success or failure meaning. Iterator adapters such as
// seq.PartitionBy and seq.FilterLeft use Either to route elements.
package either

import (
	"fmt"

	"github.com/kbukum/gomonad/errors"
	"github.com/kbukum/gomonad/option"
)

// Either holds a Left value of type L or a Right value of type R.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding l on the left side.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right returns an Either holding r on the right side.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// IsLeft reports whether e holds a Left value.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether e holds a Right value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// UnwrapLeft returns the Left value. It panics if e holds a Right value.
func (e Either[L, R]) UnwrapLeft() L {
	if e.isRight {
		panic(errors.UnwrapVariant(errors.ErrCodeUnwrapLeft, "Either.UnwrapLeft", e.right))
	}
	return e.left
}

// UnwrapRight returns the Right value. It panics if e holds a Left value.
func (e Either[L, R]) UnwrapRight() R {
	if !e.isRight {
		panic(errors.UnwrapVariant(errors.ErrCodeUnwrapRight, "Either.UnwrapRight", e.left))
	}
	return e.right
}

// UnwrapLeftUnchecked returns the Left value without checking the side.
// It returns the zero value of L if e holds a Right value.
func (e Either[L, R]) UnwrapLeftUnchecked() L { return e.left }

// UnwrapRightUnchecked returns the Right value without checking the side.
// It returns the zero value of R if e holds a Left value.
func (e Either[L, R]) UnwrapRightUnchecked() R { return e.right }

// LeftValue returns the Left value as an Option.
func (e Either[L, R]) LeftValue() option.Option[L] {
	return option.FromOk(e.left, !e.isRight)
}

// RightValue returns the Right value as an Option.
func (e Either[L, R]) RightValue() option.Option[R] {
	return option.FromOk(e.right, e.isRight)
}

// Flip swaps the sides.
func (e Either[L, R]) Flip() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// String renders e as Left(v) or Right(v).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapLeft applies f to a Left value.
func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// MapRight applies f to a Right value.
func MapRight[L, R, M any](e Either[L, R], f func(R) M) Either[L, M] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, M](e.left)
}

// Fold collapses e into a single value using the function for its side.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Equal reports whether a and b hold equal values on the same side.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}
