package result

import (
	"fmt"

	"github.com/kbukum/gomonad/errors"
	"github.com/kbukum/gomonad/option"
)

// Result holds either a success value of type T or an error value of type E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether r succeeded.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether r failed.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// IsOkAnd reports whether r succeeded with a value matching pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports whether r failed with an error matching pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Ok returns the success value as an Option.
func (r Result[T, E]) Ok() option.Option[T] {
	return option.FromOk(r.value, r.ok)
}

// Err returns the error value as an Option.
func (r Result[T, E]) Err() option.Option[E] {
	return option.FromOk(r.err, !r.ok)
}

// Get returns the success value, the error value and whether r succeeded.
// Only one of the first two is meaningful.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// Unwrap returns the success value. It panics if r failed.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(errors.UnwrapVariant(errors.ErrCodeUnwrapErr, "Result.Unwrap", r.err))
	}
	return r.value
}

// UnwrapErr returns the error value. It panics if r succeeded.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(errors.UnwrapVariant(errors.ErrCodeUnwrapOk, "Result.UnwrapErr", r.value))
	}
	return r.err
}

// Expect returns the success value. It panics with msg if r failed.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(errors.Expect(errors.ErrCodeExpectErr, fmt.Sprintf("%s: %v", msg, r.err)).
			WithDetail("value", r.err))
	}
	return r.value
}

// ExpectErr returns the error value. It panics with msg if r succeeded.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(errors.Expect(errors.ErrCodeExpectErr, fmt.Sprintf("%s: %v", msg, r.value)).
			WithDetail("value", r.value))
	}
	return r.err
}

// UnwrapOr returns the success value or def.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value or f applied to the error.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.value
}

// UnwrapOrDefault returns the success value or the zero value of T.
func (r Result[T, E]) UnwrapOrDefault() T {
	if !r.ok {
		var zero T
		return zero
	}
	return r.value
}

// Inspect calls f with the success value, if any, and returns r unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the error value, if any, and returns r unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Or returns r if it succeeded, other otherwise.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns r if it succeeded, f applied to the error otherwise.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

// String renders r as Ok(v) or Err(e).
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
