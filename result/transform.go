package result

import (
	"github.com/kbukum/gomonad/either"
	"github.com/kbukum/gomonad/errors"
	"github.com/kbukum/gomonad/option"
)

// Map applies f to the success value.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr applies f to the error value.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if !r.ok {
		return Err[T](f(r.err))
	}
	return Ok[T, F](r.value)
}

// MapOr applies f to the success value, or returns def on failure.
func MapOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	if !r.ok {
		return def
	}
	return f(r.value)
}

// MapOrElse applies f to the success value, or def to the error value.
func MapOrElse[T, U, E any](r Result[T, E], def func(E) U, f func(T) U) U {
	if !r.ok {
		return def(r.err)
	}
	return f(r.value)
}

// AndThen returns f(v) for Ok(v) and propagates the error otherwise.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return f(r.value)
}

// And returns other if r succeeded and propagates r's error otherwise.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return other
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if !r.ok {
		return Err[T](r.err)
	}
	return r.value
}

// Transpose turns a Result of an Option into an Option of a Result.
// Ok(None) becomes None.
func Transpose[T, E any](r Result[option.Option[T], E]) option.Option[Result[T, E]] {
	if !r.ok {
		return option.Some(Err[T](r.err))
	}
	return option.Map(r.value, Ok[T, E])
}

// TransposeOption turns an Option of a Result into a Result of an Option.
// None becomes Ok(None).
func TransposeOption[T, E any](o option.Option[Result[T, E]]) Result[option.Option[T], E] {
	r, ok := o.Get()
	if !ok {
		return Ok[option.Option[T], E](option.None[T]())
	}
	if !r.ok {
		return Err[option.Option[T]](r.err)
	}
	return Ok[option.Option[T], E](option.Some(r.value))
}

// FromOption returns Ok(v) for Some(v) and Err(err) for None.
func FromOption[T, E any](o option.Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](err)
}

// FromOptionElse is FromOption with a lazily computed error.
func FromOptionElse[T, E any](o option.Option[T], f func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](f())
}

// ToEither maps Ok to Right and Err to Left.
func ToEither[T, E any](r Result[T, E]) either.Either[E, T] {
	if r.ok {
		return either.Right[E](r.value)
	}
	return either.Left[E, T](r.err)
}

// FromEither maps Right to Ok and Left to Err.
func FromEither[T, E any](e either.Either[E, T]) Result[T, E] {
	if e.IsRight() {
		return Ok[T, E](e.UnwrapRightUnchecked())
	}
	return Err[T](e.UnwrapLeftUnchecked())
}

// FromPair converts Go's (value, error) convention into a Result.
//
//	r := result.FromPair(strconv.Atoi(s))
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Pair converts r back into Go's (value, error) convention.
func Pair[T any](r Result[T, error]) (T, error) {
	return r.value, r.err
}

// Catch runs fn and converts a panic into an Err. Panic values that are not
// errors are wrapped in an *errors.AppError with code PANIC_RECOVERED.
func Catch[T any](fn func() T) (r Result[T, error]) {
	defer func() {
		if v := recover(); v != nil {
			r = Err[T](errors.Recovered(v))
		}
	}()
	return Ok[T, error](fn())
}

// Try runs fn, converting both a returned error and a panic into an Err.
func Try[T any](fn func() (T, error)) Result[T, error] {
	return Flatten(Catch(func() Result[T, error] { return FromPair(fn()) }))
}

// Equal reports whether a and b are both Ok with equal values or both Err
// with equal errors.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}
