package option

// Map applies f to the held value.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// MapOr applies f to the held value, or returns def on None.
func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if !o.ok {
		return def
	}
	return f(o.value)
}

// MapOrElse applies f to the held value, or returns def() on None.
func MapOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	if !o.ok {
		return def()
	}
	return f(o.value)
}

// AndThen returns f(v) for Some(v) and None otherwise.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// And returns other if o holds a value, None otherwise.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return other
}

// Pair holds two values produced together.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip returns Some(Pair{a, b}) if both options hold a value.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{x, y} })
}

// ZipWith combines the values of a and b with f if both hold one.
func ZipWith[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	if !a.ok || !b.ok {
		return None[C]()
	}
	return Some(f(a.value, b.value))
}

// Unzip splits an Option of a Pair into a Pair of Options.
func Unzip[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if !o.ok {
		return None[A](), None[B]()
	}
	return Some(o.value.First), Some(o.value.Second)
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.ok {
		return None[T]()
	}
	return o.value
}

// Equal reports whether a and b are both None or both hold equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}

// EqualFunc is Equal with a caller-supplied comparison.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || eq(a.value, b.value)
}
