package util

import "github.com/kbukum/gomonad/option"

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or None if p is nil.
func Deref[T any](p *T) option.Option[T] {
	return option.FromPtr(p)
}

// Keys returns the keys of a map.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values of a map.
func Values[K comparable, V any](m map[K]V) []V {
	vals := make([]V, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}

// Contains checks if a slice contains a value.
func Contains[T comparable](slice []T, val T) bool {
	return IndexOf(slice, val).IsSome()
}

// Coalesce returns the first non-zero value, or None if all are zero.
func Coalesce[T comparable](values ...T) option.Option[T] {
	var zero T
	for _, v := range values {
		if v != zero {
			return option.Some(v)
		}
	}
	return option.None[T]()
}
