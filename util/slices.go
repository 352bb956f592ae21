package util

import "github.com/kbukum/gomonad/option"

// normalize maps a possibly negative index onto [0, n), counting negative
// indices from the end.
func normalize(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// Get returns slice[i], or None when i is out of range. Negative indices
// count from the end, so Get(s, -1) is the last element.
func Get[T any](slice []T, i int) option.Option[T] {
	i, ok := normalize(i, len(slice))
	if !ok {
		return option.None[T]()
	}
	return option.Some(slice[i])
}

// First returns the first element of slice.
func First[T any](slice []T) option.Option[T] {
	return Get(slice, 0)
}

// Last returns the last element of slice.
func Last[T any](slice []T) option.Option[T] {
	return Get(slice, -1)
}

// IndexOf returns the index of the first element equal to val.
func IndexOf[T comparable](slice []T, val T) option.Option[int] {
	for i, item := range slice {
		if item == val {
			return option.Some(i)
		}
	}
	return option.None[int]()
}

// Pop removes and returns the last element of *slice.
func Pop[T any](slice *[]T) option.Option[T] {
	return PopAt(slice, -1)
}

// PopAt removes and returns the element at index i of *slice, shifting the
// rest down. Negative indices count from the end.
func PopAt[T any](slice *[]T, i int) option.Option[T] {
	s := *slice
	i, ok := normalize(i, len(s))
	if !ok {
		return option.None[T]()
	}
	v := s[i]
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	*slice = s[:len(s)-1]
	return option.Some(v)
}
