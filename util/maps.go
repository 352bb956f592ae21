package util

import "github.com/kbukum/gomonad/option"

// Lookup returns m[key], or None when key is absent.
func Lookup[K comparable, V any](m map[K]V, key K) option.Option[V] {
	v, ok := m[key]
	return option.FromOk(v, ok)
}

// PopKey removes key from m and returns its value.
func PopKey[K comparable, V any](m map[K]V, key K) option.Option[V] {
	v, ok := m[key]
	if !ok {
		return option.None[V]()
	}
	delete(m, key)
	return option.Some(v)
}

// PopItem removes an arbitrary entry from m and returns it.
func PopItem[K comparable, V any](m map[K]V) option.Option[option.Pair[K, V]] {
	for k, v := range m {
		delete(m, k)
		return option.Some(option.Pair[K, V]{First: k, Second: v})
	}
	return option.None[option.Pair[K, V]]()
}

// PopMember removes an arbitrary member from the set s and returns it.
func PopMember[K comparable](s map[K]struct{}) option.Option[K] {
	for k := range s {
		delete(s, k)
		return option.Some(k)
	}
	return option.None[K]()
}
