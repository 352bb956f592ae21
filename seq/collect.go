package seq

import (
	"fmt"
	"strings"

	"github.com/kbukum/gomonad/option"
	"github.com/kbukum/gomonad/result"
)

// Collect drains it into a new slice. The result is empty, not nil, for an
// empty iterator.
func Collect[T any](it Iterator[T]) []T {
	out := []T{}
	CollectInto(it, &out)
	return out
}

// CollectInto drains it, appending to dst.
func CollectInto[T any](it Iterator[T], dst *[]T) {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return
		}
		*dst = append(*dst, v)
	}
}

// CollectSet drains it into a set.
func CollectSet[T comparable](it Iterator[T]) map[T]struct{} {
	out := make(map[T]struct{})
	CollectSetInto(it, out)
	return out
}

// CollectSetInto drains it, adding every element to dst.
func CollectSetInto[T comparable](it Iterator[T], dst map[T]struct{}) {
	ForEach(it, func(v T) { dst[v] = struct{}{} })
}

// CollectMap drains an iterator of key/value pairs into a map. Later pairs
// overwrite earlier ones with the same key.
func CollectMap[K comparable, V any](it Iterator[Pair[K, V]]) map[K]V {
	out := make(map[K]V)
	CollectMapInto(it, out)
	return out
}

// CollectMapInto drains an iterator of key/value pairs into dst.
func CollectMapInto[K comparable, V any](it Iterator[Pair[K, V]], dst map[K]V) {
	ForEach(it, func(p Pair[K, V]) { dst[p.First] = p.Second })
}

// CollectString concatenates the default formatting of every element. Runes
// format as numbers; use CollectRunes for text.
func CollectString[T any](it Iterator[T]) string {
	var b strings.Builder
	ForEach(it, func(v T) { fmt.Fprint(&b, v) })
	return b.String()
}

// CollectRunes concatenates runes into a string.
func CollectRunes(it Iterator[rune]) string {
	var b strings.Builder
	ForEach(it, func(r rune) { b.WriteRune(r) })
	return b.String()
}

// CollectArray fills dst slot by slot and returns the number of slots filled.
// It stops pulling once dst is full, so elements beyond len(dst) stay in it.
func CollectArray[T any](it Iterator[T], dst []T) int {
	for i := range dst {
		v, ok := it.Next().Get()
		if !ok {
			return i
		}
		dst[i] = v
	}
	return len(dst)
}

// CollectResult collects Ok values until the first Err, which is returned
// instead. Elements after the first Err are not pulled.
func CollectResult[T, E any](it Iterator[result.Result[T, E]]) result.Result[[]T, E] {
	out := []T{}
	for {
		r, ok := it.Next().Get()
		if !ok {
			return result.Ok[[]T, E](out)
		}
		v, err, isOk := r.Get()
		if !isOk {
			return result.Err[[]T](err)
		}
		out = append(out, v)
	}
}

// CollectOption collects Some values until the first None element, in which
// case the whole collection is None.
func CollectOption[T any](it Iterator[option.Option[T]]) option.Option[[]T] {
	out := []T{}
	for {
		o, ok := it.Next().Get()
		if !ok {
			return option.Some(out)
		}
		v, present := o.Get()
		if !present {
			return option.None[[]T]()
		}
		out = append(out, v)
	}
}
