package seq

import (
	"github.com/kbukum/gomonad/option"
)

// GroupByIter splits a sequence into runs of consecutive elements with equal
// keys.
type GroupByIter[K comparable, T any] struct {
	it      *PeekableIter[T]
	key     func(T) K
	current *Group[K, T]
}

// GroupBy yields Pair{key, group} for every run of consecutive elements
// sharing a key. Each Group is an Iterator over the elements of its run.
//
// Groups may be consumed in any order. When the outer iterator moves past a
// group that was not fully read, the rest of that group is buffered inside
// the Group. Call Group.Discard to drop a group's elements instead.
func GroupBy[K comparable, T any](it Iterator[T], key func(T) K) *GroupByIter[K, T] {
	return &GroupByIter[K, T]{it: Peekable[T](&FuseIter[T]{it: it}), key: key}
}

func (g *GroupByIter[K, T]) Next() option.Option[Pair[K, *Group[K, T]]] {
	if cur := g.current; cur != nil {
		g.current = nil
		if cur.discarded {
			g.skipRun(cur.key)
		} else {
			var rest []T
			for {
				v, ok := g.pullIf(cur.key).Get()
				if !ok {
					break
				}
				rest = append(rest, v)
			}
			cur.detach(rest)
		}
	}

	head, ok := g.it.Peek().Get()
	if !ok {
		return option.None[Pair[K, *Group[K, T]]]()
	}
	k := g.key(head)
	g.current = &Group[K, T]{key: k, parent: g}
	return option.Some(MakePair(k, g.current))
}

func (g *GroupByIter[K, T]) skipRun(k K) {
	for g.pullIf(k).IsSome() {
		continue
	}
}

// pullIf consumes the next element if it belongs to the run keyed k.
func (g *GroupByIter[K, T]) pullIf(k K) option.Option[T] {
	return g.it.NextIf(func(v T) bool { return g.key(v) == k })
}

// Group is an Iterator over one run produced by GroupBy.
type Group[K comparable, T any] struct {
	key       K
	parent    *GroupByIter[K, T]
	buffer    []T
	detached  bool
	discarded bool
}

// Key returns the key shared by the elements of the group.
func (gr *Group[K, T]) Key() K {
	return gr.key
}

func (gr *Group[K, T]) Next() option.Option[T] {
	if gr.discarded {
		return option.None[T]()
	}
	if gr.detached {
		if len(gr.buffer) == 0 {
			gr.buffer = nil
			return option.None[T]()
		}
		v := gr.buffer[0]
		gr.buffer = gr.buffer[1:]
		return option.Some(v)
	}
	return gr.parent.pullIf(gr.key)
}

// Discard drops the remaining elements of the group. If the group is still
// the current one, its elements are skipped rather than buffered when the
// outer iterator advances.
func (gr *Group[K, T]) Discard() {
	gr.discarded = true
	gr.buffer = nil
}

func (gr *Group[K, T]) detach(rest []T) {
	gr.detached = true
	gr.buffer = rest
	gr.parent = nil
}
