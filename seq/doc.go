// Package seq provides lazy, composable, pull-based iterators built on
// option.Option.
//
// An Iterator has a single method, Next, which returns Some(v) for the next
// element and None once the sequence is exhausted. Nothing is computed until
// a consumer pulls. Adapters wrap an Iterator and are Iterators themselves, so
// they compose without buffering intermediate results.
//
// Iterators are single-owner values. An adapter takes ownership of the
// iterator it wraps; pulling from the wrapped handle afterwards interleaves
// with the adapter and is only meaningful where documented (TakeWhile).
// Iterators are not safe for concurrent use.
//
// Iterators are not fused: after returning None, a call to Next may return
// Some again if the source does so. Wrap with Fuse to make None sticky.
//
// # Default operations
//
// Operations that consume an iterator are free functions:
//
//   - AdvanceBy, Nth, NextChunk, Last, Count: positional access
//   - Find, FindMap, Position, Index, Contains, All, Any: searching
//   - Fold, Reduce, Sum, Product, Max, Min, MaxBy, MinBy: aggregation
//   - Partition, PartitionMap, ForEach: draining with side effects
//   - Collect, CollectSet, CollectMap, CollectString, CollectArray,
//     CollectResult, CollectOption: terminal collectors
//
// Sources with a cheaper way to answer one of these (Repeat, OnceWith)
// implement the matching method and the free function defers to it.
//
// # Adapters
//
//   - Map, Filter, FilterMap, Inspect: per-element transforms
//   - Enumerate, Chain, Zip, Flatten, FlatMap: structural combinators
//   - Fuse, Peekable, Intersperse, Scan: stateful wrappers
//   - Skip, SkipWhile, StepBy, Take, TakeWhile, MapWhile: slicing
//   - ArrayChunk, Chunk, MapWindows, Batching: grouping by position
//   - GroupBy, PartitionBy, Unique, UniqueBy: grouping by value
//
// # Sources
//
//	seq.FromSlice([]int{1, 2, 3})
//	seq.FromString("héllo")           // runes
//	seq.FromSeq(maps.Keys(m))         // any iter.Seq
//	seq.FromCursor(rows.Next)         // func() (T, error)
//	seq.Repeat(v), seq.Once(v), seq.OnceWith(f), seq.Empty[T]()
//
// # Usage
//
//	words := seq.FromSlice(strings.Fields(text))
//	long := seq.Filter(words, func(w string) bool { return len(w) > 3 })
//	upper := seq.Map(long, strings.ToUpper)
//	for w := range seq.Values(seq.Take(upper, 10)) {
//	    fmt.Println(w)
//	}
package seq
