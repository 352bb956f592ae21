package seq

import (
	"github.com/kbukum/gomonad/either"
	"github.com/kbukum/gomonad/option"
)

// PartitionByIter splits one source into a Left and a Right iterator.
type PartitionByIter[T, L, R any] struct {
	it    Iterator[T]
	f     func(T) either.Either[L, R]
	done  bool
	left  *PartitionGroup[L]
	right *PartitionGroup[R]
}

// PartitionBy routes every element of it to the Left or the Right iterator
// according to the side f returns. Whichever side is pulled drives the
// source; elements meant for the other side are queued for it.
func PartitionBy[T, L, R any](it Iterator[T], f func(T) either.Either[L, R]) *PartitionByIter[T, L, R] {
	p := &PartitionByIter[T, L, R]{it: it, f: f}
	p.left = &PartitionGroup[L]{pull: p.nextLeft}
	p.right = &PartitionGroup[R]{pull: p.nextRight}
	return p
}

// Left returns the iterator over Left values.
func (p *PartitionByIter[T, L, R]) Left() *PartitionGroup[L] { return p.left }

// Right returns the iterator over Right values.
func (p *PartitionByIter[T, L, R]) Right() *PartitionGroup[R] { return p.right }

func (p *PartitionByIter[T, L, R]) next() option.Option[either.Either[L, R]] {
	if p.done {
		return option.None[either.Either[L, R]]()
	}
	v, ok := p.it.Next().Get()
	if !ok {
		p.done = true
		p.it = nil
		return option.None[either.Either[L, R]]()
	}
	return option.Some(p.f(v))
}

func (p *PartitionByIter[T, L, R]) nextLeft() option.Option[L] {
	for {
		e, ok := p.next().Get()
		if !ok {
			return option.None[L]()
		}
		if e.IsLeft() {
			return option.Some(e.UnwrapLeftUnchecked())
		}
		p.right.push(e.UnwrapRightUnchecked())
	}
}

func (p *PartitionByIter[T, L, R]) nextRight() option.Option[R] {
	for {
		e, ok := p.next().Get()
		if !ok {
			return option.None[R]()
		}
		if e.IsRight() {
			return option.Some(e.UnwrapRightUnchecked())
		}
		p.left.push(e.UnwrapLeftUnchecked())
	}
}

// PartitionGroup is one side of a PartitionBy.
type PartitionGroup[V any] struct {
	pull   func() option.Option[V]
	buffer []V
}

func (g *PartitionGroup[V]) Next() option.Option[V] {
	if len(g.buffer) > 0 {
		v := g.buffer[0]
		g.buffer = g.buffer[1:]
		return option.Some(v)
	}
	return g.pull()
}

// Buffered returns the number of elements queued for this side.
func (g *PartitionGroup[V]) Buffered() int {
	return len(g.buffer)
}

func (g *PartitionGroup[V]) push(v V) {
	g.buffer = append(g.buffer, v)
}
