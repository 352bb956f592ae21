package option

import (
	"fmt"

	"github.com/kbukum/gomonad/errors"
)

// Option holds either a value of type T (Some) or nothing (None).
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk converts the "comma ok" idiom into an Option.
//
//	v, ok := m[key]
//	o := option.FromOk(v, ok)
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// IsSomeAnd reports whether the Option holds a value matching pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// IsNoneOr reports whether the Option is empty or holds a value matching pred.
func (o Option[T]) IsNoneOr(pred func(T) bool) bool {
	return !o.ok || pred(o.value)
}

// Get returns the held value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the held value. It panics on None.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(errors.UnwrapNone("Option.Unwrap"))
	}
	return o.value
}

// Expect returns the held value. It panics with msg on None.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(errors.Expect(errors.ErrCodeExpectNone, msg))
	}
	return o.value
}

// UnwrapUnchecked returns the held value without checking for presence.
// On None it returns the zero value of T.
func (o Option[T]) UnwrapUnchecked() T {
	return o.value
}

// UnwrapOr returns the held value or def.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the held value or the result of f.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.ok {
		return f()
	}
	return o.value
}

// UnwrapOrDefault returns the held value or the zero value of T.
func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// Filter returns o if it holds a value matching pred, None otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

// Inspect calls f with the held value, if any, and returns o unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.ok {
		f(o.value)
	}
	return o
}

// Or returns o if it holds a value, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns o if it holds a value, the result of f otherwise.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return f()
}

// Xor returns whichever of o and other holds a value when exactly one does,
// None otherwise.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.ok && !other.ok:
		return o
	case !o.ok && other.ok:
		return other
	default:
		return None[T]()
	}
}

// Take moves the value out of o, leaving None in its place.
func (o *Option[T]) Take() Option[T] {
	old := *o
	*o = None[T]()
	return old
}

// Replace stores v in o and returns the previous content.
func (o *Option[T]) Replace(v T) Option[T] {
	old := *o
	*o = Some(v)
	return old
}

// Insert stores v in o and returns a pointer to the stored value.
func (o *Option[T]) Insert(v T) *T {
	*o = Some(v)
	return &o.value
}

// GetOrInsert stores v if o is empty and returns a pointer to the held value.
func (o *Option[T]) GetOrInsert(v T) *T {
	if !o.ok {
		*o = Some(v)
	}
	return &o.value
}

// GetOrInsertWith stores f() if o is empty and returns a pointer to the held value.
func (o *Option[T]) GetOrInsertWith(f func() T) *T {
	if !o.ok {
		*o = Some(f())
	}
	return &o.value
}

// ToSlice returns a one-element slice for Some and an empty slice for None.
func (o Option[T]) ToSlice() []T {
	if !o.ok {
		return []T{}
	}
	return []T{o.value}
}

// ToPtr returns a pointer to a copy of the held value, or nil on None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Key returns the held value as the key used for hashing, or nil on None.
// Some(x).Key() and x hash identically in any map keyed on the result.
func (o Option[T]) Key() any {
	if !o.ok {
		return nil
	}
	return o.value
}

// String renders the Option as Some(v) or None.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
