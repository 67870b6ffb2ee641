// Package option provides an optional value container:
// a value that is either present ("some") or absent ("none").
package option

import (
	"errors"
	"fmt"
)

// ErrNoneValue is the value [Option.Unwrap] panics with when the Option is none.
// Triggering it is a programmer error: check presence first or use a non-failing
// accessor (eg. [Option.UnwrapOr]).
var ErrNoneValue = errors.New("value is none")

// Option represents an optional value.
// It either contains a value or it does not.
//
// The zero value of Option is none, so Options embedded in other structs
// are absent until explicitly set.
//
// Options are immutable: no operation mutates an Option in place,
// every combinator returns a new Option value.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option containing value.
// The value may itself be an Option, enabling nested options.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value: value,
		some:  true,
	}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a pointer to an Option, treating nil as none.
// The pointed-to value is copied.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}

	return Some(*ptr)
}

// FromOk converts a value accompanied by a comma-ok flag
// (eg. the result of a map lookup) to an Option.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// HasValue returns true if the Option contains a value.
//
// It is an alias for [Option.IsSome].
func (o Option[T]) HasValue() bool {
	return o.some
}

// Value returns the value (or its default) stored in the Option.
func (o Option[T]) Value() T {
	return o.value
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value.
//
// Unwrap panics with [ErrNoneValue] when the Option is none.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrNoneValue)
	}

	return o.value
}

// UnwrapOr returns the contained value if present, otherwise def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}

	return def
}

// UnwrapOrElse returns the contained value if present, otherwise the result of fn.
// fn is invoked only when the Option is none.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}

	return fn()
}

// Ptr returns a pointer to a copy of the contained value, or nil when the Option is none.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}

	value := o.value

	return &value
}

// String implements fmt.Stringer for debugging purposes.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
