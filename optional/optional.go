// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package optional provides a container for a value that may be absent,
// replacing nil checks with explicit presence queries and accessors.
//
// A Value is either present, holding exactly one payload, or absent. The
// zero Value is absent and ready to use; no shared sentinel instance exists.
// All accessors are non-mutating except the consuming reads Take and Expect,
// which transfer ownership of the payload out of the container: a successful
// Take clears the instance, so a second Take on the same instance fails. This
// models a one-time ownership transfer rather than a repeatable projection.
//
// Because the consuming reads mutate instance state, a Value must not be
// accessed from multiple goroutines without external synchronization.
package optional

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrEmptyAccess is reported when a consuming read is attempted on an absent
// container, whether it was created absent or drained by an earlier Take.
var ErrEmptyAccess = errors.New("optional: no value present")

// Value holds zero or one element of type T. The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a present container holding the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{
		value:   value,
		present: true,
	}
}

// None returns an absent container.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr converts a possibly-nil pointer into a container. A nil pointer
// produces an absent container; absence is decided before any present state
// is assigned, so a present container never holds the nil sentinel.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsPresent returns true if the container holds a value. It remains safe to
// call after the value has been taken, reporting false from then on.
func (v Value[T]) IsPresent() bool {
	return v.present
}

// IsAbsent returns true if the container holds no value.
func (v Value[T]) IsAbsent() bool {
	return !v.present
}

// Get returns the contained value and whether it is present. It is the
// non-consuming peek used by all fallback accessors; container state is
// unaffected.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// Take removes and returns the contained value. It is a consuming read: on
// success the container is cleared, and any further Take on the same instance
// reports ErrEmptyAccess. Taking from an absent container reports
// ErrEmptyAccess and leaves the state unchanged.
func (v *Value[T]) Take() (T, error) {
	if !v.present {
		var zero T
		return zero, ErrEmptyAccess
	}
	value := v.value
	var zero T
	v.value = zero
	v.present = false
	return value, nil
}

// Expect removes and returns the contained value, panicking with the given
// message if the container is absent. Like Take, a successful Expect clears
// the instance.
func (v *Value[T]) Expect(msg string) T {
	value, err := v.Take()
	if err != nil {
		panic(msg)
	}
	return value
}

// UnwrapOr returns the contained value if present, or the given default.
// It peeks and never consumes.
func (v Value[T]) UnwrapOr(def T) T {
	if v.present {
		return v.value
	}
	return def
}

// UnwrapOrElse returns the contained value if present, or the result of
// calling f. It peeks and never consumes; f is not called when present.
func (v Value[T]) UnwrapOrElse(f func() T) T {
	if v.present {
		return v.value
	}
	return f()
}

// UnwrapOrZero returns the contained value if present, or the zero value of T.
func (v Value[T]) UnwrapOrZero() T {
	return v.value
}

// Or returns v if it is present, otherwise other. Both arguments are already
// constructed; no lazy alternative exists in this design.
func (v Value[T]) Or(other Value[T]) Value[T] {
	if v.present {
		return v
	}
	return other
}

// Map returns a new container holding f applied to the contained value, or
// the unchanged container if absent. The receiver is not consumed and f is
// not called on an absent container.
func (v Value[T]) Map(f func(T) T) Value[T] {
	if !v.present {
		return v
	}
	return Some(f(v.value))
}

// String implements fmt.Stringer.
func (v Value[T]) String() string {
	if !v.present {
		return "None"
	}
	return fmt.Sprintf("Some(%+v)", v.value)
}

// Map returns a new container holding f applied to the contained value, or an
// absent container if v is absent. This is the type-changing form of
// Value.Map; Go methods cannot introduce type parameters.
func Map[T, U any](v Value[T], f func(T) U) Value[U] {
	if value, ok := v.Get(); ok {
		return Some(f(value))
	}
	return None[U]()
}

// MapPtr applies f to the contained value and wraps the resulting pointer
// through FromPtr, so a nil result maps to an absent container. Absent input
// propagates without calling f.
func MapPtr[T, U any](v Value[T], f func(T) *U) Value[U] {
	if value, ok := v.Get(); ok {
		return FromPtr(f(value))
	}
	return None[U]()
}

// AndThen applies f to the contained value and returns its result, or an
// absent container if v is absent.
func AndThen[T, U any](v Value[T], f func(T) Value[U]) Value[U] {
	if value, ok := v.Get(); ok {
		return f(value)
	}
	return None[U]()
}

// Flatten collapses one level of nesting: a present container holding an
// inner container yields the inner container unchanged, while an absent
// container yields an absent container of the inner type. Deeper nesting is
// collapsed one level per call.
func Flatten[T any](v Value[Value[T]]) Value[T] {
	if inner, ok := v.Get(); ok {
		return inner
	}
	return None[T]()
}

// Match dispatches on the container state: exactly one of the two handlers
// runs, and its return value becomes the result of Match.
func Match[T, R any](v Value[T], onPresent func(T) R, onAbsent func() R) R {
	if value, ok := v.Get(); ok {
		return onPresent(value)
	}
	return onAbsent()
}

// Min returns the container holding the smaller value. An absent container
// compares greater than any present one; two absent containers yield an
// absent container.
func Min[T constraints.Ordered](a, b Value[T]) Value[T] {
	x, okA := a.Get()
	y, okB := b.Get()
	switch {
	case okA && okB:
		if y < x {
			return b
		}
		return a
	case okA:
		return a
	default:
		return b
	}
}

// Max returns the container holding the larger value, with absence losing
// against any present value.
func Max[T constraints.Ordered](a, b Value[T]) Value[T] {
	x, okA := a.Get()
	y, okB := b.Get()
	switch {
	case okA && okB:
		if y > x {
			return b
		}
		return a
	case okA:
		return a
	default:
		return b
	}
}
