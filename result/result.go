// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package result provides a container for the outcome of an operation that
// can either succeed with a value of type T or fail with a cause of type E,
// replacing exception-style control flow with an explicit, inspectable value.
//
// A Result follows the same ownership model as an optional.Value: peeks and
// transformations never mutate, while the consuming reads TakeValue and
// TakeCause transfer the payload of their channel out of the instance exactly
// once. A successful take leaves the result drained: it reports neither
// success nor failure, and both channels refuse further reads. The zero
// Result is drained.
//
// Results are not safe for concurrent use without external synchronization,
// as the consuming reads mutate instance state.
package result

import (
	"errors"
	"fmt"

	"github.com/hanssell-the-fox/go-optionals/optional"
)

// ErrInvalidState is reported when a consuming read targets the wrong
// channel: taking the value of a failed result, taking the cause of a
// successful one, or taking anything from a drained result.
var ErrInvalidState = errors.New("result: invalid state for access")

// state identifies the active variant of a Result. The zero state is
// drained, making the zero Result safely unusable rather than accidentally
// successful.
type state uint8

const (
	drained state = iota // no recoverable payload on either channel
	succeeded
	failed
)

// Result holds either a success value of type T or a failure cause of type
// E. Exactly one channel is populated; the payload of the inactive channel
// is never exposed.
type Result[T any, E any] struct {
	value T
	cause E
	state state
}

// Ok creates a Result representing a successful outcome with the given value.
func Ok[T any, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, state: succeeded}
}

// Err creates a Result representing a failed outcome with the given cause.
func Err[T any, E any](cause E) Result[T, E] {
	return Result[T, E]{cause: cause, state: failed}
}

// Of bridges Go's conventional (value, error) pair into a Result: a non-nil
// error produces a failed result carrying it, anything else a successful
// result carrying the value.
func Of[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// IsOk returns true if the result holds a success value. A drained result
// reports false.
func (r Result[T, E]) IsOk() bool {
	return r.state == succeeded
}

// IsErr returns true if the result holds a failure cause. A drained result
// reports false: its cause has either been taken or never existed.
func (r Result[T, E]) IsErr() bool {
	return r.state == failed
}

// Value returns the success value and whether it is present. It is the
// non-consuming peek of the success channel.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.state == succeeded
}

// Cause returns the failure cause and whether it is present. It is the
// non-consuming peek of the failure channel.
func (r Result[T, E]) Cause() (E, bool) {
	return r.cause, r.state == failed
}

// TakeValue removes and returns the success value. It is a consuming read:
// on success the instance is drained, and any further take on either channel
// reports ErrInvalidState. Taking the value of a failed or drained result
// reports ErrInvalidState and leaves the state unchanged.
func (r *Result[T, E]) TakeValue() (T, error) {
	var zero T
	switch r.state {
	case succeeded:
		value := r.value
		r.drain()
		return value, nil
	case failed:
		return zero, fmt.Errorf("%w: result holds a failure cause: %v", ErrInvalidState, r.cause)
	default:
		return zero, fmt.Errorf("%w: result already drained", ErrInvalidState)
	}
}

// TakeCause removes and returns the failure cause. Like TakeValue it is a
// consuming read of its channel: on success the instance is drained. Taking
// the cause of a successful or drained result reports ErrInvalidState.
func (r *Result[T, E]) TakeCause() (E, error) {
	var zero E
	switch r.state {
	case failed:
		cause := r.cause
		r.drain()
		return cause, nil
	case succeeded:
		return zero, fmt.Errorf("%w: result holds a success value", ErrInvalidState)
	default:
		return zero, fmt.Errorf("%w: result already drained", ErrInvalidState)
	}
}

// Expect removes and returns the success value, panicking with the given
// message (and the cause, if any) if the result is not successful.
func (r *Result[T, E]) Expect(msg string) T {
	if r.state == failed {
		panic(fmt.Sprintf("%s: %v", msg, r.cause))
	}
	value, err := r.TakeValue()
	if err != nil {
		panic(msg)
	}
	return value
}

// drain clears both payloads so that a taken value cannot be recovered
// through any later access.
func (r *Result[T, E]) drain() {
	var zeroValue T
	var zeroCause E
	r.value = zeroValue
	r.cause = zeroCause
	r.state = drained
}

// UnwrapOr returns the success value if present, or the given default. It
// peeks and never consumes.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.state == succeeded {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value if present, or the result of
// calling f with the failure cause. A drained result passes the zero cause.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.state == succeeded {
		return r.value
	}
	return f(r.cause)
}

// Or returns r if it is successful, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.state == succeeded {
		return r
	}
	return other
}

// Map returns a new result holding f applied to the success value, leaving a
// failed or drained result unchanged. The receiver is not consumed.
func (r Result[T, E]) Map(f func(T) T) Result[T, E] {
	if r.state == succeeded {
		return Ok[T, E](f(r.value))
	}
	return r
}

// MapErr returns a new result holding f applied to the failure cause,
// leaving a successful or drained result unchanged.
func (r Result[T, E]) MapErr(f func(E) E) Result[T, E] {
	if r.state == failed {
		return Err[T, E](f(r.cause))
	}
	return r
}

// AsOkOption projects the success channel into an optional container:
// present with the value if successful, absent otherwise.
func (r Result[T, E]) AsOkOption() optional.Value[T] {
	if value, ok := r.Value(); ok {
		return optional.Some(value)
	}
	return optional.None[T]()
}

// AsErrOption projects the failure channel into an optional container:
// present with the cause if failed, absent otherwise.
func (r Result[T, E]) AsErrOption() optional.Value[E] {
	if cause, ok := r.Cause(); ok {
		return optional.Some(cause)
	}
	return optional.None[E]()
}

// String implements fmt.Stringer.
func (r Result[T, E]) String() string {
	switch r.state {
	case succeeded:
		return fmt.Sprintf("Ok(%+v)", r.value)
	case failed:
		return fmt.Sprintf("Err(%+v)", r.cause)
	default:
		return "Drained"
	}
}

// Map returns a new result holding f applied to the success value, passing a
// failure cause through unchanged. This is the type-changing form of
// Result.Map; Go methods cannot introduce type parameters.
func Map[T, U any, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if value, ok := r.Value(); ok {
		return Ok[U, E](f(value))
	}
	if cause, ok := r.Cause(); ok {
		return Err[U, E](cause)
	}
	return Result[U, E]{}
}

// MapErr returns a new result holding f applied to the failure cause,
// passing a success value through unchanged.
func MapErr[T any, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if cause, ok := r.Cause(); ok {
		return Err[T, F](f(cause))
	}
	if value, ok := r.Value(); ok {
		return Ok[T, F](value)
	}
	return Result[T, F]{}
}

// AndThen applies f to the success value and returns its result, passing a
// failure cause through unchanged.
func AndThen[T, U any, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if value, ok := r.Value(); ok {
		return f(value)
	}
	if cause, ok := r.Cause(); ok {
		return Err[U, E](cause)
	}
	return Result[U, E]{}
}

// Match dispatches on the result state: exactly one of the two handlers
// runs, and its return value becomes the result of Match. A drained result
// dispatches to onErr with the zero cause.
func Match[T any, E any, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if value, ok := r.Value(); ok {
		return onOk(value)
	}
	return onErr(r.cause)
}
