// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package future provides a minimal Promise/Future pair over buffered
// channels, used to hand the settled outcome of a background computation to
// a waiting caller. The producer side fulfills the promise exactly once; the
// consumer awaits the future exactly once.
//
// The typical producer looks as follows:
//
//	promise, settled := future.Create[T]()
//	go func() {
//	   promise.Fulfill(compute())
//	}()
//	return settled
//
// Go wraps this pattern for plain functions, and Immediate creates an
// already-fulfilled future for values that are available up front.
package future

// Promise is the producer handle used to fulfill a Future.
type Promise[T any] struct {
	C chan<- T
}

// Future is a placeholder for a value that becomes available once the
// corresponding Promise is fulfilled.
type Future[T any] struct {
	C <-chan T
}

// Create initializes a linked Promise and Future pair.
func Create[T any]() (Promise[T], Future[T]) {
	ch := make(chan T, 1)
	return Promise[T]{C: ch}, Future[T]{C: ch}
}

// Immediate creates a Future that is already fulfilled with the given value.
func Immediate[T any](value T) Future[T] {
	ch := make(chan T, 1)
	ch <- value
	close(ch)
	return Future[T]{C: ch}
}

// Go runs fn in a new goroutine and returns a Future fulfilled with its
// return value.
func Go[T any](fn func() T) Future[T] {
	promise, settled := Create[T]()
	go func() {
		promise.Fulfill(fn())
	}()
	return settled
}

// Fulfill provides the value to any awaiting Future. It must be called
// exactly once per promise.
func (p Promise[T]) Fulfill(value T) {
	p.C <- value
	close(p.C)
}

// Await blocks until the Future is fulfilled and returns the value. A future
// can only be consumed once; a second Await returns the zero value.
func (f Future[T]) Await() T {
	return <-f.C
}

// Then creates a new Future by applying transform to the result of f once it
// is fulfilled. The original future is consumed by the transformation.
func Then[A, B any](f Future[A], transform func(A) B) Future[B] {
	return Go(func() B {
		return transform(f.Await())
	})
}
