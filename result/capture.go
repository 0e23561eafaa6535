// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

import (
	"github.com/hanssell-the-fox/go-optionals/common/future"
)

// Capture runs fn and converts its outcome into a Result: a normal return
// becomes the success value, while a panic is recovered and its value stored
// verbatim as the failure cause. This is the sole boundary where
// uncontrolled faults are converted into the explicit failure channel; the
// container itself never recovers from anything.
func Capture[T any](fn func() T) (res Result[T, any]) {
	defer func() {
		if fault := recover(); fault != nil {
			res = Err[T, any](fault)
		}
	}()
	return Ok[T, any](fn())
}

// CaptureAsync runs fn in a background goroutine with the same fault
// conversion as Capture and returns a future that is fulfilled with the
// settled outcome. The result comes into existence only once the
// computation has settled; awaiting the future is the synchronization point.
func CaptureAsync[T any](fn func() T) future.Future[Result[T, any]] {
	promise, settled := future.Create[Result[T, any]]()
	go func() {
		promise.Fulfill(Capture(fn))
	}()
	return settled
}
