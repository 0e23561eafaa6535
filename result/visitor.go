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

//go:generate mockgen -source visitor.go -destination visitor_mocks.go -package result

// Visitor is the interface form of pattern dispatch over a result. Exactly
// one of its methods is invoked per Accept call, selected by the current
// state.
type Visitor[T any, E any] interface {
	// Ok is invoked with the success value if the result is successful.
	Ok(value T)
	// Err is invoked with the failure cause otherwise. A drained result
	// reports the zero cause.
	Err(cause E)
}

// Accept dispatches the result state to the given visitor without consuming
// either channel.
func (r Result[T, E]) Accept(visitor Visitor[T, E]) {
	if r.state == succeeded {
		visitor.Ok(r.value)
	} else {
		visitor.Err(r.cause)
	}
}
