// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package optional

//go:generate mockgen -source visitor.go -destination visitor_mocks.go -package optional

// Visitor is the interface form of pattern dispatch over a container. Exactly
// one of its methods is invoked per Accept call, selected by the current
// state.
type Visitor[T any] interface {
	// Present is invoked with the contained value if the container holds one.
	Present(value T)
	// Absent is invoked if the container holds no value.
	Absent()
}

// Accept dispatches the container state to the given visitor without
// consuming the value.
func (v Value[T]) Accept(visitor Visitor[T]) {
	if v.present {
		visitor.Present(v.value)
	} else {
		visitor.Absent()
	}
}
