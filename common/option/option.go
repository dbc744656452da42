// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package option

import "fmt"

// Option encapsulates a value that may or may not be present. It is intended
// to be used in scenarios where a single type is needed to distinguish a valid
// value of type T from the absence of any value, without overloading a zero or
// nil value to mean both. This may, for instance, be useful for container
// slots or lookup results.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option holding the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an Option holding no value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the contained value and whether it is present. Using this
// function forces the caller to handle the absent case.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent returns true if the Option holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// Or returns the contained value if present, or the given fallback otherwise.
func (o Option[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// String renders the contained value using its default format, or the literal
// text "null" if no value is present.
func (o Option[T]) String() string {
	if !o.present {
		return "null"
	}
	return fmt.Sprintf("%v", o.value)
}
