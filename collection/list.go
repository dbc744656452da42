// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package collection provides generic in-memory containers. Its central type
// is the ArrayList, a growable indexable sequence backed by a contiguous
// buffer, together with an explicit iterator supporting removal during
// iteration. Containers in this package are not safe for concurrent use.
package collection

import "github.com/0xsoniclabs/collections/common/option"

//go:generate mockgen -source list.go -destination list_mock.go -package collection

// List is the interface of a growable, positionally addressable sequence.
// It is implemented by ArrayList.
type List[E any] interface {
	// Add appends an element at the end of the list.
	Add(element E)
	// AddAt inserts an element at the given position, clamping positions
	// beyond the current size to an append.
	AddAt(index int, element E) error
	// Get returns the element at the given position.
	Get(index int) (E, error)
	// Set replaces the element at the given position, returning the
	// previous element.
	Set(index int, newElement E) (E, error)
	// RemoveAt removes and returns the element at the given position.
	RemoveAt(index int) (E, error)
	// EnsureCapacity grows the list's buffer to hold at least the given
	// number of elements without further reallocation.
	EnsureCapacity(minimumCapacity int)
	// Size returns the number of elements in the list.
	Size() int
	// Capacity returns the current length of the list's buffer.
	Capacity() int
	// String renders the list as [e1,e2,...,en].
	String() string
}

var _ List[int] = (*ArrayList[int])(nil)

// IndexOf returns the position of the first element of the list equal to the
// given element, or -1 if there is none. Only occupied positions are scanned.
func IndexOf[E comparable](list *ArrayList[E], element E) int {
	for i := 0; i < list.size; i++ {
		if value, ok := list.items[i].Get(); ok && value == element {
			return i
		}
	}
	return -1
}

// RemoveValue removes the first element of the list equal to the given
// element, shifting subsequent elements one slot to the left, and returns the
// removed element. If no element matches, the list is left unchanged and None
// is returned; a missing match is a regular outcome, not an error.
func RemoveValue[E comparable](list *ArrayList[E], element E) option.Option[E] {
	index := IndexOf(list, element)
	if index < 0 {
		return option.None[E]()
	}
	removed, _ := list.RemoveAt(index)
	return option.Some(removed)
}
