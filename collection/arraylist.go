// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package collection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xsoniclabs/collections/common/option"
)

// DefaultCapacity is the initial capacity of lists created without an
// explicit one.
const DefaultCapacity = 16

var (
	// ErrNegativeCapacity is returned when a list is requested with a
	// negative initial capacity.
	ErrNegativeCapacity = errors.New("negative capacity")
	// ErrIndexOutOfRange is returned by positional operations addressing a
	// slot outside the valid range of the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ArrayList is a growable, indexable sequence of elements backed by a
// contiguous buffer. Elements occupy positions [0, Size()) in insertion
// order; the buffer is replaced by a larger one whenever an insertion would
// exceed the current capacity. The list exclusively owns its buffer, and all
// mutations go through the list's own operations.
//
// The zero value is not usable; lists are created through New or
// NewWithCapacity. Lists are not safe for concurrent use; callers requiring
// shared access must provide their own synchronization.
type ArrayList[E any] struct {
	items []option.Option[E] // one slot per capacity unit, occupied slots are [0, size)
	size  int
}

// New creates an empty list with the default initial capacity.
func New[E any]() *ArrayList[E] {
	list, _ := NewWithCapacity[E](DefaultCapacity)
	return list
}

// NewWithCapacity creates an empty list with the given initial capacity.
// It fails with ErrNegativeCapacity if the capacity is negative.
func NewWithCapacity[E any](capacity int) (*ArrayList[E], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	return &ArrayList[E]{items: make([]option.Option[E], capacity)}, nil
}

// EnsureCapacity grows the backing buffer such that no reallocation will
// occur until the list holds at least minimumCapacity elements. The buffer is
// grown to the larger of minimumCapacity and Capacity()*2+2, if it is not
// already large enough. Existing elements retain their positions; the swap is
// not observable by callers in any partial state.
func (l *ArrayList[E]) EnsureCapacity(minimumCapacity int) {
	if minimumCapacity <= len(l.items) {
		return
	}
	newCapacity := len(l.items)*2 + 2
	if minimumCapacity > newCapacity {
		newCapacity = minimumCapacity
	}
	items := make([]option.Option[E], newCapacity)
	copy(items, l.items[:l.size])
	l.items = items
}

// Capacity returns the current length of the backing buffer.
func (l *ArrayList[E]) Capacity() int {
	return len(l.items)
}

// Size returns the number of elements in the list.
func (l *ArrayList[E]) Size() int {
	return l.size
}

// Add appends the given element at the end of the list.
func (l *ArrayList[E]) Add(element E) {
	l.insert(l.size, element)
}

// AddAt inserts the given element at the given position, shifting the element
// at that position and all subsequent ones one slot to the right. A position
// beyond the current size is clamped to the size, turning the operation into
// an append. It fails with ErrIndexOutOfRange if the index is negative.
func (l *ArrayList[E]) AddAt(index int, element E) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if index > l.size {
		index = l.size
	}
	l.insert(index, element)
	return nil
}

// insert places the element at the given valid position, growing the buffer
// beforehand if needed.
func (l *ArrayList[E]) insert(index int, element E) {
	l.EnsureCapacity(l.size + 1)
	copy(l.items[index+1:l.size+1], l.items[index:l.size])
	l.items[index] = option.Some(element)
	l.size++
}

// Get returns the element at the given position. It fails with
// ErrIndexOutOfRange if the index is negative or not less than the size.
func (l *ArrayList[E]) Get(index int) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}
	element, _ := l.items[index].Get()
	return element, nil
}

// Set replaces the element at the given position and returns the element
// previously held there. The bounds contract is the same as for Get. The
// capacity of the list is not affected.
func (l *ArrayList[E]) Set(index int, newElement E) (E, error) {
	old, err := l.Get(index)
	if err != nil {
		return old, err
	}
	l.items[index] = option.Some(newElement)
	return old, nil
}

// RemoveAt removes and returns the element at the given position, shifting
// all subsequent elements one slot to the left. The bounds contract is the
// same as for Get. The vacated trailing slot is cleared so the list does not
// retain a reference to the removed element.
func (l *ArrayList[E]) RemoveAt(index int) (E, error) {
	removed, err := l.Get(index)
	if err != nil {
		return removed, err
	}
	copy(l.items[index:l.size-1], l.items[index+1:l.size])
	l.size--
	l.items[l.size] = option.None[E]()
	return removed, nil
}

// String renders the list as [e1,e2,...,en], joining the default format of
// each element with commas. An unoccupied slot, should one ever surface,
// renders as the literal text null.
func (l *ArrayList[E]) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(l.items[i].String())
	}
	builder.WriteByte(']')
	return builder.String()
}
