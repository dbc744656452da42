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
	"iter"
)

// ErrEndOfIteration is returned when advancing an iterator that has no more
// elements to produce.
var ErrEndOfIteration = errors.New("end of iteration")

// Iterator is a forward-only cursor over the elements of a list. It does not
// take a snapshot; each step re-reads the list, so mutations performed on the
// list while iterating are visible and may shift positions or surface bounds
// errors. Structural changes made through anything but the iterator's own
// Remove produce logically stale positions on subsequent steps.
type Iterator[E any] struct {
	list    *ArrayList[E]
	current int
}

// Iterator creates an iterator positioned before the first element.
func (l *ArrayList[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{list: l}
}

// HasNext returns true if the iterator has more elements to produce.
func (it *Iterator[E]) HasNext() bool {
	return it.current < it.list.Size()
}

// Next returns the next element and advances the iterator. It fails with
// ErrEndOfIteration when called past the last element.
func (it *Iterator[E]) Next() (E, error) {
	if !it.HasNext() {
		var zero E
		return zero, ErrEndOfIteration
	}
	element, err := it.list.Get(it.current)
	if err != nil {
		return element, err
	}
	it.current++
	return element, nil
}

// Remove removes the element most recently returned by Next from the
// underlying list and returns it. The cursor is stepped back so that the
// following Next does not skip the element shifted into the removed slot.
// Calling Remove before any successful Next fails with ErrIndexOutOfRange.
func (it *Iterator[E]) Remove() (E, error) {
	it.current--
	return it.list.RemoveAt(it.current)
}

// All returns a lazy forward view of the list for use in range statements.
// Like Iterator, it re-reads the list on every step rather than iterating a
// snapshot, and it stops at the list's size at the time of each step.
func (l *ArrayList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < l.Size(); i++ {
			element, err := l.Get(i)
			if err != nil {
				return
			}
			if !yield(element) {
				return
			}
		}
	}
}
