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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexOf_FindsFirstMatch(t *testing.T) {
	list := New[string]()
	for _, element := range []string{"a", "b", "c", "b"} {
		list.Add(element)
	}

	require.Equal(t, 1, IndexOf(list, "b"))
	require.Equal(t, 0, IndexOf(list, "a"))
	require.Equal(t, -1, IndexOf(list, "x"))
}

func TestIndexOf_ScansOnlyOccupiedSlots(t *testing.T) {
	list, err := NewWithCapacity[int](10)
	require.NoError(t, err)
	list.Add(1)

	// the zero value sits in every unoccupied slot, but must not be found
	require.Equal(t, -1, IndexOf(list, 0))
}

func TestRemoveValue_RemovesFirstMatchingElement(t *testing.T) {
	list := New[string]()
	for _, element := range []string{"a", "b", "c", "b"} {
		list.Add(element)
	}

	removed := RemoveValue(list, "b")
	value, ok := removed.Get()
	require.True(t, ok)
	require.Equal(t, "b", value)
	require.Equal(t, 3, list.Size())
	require.Equal(t, "[a,c,b]", list.String())
}

func TestRemoveValue_NoMatchLeavesListUnchanged(t *testing.T) {
	list := New[int]()
	for i := 1; i <= 3; i++ {
		list.Add(i)
	}

	removed := RemoveValue(list, 42)
	require.False(t, removed.IsPresent())
	require.Equal(t, 3, list.Size())
	require.Equal(t, "[1,2,3]", list.String())
}

func TestRemoveValue_OnEmptyListReturnsNone(t *testing.T) {
	list := New[int]()
	require.False(t, RemoveValue(list, 1).IsPresent())
}
