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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayList_New_IsEmptyWithDefaultCapacity(t *testing.T) {
	list := New[string]()
	require.Equal(t, 0, list.Size())
	require.Equal(t, DefaultCapacity, list.Capacity())
}

func TestArrayList_NewWithCapacity_UsesRequestedCapacity(t *testing.T) {
	for _, capacity := range []int{0, 1, 7, 100} {
		list, err := NewWithCapacity[int](capacity)
		require.NoError(t, err)
		require.Equal(t, 0, list.Size())
		require.Equal(t, capacity, list.Capacity())
	}
}

func TestArrayList_NewWithCapacity_RejectsNegativeCapacity(t *testing.T) {
	_, err := NewWithCapacity[int](-1)
	require.ErrorIs(t, err, ErrNegativeCapacity)
}

func TestArrayList_Add_KeepsInsertionOrder(t *testing.T) {
	list := New[string]()
	elements := []string{"Volvo", "BMW", "Ford", "Mazda"}
	for _, element := range elements {
		list.Add(element)
	}
	require.Equal(t, len(elements), list.Size())
	for i, want := range elements {
		got, err := list.Get(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestArrayList_Add_GrowsBeyondInitialCapacity(t *testing.T) {
	list, err := NewWithCapacity[int](0)
	require.NoError(t, err)
	const count = 1000
	for i := 0; i < count; i++ {
		list.Add(i)
	}
	require.Equal(t, count, list.Size())
	require.GreaterOrEqual(t, list.Capacity(), count)
	for i := 0; i < count; i++ {
		got, err := list.Get(i)
		require.NoError(t, err)
		require.Equal(t, i, got)
	}
}

func TestArrayList_AddAt_ShiftsElementsRight(t *testing.T) {
	list := New[string]()
	for _, element := range []string{"Steve", "Tim", "Lucy", "Pat", "Angela", "Tom"} {
		list.Add(element)
	}

	require.NoError(t, list.AddAt(3, "Steve"))

	require.Equal(t, 7, list.Size())
	require.Equal(t, "[Steve,Tim,Lucy,Steve,Pat,Angela,Tom]", list.String())
}

func TestArrayList_AddAt_ClampsIndexBeyondSizeToAppend(t *testing.T) {
	list := New[int]()
	list.Add(1)
	list.Add(2)

	require.NoError(t, list.AddAt(list.Size()+5, 3))

	require.Equal(t, 3, list.Size())
	require.Equal(t, "[1,2,3]", list.String())
}

func TestArrayList_AddAt_RejectsNegativeIndex(t *testing.T) {
	list := New[int]()
	err := list.AddAt(-1, 12)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.Equal(t, 0, list.Size())
}

func TestArrayList_AddAt_FrontInsertIntoFullBufferGrows(t *testing.T) {
	list, err := NewWithCapacity[int](2)
	require.NoError(t, err)
	list.Add(2)
	list.Add(3)

	require.NoError(t, list.AddAt(0, 1))

	require.Equal(t, 3, list.Size())
	require.GreaterOrEqual(t, list.Capacity(), 3)
	require.Equal(t, "[1,2,3]", list.String())
}

func TestArrayList_Get_RejectsIndexOutsideOccupiedRange(t *testing.T) {
	list := New[int]()
	list.Add(10)

	for _, index := range []int{-1, 1, 2} {
		_, err := list.Get(index)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", index)
	}
}

func TestArrayList_Set_ReplacesElementAndReturnsPrevious(t *testing.T) {
	list := New[string]()
	list.Add("a")
	list.Add("b")

	old, err := list.Set(1, "c")
	require.NoError(t, err)
	require.Equal(t, "b", old)

	got, err := list.Get(1)
	require.NoError(t, err)
	require.Equal(t, "c", got)
	require.Equal(t, 2, list.Size())
}

func TestArrayList_Set_DoesNotResize(t *testing.T) {
	list := New[int]()
	list.Add(1)
	capacity := list.Capacity()

	_, err := list.Set(0, 2)
	require.NoError(t, err)
	require.Equal(t, capacity, list.Capacity())
}

func TestArrayList_Set_RejectsIndexOutsideOccupiedRange(t *testing.T) {
	list := New[int]()
	list.Add(10)

	for _, index := range []int{-1, 1} {
		_, err := list.Set(index, 20)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", index)
	}
}

func TestArrayList_RemoveAt_ShiftsSubsequentElementsLeft(t *testing.T) {
	list := New[string]()
	for _, element := range []string{"A", "B", "C", "D"} {
		list.Add(element)
	}

	removed, err := list.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, "B", removed)
	require.Equal(t, 3, list.Size())
	require.Equal(t, "[A,C,D]", list.String())
}

func TestArrayList_RemoveAt_ClearsVacatedTrailingSlot(t *testing.T) {
	list := New[string]()
	list.Add("a")
	list.Add("b")

	_, err := list.RemoveAt(0)
	require.NoError(t, err)

	// the slot beyond the new size must not retain the shifted element
	require.False(t, list.items[1].IsPresent())
}

func TestArrayList_RemoveAt_RejectsIndexOutsideOccupiedRange(t *testing.T) {
	list := New[int]()
	list.Add(10)

	for _, index := range []int{-1, 1} {
		_, err := list.RemoveAt(index)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", index)
	}
	require.Equal(t, 1, list.Size())
}

func TestArrayList_EnsureCapacity_GrowsToLargerOfMinimumAndDoublePlusTwo(t *testing.T) {
	tests := []struct {
		capacity int
		minimum  int
		want     int
	}{
		{0, 1, 2},       // 2*0+2 exceeds the minimum
		{4, 5, 10},      // 2*4+2 exceeds the minimum
		{4, 100, 100},   // the minimum exceeds 2*4+2
		{16, 33, 34},    // 2*16+2 exceeds the minimum by one
		{16, 1000, 1000},
	}
	for _, test := range tests {
		list, err := NewWithCapacity[int](test.capacity)
		require.NoError(t, err)
		list.EnsureCapacity(test.minimum)
		require.Equal(t, test.want, list.Capacity(),
			"capacity %d, minimum %d", test.capacity, test.minimum)
	}
}

func TestArrayList_EnsureCapacity_NoOpWhenSufficient(t *testing.T) {
	list, err := NewWithCapacity[int](10)
	require.NoError(t, err)
	for _, minimum := range []int{0, 5, 10} {
		list.EnsureCapacity(minimum)
		require.Equal(t, 10, list.Capacity())
	}
}

func TestArrayList_EnsureCapacity_IsIdempotent(t *testing.T) {
	list := New[int]()
	for i := 0; i < 5; i++ {
		list.Add(i)
	}

	list.EnsureCapacity(100)
	capacity := list.Capacity()
	rendered := list.String()

	list.EnsureCapacity(100)
	require.Equal(t, capacity, list.Capacity())
	require.Equal(t, rendered, list.String())
}

func TestArrayList_EnsureCapacity_PreservesElementsAndPositions(t *testing.T) {
	list, err := NewWithCapacity[int](3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		list.Add(i * 10)
	}

	list.EnsureCapacity(50)
	require.Equal(t, 3, list.Size())
	for i := 0; i < 3; i++ {
		got, err := list.Get(i)
		require.NoError(t, err)
		require.Equal(t, i*10, got)
	}
}

func TestArrayList_Growth_FollowsGrowthLawOnAppend(t *testing.T) {
	list, err := NewWithCapacity[int](0)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		before := list.Capacity()
		list.Add(i)
		after := list.Capacity()
		require.GreaterOrEqual(t, after, list.Size())
		if after != before {
			// a grow step must reach at least 2c+2
			require.GreaterOrEqual(t, after, before*2+2)
		}
	}
}

func TestArrayList_String_RendersCommaJoinedElements(t *testing.T) {
	list := New[int]()
	require.Equal(t, "[]", list.String())

	list.Add(1)
	require.Equal(t, "[1]", list.String())

	list.Add(2)
	list.Add(3)
	require.Equal(t, "[1,2,3]", list.String())
}

func TestArrayList_String_RendersUnoccupiedSlotAsNull(t *testing.T) {
	list := New[*int]()
	list.Add(nil)
	value := 2
	list.Add(&value)

	// a nil pointer element is a valid value and renders like fmt would
	require.Equal(t, fmt.Sprintf("[%v,%v]", (*int)(nil), &value), list.String())

	// force an unoccupied slot into the visible range to check the fallback
	list.size++
	require.Equal(t, fmt.Sprintf("[%v,%v,null]", (*int)(nil), &value), list.String())
}

func TestArrayList_MixedOperations_SizeTracksSuccessfulMutations(t *testing.T) {
	list := New[int]()
	list.Add(1)                           // [1]
	require.NoError(t, list.AddAt(0, 0))  // [0,1]
	require.NoError(t, list.AddAt(9, 2))  // [0,1,2], clamped append
	_, err := list.RemoveAt(1)            // [0,2]
	require.NoError(t, err)
	require.Error(t, list.AddAt(-3, 9))   // rejected, no change

	require.Equal(t, 2, list.Size())
	require.Equal(t, "[0,2]", list.String())
}
