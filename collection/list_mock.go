// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package collection is a generated GoMock package.
package collection

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockList is a mock of List interface.
type MockList[E any] struct {
	ctrl     *gomock.Controller
	recorder *MockListMockRecorder[E]
	isgomock struct{}
}

// MockListMockRecorder is the mock recorder for MockList.
type MockListMockRecorder[E any] struct {
	mock *MockList[E]
}

// NewMockList creates a new mock instance.
func NewMockList[E any](ctrl *gomock.Controller) *MockList[E] {
	mock := &MockList[E]{ctrl: ctrl}
	mock.recorder = &MockListMockRecorder[E]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockList[E]) EXPECT() *MockListMockRecorder[E] {
	return m.recorder
}

// Add mocks base method.
func (m *MockList[E]) Add(element E) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Add", element)
}

// Add indicates an expected call of Add.
func (mr *MockListMockRecorder[E]) Add(element any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockList[E])(nil).Add), element)
}

// AddAt mocks base method.
func (m *MockList[E]) AddAt(index int, element E) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddAt", index, element)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddAt indicates an expected call of AddAt.
func (mr *MockListMockRecorder[E]) AddAt(index, element any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddAt", reflect.TypeOf((*MockList[E])(nil).AddAt), index, element)
}

// Capacity mocks base method.
func (m *MockList[E]) Capacity() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Capacity")
	ret0, _ := ret[0].(int)
	return ret0
}

// Capacity indicates an expected call of Capacity.
func (mr *MockListMockRecorder[E]) Capacity() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Capacity", reflect.TypeOf((*MockList[E])(nil).Capacity))
}

// EnsureCapacity mocks base method.
func (m *MockList[E]) EnsureCapacity(minimumCapacity int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "EnsureCapacity", minimumCapacity)
}

// EnsureCapacity indicates an expected call of EnsureCapacity.
func (mr *MockListMockRecorder[E]) EnsureCapacity(minimumCapacity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureCapacity", reflect.TypeOf((*MockList[E])(nil).EnsureCapacity), minimumCapacity)
}

// Get mocks base method.
func (m *MockList[E]) Get(index int) (E, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", index)
	ret0, _ := ret[0].(E)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockListMockRecorder[E]) Get(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockList[E])(nil).Get), index)
}

// RemoveAt mocks base method.
func (m *MockList[E]) RemoveAt(index int) (E, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveAt", index)
	ret0, _ := ret[0].(E)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RemoveAt indicates an expected call of RemoveAt.
func (mr *MockListMockRecorder[E]) RemoveAt(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveAt", reflect.TypeOf((*MockList[E])(nil).RemoveAt), index)
}

// Set mocks base method.
func (m *MockList[E]) Set(index int, newElement E) (E, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", index, newElement)
	ret0, _ := ret[0].(E)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Set indicates an expected call of Set.
func (mr *MockListMockRecorder[E]) Set(index, newElement any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockList[E])(nil).Set), index, newElement)
}

// Size mocks base method.
func (m *MockList[E]) Size() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size")
	ret0, _ := ret[0].(int)
	return ret0
}

// Size indicates an expected call of Size.
func (mr *MockListMockRecorder[E]) Size() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockList[E])(nil).Size))
}

// String mocks base method.
func (m *MockList[E]) String() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "String")
	ret0, _ := ret[0].(string)
	return ret0
}

// String indicates an expected call of String.
func (mr *MockListMockRecorder[E]) String() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "String", reflect.TypeOf((*MockList[E])(nil).String))
}
