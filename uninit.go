// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicen

import "unsafe"

// MaybeUninit is storage for a T that may not have been written yet.
//
// MaybeUninit[T] has the same size and alignment as T, so a view over T
// and a view over MaybeUninit[T] describe identical memory. Go memory is
// always zeroed, so reading an unwritten slot yields the zero T; the
// distinction is a contract between the code filling a buffer and the code
// reading it.
type MaybeUninit[T any] struct {
	v T
}

// Write stores v and returns a pointer to the stored value.
func (m *MaybeUninit[T]) Write(v T) *T {
	m.v = v
	return &m.v
}

// Get returns the stored value. The caller asserts it was written.
func (m MaybeUninit[T]) Get() T {
	return m.v
}

// Ptr returns a pointer to the storage.
func (m *MaybeUninit[T]) Ptr() *T {
	return &m.v
}

// Uninit reinterprets s as a view over possibly-uninitialized storage with
// the same address and length.
//
// Example (fill a reused buffer in place):
//
//	slots := slicen.Uninit(v)
//	for i := range slots.Len() {
//	    slots.Ptr(i).Write(next())
//	}
//	filled := slicen.AssumeInit(slots)
func Uninit[N Bound, T any](s SliceN[T, N]) SliceN[MaybeUninit[T], N] {
	return SliceN[MaybeUninit[T], N]{ptr: (*MaybeUninit[T])(unsafe.Pointer(s.ptr)), tail: s.tail}
}

// AssumeInit reinterprets s as a view over T with the same address and
// length. The caller asserts every element has been written.
func AssumeInit[N Bound, T any](s SliceN[MaybeUninit[T], N]) SliceN[T, N] {
	return SliceN[T, N]{ptr: (*T)(unsafe.Pointer(s.ptr)), tail: s.tail}
}
