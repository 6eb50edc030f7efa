// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicen_test

import (
	"reflect"
	"testing"
	"unsafe"

	"code.hybscloud.com/slicen"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// TestSliceNLayout tests that a view is a pointer and a tail length, and
// that the bound adds nothing.
func TestSliceNLayout(t *testing.T) {
	typ := reflect.TypeOf(slicen.SliceN[int64, slicen.N16]{})

	checkOffset := func(name string, want uintptr) {
		field, ok := typ.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %q", name)
		}
		if field.Offset != want {
			t.Fatalf("%s offset: got %d, want %d", name, field.Offset, want)
		}
	}

	checkOffset("ptr", 0)
	checkOffset("tail", ptrSize)

	if typ.Size() != 2*ptrSize {
		t.Fatalf("SliceN size: got %d, want %d", typ.Size(), 2*ptrSize)
	}
	if typ.Size() >= unsafe.Sizeof([]int64(nil)) {
		t.Fatalf("SliceN size %d not smaller than a slice header", typ.Size())
	}
}

// TestBoundSizes tests that bounds are zero-size and the instantiation does
// not change the view size.
func TestBoundSizes(t *testing.T) {
	sizes := []uintptr{
		unsafe.Sizeof(slicen.SliceN[byte, slicen.N0]{}),
		unsafe.Sizeof(slicen.SliceN[byte, slicen.N1]{}),
		unsafe.Sizeof(slicen.SliceN[byte, slicen.N8]{}),
		unsafe.Sizeof(slicen.SliceN[[64]byte, slicen.N16]{}),
		unsafe.Sizeof(slicen.Slice1[string]{}),
	}
	for i, s := range sizes {
		if s != 2*ptrSize {
			t.Fatalf("sizes[%d]: got %d, want %d", i, s, 2*ptrSize)
		}
	}
	if unsafe.Sizeof(slicen.N4{}) != 0 {
		t.Fatalf("N4 size: got %d, want 0", unsafe.Sizeof(slicen.N4{}))
	}
}
