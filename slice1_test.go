// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicen_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/slicen"
)

// TestSlice1Scenario tests first, last and split over [5 2 9].
func TestSlice1Scenario(t *testing.T) {
	a := []int{5, 2, 9}
	b := []int{5, 2, 9}

	va, ok := slicen.NonEmpty(a)
	if !ok {
		t.Fatal("NonEmpty(a): got ok=false")
	}
	vb, ok := slicen.NonEmpty(b)
	if !ok {
		t.Fatal("NonEmpty(b): got ok=false")
	}

	if !slicen.Equal(va.SliceN, vb.SliceN) {
		t.Fatal("Equal: got false, want true")
	}
	if va.First() != 5 {
		t.Fatalf("First: got %d, want 5", va.First())
	}
	if va.Last() != 9 {
		t.Fatalf("Last: got %d, want 9", va.Last())
	}
	first, rest := va.SplitFirst()
	if first != 5 || !slices.Equal(rest, []int{2, 9}) {
		t.Fatalf("SplitFirst: got (%d, %v), want (5, [2 9])", first, rest)
	}
	last, front := va.SplitLast()
	if last != 9 || !slices.Equal(front, []int{5, 2}) {
		t.Fatalf("SplitLast: got (%d, %v), want (9, [5 2])", last, front)
	}
}

// TestSlice1Empty tests that an empty source yields no view.
func TestSlice1Empty(t *testing.T) {
	if _, ok := slicen.NonEmpty([]int{}); ok {
		t.Fatal("NonEmpty([]): got ok=true")
	}
	if _, ok := slicen.NonEmpty[int](nil); ok {
		t.Fatal("NonEmpty(nil): got ok=true")
	}
}

// TestSlice1Single tests a one-element view, where first and last coincide.
func TestSlice1Single(t *testing.T) {
	v, _ := slicen.NonEmpty([]string{"only"})

	if v.FirstPtr() != v.LastPtr() {
		t.Fatal("FirstPtr != LastPtr for a single element")
	}
	if _, rest := v.SplitFirst(); len(rest) != 0 {
		t.Fatalf("SplitFirst rest: got %v, want empty", rest)
	}
	if _, front := v.SplitLast(); len(front) != 0 {
		t.Fatalf("SplitLast front: got %v, want empty", front)
	}
	if v.Len().Get() != 1 {
		t.Fatalf("Len: got %d, want 1", v.Len().Get())
	}
}

// TestSlice1Len tests the NonZero and int length accessors.
func TestSlice1Len(t *testing.T) {
	for n := 1; n <= 16; n++ {
		v, ok := slicen.NonEmpty(make([]byte, n))
		if !ok {
			t.Fatalf("NonEmpty len %d: got ok=false", n)
		}
		if v.Len().Get() != n || v.LenInt() != n {
			t.Fatalf("len %d: got Len %d LenInt %d", n, v.Len().Get(), v.LenInt())
		}
		if 100%v.Len().Get() != 100%n {
			t.Fatalf("len %d: modulo mismatch", n)
		}
	}

	if _, ok := slicen.NewNonZero(0); ok {
		t.Fatal("NewNonZero(0): got ok=true")
	}
	if _, ok := slicen.NewNonZero(-3); ok {
		t.Fatal("NewNonZero(-3): got ok=true")
	}
	if n, ok := slicen.NewNonZero(7); !ok || n.Get() != 7 {
		t.Fatalf("NewNonZero(7): got (%d, %v)", n, ok)
	}
}

// TestSlice1Mutation tests the pointer accessors.
func TestSlice1Mutation(t *testing.T) {
	buf := []int{1, 2, 3, 4}
	v, _ := slicen.NonEmpty(buf)

	*v.FirstPtr() = 10
	*v.LastPtr() = 40
	p, rest := v.SplitFirstPtr()
	*p++
	rest[0] = 20
	q, front := v.SplitLastPtr()
	*q++
	front[2] = 30

	if !slices.Equal(buf, []int{11, 20, 30, 41}) {
		t.Fatalf("buf: got %v, want [11 20 30 41]", buf)
	}
}

// TestSlice1SplitLastClipped tests that the front of SplitLast cannot grow
// over the last element.
func TestSlice1SplitLastClipped(t *testing.T) {
	buf := []int{1, 2, 3}
	v, _ := slicen.NonEmpty(buf)

	_, front := v.SplitLast()
	_ = append(front, 99)
	if buf[2] != 3 {
		t.Fatalf("append overwrote last element: got %d, want 3", buf[2])
	}
}

// TestFromRef tests lifting a single element.
func TestFromRef(t *testing.T) {
	x := 42
	v := slicen.FromRef(&x)

	if v.FirstPtr() != &x {
		t.Fatalf("FirstPtr: got %p, want %p", v.FirstPtr(), &x)
	}
	if v.Len().Get() != 1 || v.First() != 42 || v.Last() != 42 {
		t.Fatalf("FromRef: got %v", v)
	}
	*v.FirstPtr() = 7
	if x != 7 {
		t.Fatalf("write through FromRef: got %d, want 7", x)
	}
}

// TestLift tests converting a SliceN[T, N1] to Slice1.
func TestLift(t *testing.T) {
	buf := []byte("go")
	s, _ := slicen.FromSlice[slicen.N1](buf)
	v := slicen.Lift(s)

	if v.SliceN != s {
		t.Fatal("Lift: embedded view differs")
	}
	if v.First() != 'g' || v.Last() != 'o' {
		t.Fatalf("Lift: got first %q last %q", v.First(), v.Last())
	}
	u := slicen.NonEmptyUnchecked(buf)
	if u != v {
		t.Fatal("NonEmptyUnchecked differs from Lift(FromSlice)")
	}
}
