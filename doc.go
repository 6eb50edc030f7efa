// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slicen provides slice views with a compile-time minimum length.
//
// A [SliceN] is a view over an existing []T known to hold at least
// N.Min() elements. Building one checks the length once; afterwards the
// guarantee travels in the type, and operations that would otherwise need a
// bounds check or an ok result cannot fail.
//
// Views never copy. A view shares memory with the slice it was built from,
// starts at the same address and materializes to the same length.
//
// # Quick Start
//
//	buf := []byte{5, 2, 9}
//
//	v, ok := slicen.NonEmpty(buf)  // Slice1[byte]
//	if !ok {
//	    return errEmpty
//	}
//	v.First()          // 5, no check
//	v.Last()           // 9, no check
//	v.SplitFirst()     // 5, [2 9]
//	v.Len().Get()      // 3, typed as NonZero
//
//	h, ok := slicen.FromSlice[slicen.N2](buf)  // SliceN[byte, N2]
//	h.Head()           // [5 2]
//	h.Tail()           // [9]
//
// # Bounds
//
// Go has no integer type parameters, so the minimum is a zero-size marker
// type implementing [Bound]. N0, N1, N2, N3, N4, N8 and N16 are
// predeclared; other minimums are one declaration away:
//
//	type N64 struct{}
//
//	func (N64) Min() int { return 64 }
//
// The bound is never stored. A SliceN is a pointer and a tail length:
//
//	| head: N.Min() elements | tail: Len()-N.Min() elements |
//	^ Data()
//
// # Construction
//
// Checked constructors report a short source with ok == false:
//
//	slicen.FromSlice[N](s)           // (SliceN[T, N], bool)
//	slicen.FromRawParts[N](ptr, n)   // (SliceN[T, N], bool)
//	slicen.NonEmpty(s)               // (Slice1[T], bool)
//	slicen.Require[N](s)             // (SliceN[T, N], error), wraps ErrTooShort
//
// Unchecked constructors trust the caller:
//
//	slicen.FromSliceUnchecked[N](s)
//	slicen.FromRawPartsUnchecked[N](ptr, n)
//	slicen.NonEmptyUnchecked(s)
//
// A short source passed to an unchecked constructor yields a view that
// reaches past the source's memory. This is undefined behavior, not an
// error. Use them only where the length is already established, for
// example right after make([]T, n) with n >= N.Min().
//
// [FromRef] lifts a single element pointer to a view of length one.
//
// # Non-Empty Views
//
// [Slice1] is the N1 specialization. It embeds SliceN[T, N1] and adds
// First, Last, SplitFirst and SplitLast, their pointer forms, and a
// [NonZero] length.
//
// # Comparison, Hashing and Formatting
//
// Every read operation goes through [SliceN.Slice], so views compare, hash
// and print exactly like the slices they view. Views with different bounds
// compare by value:
//
//	slicen.Equal(a, b)          // slices.Equal
//	slicen.EqualSlice(a, arr[:])
//	slicen.Compare(a, b)        // slices.Compare
//	slicen.Less(a, b)           // Compare(a, b) < 0
//	slicen.Hash(&h, a)          // same as HashSlice(&h, a.Slice())
//	fmt.Sprintf("%v", a)        // same as fmt.Sprintf("%v", a.Slice())
//
// Equality also accepts differing element types through [EqualFunc];
// ordering is defined only between views of the same element type.
//
// # Mutation and Sharing
//
// Go slices have no read-only form, so each constructor serves both readers
// and writers: writes through Slice(), Ptr(i), FirstPtr() or LastPtr() are
// writes to the source buffer. Views carry no synchronization. Any number of
// goroutines may read through views of one buffer; a writer needs exclusive
// access, exactly as for the source slice.
//
// [Uninit] reinterprets a view as [MaybeUninit] storage for code filling a
// buffer in place, and [AssumeInit] converts it back.
//
// # Testing
//
// Package [code.hybscloud.com/slicen/slicentest] checks views against plain
// slice semantics over arbitrary byte buffers, and backs this package's
// fuzz target.
package slicen
