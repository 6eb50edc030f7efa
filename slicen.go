// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicen

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"
)

// SliceN is a view over a contiguous run of T known to hold at least
// N.Min() elements.
//
// SliceN does not own or copy its elements. It records the address of the
// first element and the length of the variable tail; the fixed head length
// comes from N and is never stored. A SliceN is two words, smaller than the
// slice header it was built from.
//
// The viewed memory is laid out as two adjacent regions:
//
//	| head: N.Min() elements | tail: Len()-N.Min() elements |
//	^ Data()
//
// Every read operation materializes the plain slice with [SliceN.Slice]
// and delegates to it, so a SliceN behaves exactly like the slice it was
// built from.
//
// The zero value is a valid empty view only when N is [N0].
//
// SliceN carries no synchronization. Concurrent readers of one buffer are
// safe; a writer requires exclusive access, the same as for the source slice.
type SliceN[T any, N Bound] struct {
	ptr  *T
	tail int
}

// FromSlice returns a view over s if len(s) >= N.Min().
// Returns ok == false if s is too short.
//
// The view shares memory with s: Data() == unsafe.SliceData(s).
//
// Example:
//
//	v, ok := slicen.FromSlice[slicen.N4](buf)
//	if !ok {
//	    return errShortHeader
//	}
//	magic := v.Head()
func FromSlice[N Bound, T any](s []T) (SliceN[T, N], bool) {
	if len(s) < Min[N]() {
		return SliceN[T, N]{}, false
	}
	return FromSliceUnchecked[N](s), true
}

// FromSliceUnchecked returns a view over s without checking its length.
//
// The caller must guarantee len(s) >= N.Min(). Violating this yields a view
// whose materialized length reaches past the source, which is undefined
// behavior.
//
// All other constructors funnel through this function.
func FromSliceUnchecked[N Bound, T any](s []T) SliceN[T, N] {
	return SliceN[T, N]{ptr: unsafe.SliceData(s), tail: len(s) - Min[N]()}
}

// FromRawParts returns a view over n elements starting at ptr if
// n >= N.Min(). Returns ok == false if n is too short.
//
// ptr and n must satisfy the requirements of [unsafe.Slice]: ptr points to
// n valid, properly aligned elements of one allocation, and the memory is not
// written through another alias while the view is in use.
func FromRawParts[N Bound, T any](ptr *T, n int) (SliceN[T, N], bool) {
	return FromSlice[N](unsafe.Slice(ptr, n))
}

// FromRawPartsUnchecked returns a view over n elements starting at ptr
// without checking n against N.Min().
//
// In addition to the requirements of [FromRawParts], the caller must
// guarantee n >= N.Min().
func FromRawPartsUnchecked[N Bound, T any](ptr *T, n int) SliceN[T, N] {
	return FromSliceUnchecked[N](unsafe.Slice(ptr, n))
}

// Require returns a view over s, or an error wrapping [ErrTooShort] if
// len(s) < N.Min().
func Require[N Bound, T any](s []T) (SliceN[T, N], error) {
	v, ok := FromSlice[N](s)
	if !ok {
		return v, tooShort(len(s), Min[N]())
	}
	return v, nil
}

// Slice returns the viewed elements as a plain slice.
//
// The result starts at Data() and has length and capacity Len(). Writes
// through it are writes to the source buffer; appends always reallocate.
func (s SliceN[T, N]) Slice() []T {
	return unsafe.Slice(s.ptr, Min[N]()+s.tail)
}

// Len returns the total number of elements, N.Min() plus the tail length.
func (s SliceN[T, N]) Len() int {
	return Min[N]() + s.tail
}

// Data returns the address of the first element.
func (s SliceN[T, N]) Data() *T {
	return s.ptr
}

// Head returns the fixed region of exactly N.Min() elements.
func (s SliceN[T, N]) Head() []T {
	n := Min[N]()
	return s.Slice()[:n:n]
}

// Tail returns the variable region following the head.
func (s SliceN[T, N]) Tail() []T {
	return s.Slice()[Min[N]():]
}

// At returns the element at index i. Panics if i is out of range.
func (s SliceN[T, N]) At(i int) T {
	return s.Slice()[i]
}

// Ptr returns a pointer to the element at index i. Panics if i is out of
// range.
func (s SliceN[T, N]) Ptr(i int) *T {
	return &s.Slice()[i]
}

// All returns an iterator over index-value pairs in order.
func (s SliceN[T, N]) All() iter.Seq2[int, T] {
	return slices.All(s.Slice())
}

// Values returns an iterator over the elements in order.
func (s SliceN[T, N]) Values() iter.Seq[T] {
	return slices.Values(s.Slice())
}

// Backward returns an iterator over index-value pairs in reverse order.
func (s SliceN[T, N]) Backward() iter.Seq2[int, T] {
	return slices.Backward(s.Slice())
}

// Format implements [fmt.Formatter]. Output is identical to formatting
// Slice() with the same verb and flags.
func (s SliceN[T, N]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.Slice())
}

// String returns fmt.Sprint(s.Slice()).
func (s SliceN[T, N]) String() string {
	return fmt.Sprint(s.Slice())
}
