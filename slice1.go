// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicen

import "unsafe"

// NonZero is a length known to be greater than zero.
//
// Division and modulo by a NonZero never need a zero check:
//
//	i := hash % uint64(v.Len().Get())
type NonZero int

// Get returns n as an int.
func (n NonZero) Get() int {
	return int(n)
}

// NewNonZero returns n as a NonZero if n > 0.
func NewNonZero(n int) (NonZero, bool) {
	if n <= 0 {
		return 0, false
	}
	return NonZero(n), true
}

// Slice1 is a view over a non-empty slice.
//
// Slice1 is the N1 specialization of [SliceN]. It has the same layout and
// promotes every SliceN method, and adds accessors that cannot fail because
// the first element is guaranteed to exist.
//
// Example:
//
//	v, ok := slicen.NonEmpty(samples)
//	if !ok {
//	    return errNoSamples
//	}
//	lo, hi := v.First(), v.Last()
//	mean := sum(v.Slice()) / v.Len().Get()
//
// The package-level helpers take a SliceN, so pass the embedded field:
//
//	slicen.Equal(v.SliceN, w.SliceN)
//	slicen.Compare(v.SliceN, w.SliceN)
//	slicen.Hash(&h, v.SliceN)
type Slice1[T any] struct {
	SliceN[T, N1]
}

// NonEmpty returns a view over s if s has at least one element.
// Returns ok == false if s is empty.
func NonEmpty[T any](s []T) (Slice1[T], bool) {
	v, ok := FromSlice[N1](s)
	return Slice1[T]{v}, ok
}

// NonEmptyUnchecked returns a view over s without checking its length.
// The caller must guarantee len(s) >= 1.
func NonEmptyUnchecked[T any](s []T) Slice1[T] {
	return Slice1[T]{FromSliceUnchecked[N1](s)}
}

// FromRef returns a view of length one over the element at p.
// The view aliases *p; no copy is made.
func FromRef[T any](p *T) Slice1[T] {
	return NonEmptyUnchecked(unsafe.Slice(p, 1))
}

// Lift returns s as a [Slice1].
func Lift[T any](s SliceN[T, N1]) Slice1[T] {
	return Slice1[T]{s}
}

// Len returns the number of elements as a [NonZero].
func (s Slice1[T]) Len() NonZero {
	return NonZero(s.SliceN.Len())
}

// LenInt returns the number of elements as an int.
func (s Slice1[T]) LenInt() int {
	return s.SliceN.Len()
}

// First returns the first element.
func (s Slice1[T]) First() T {
	return *s.ptr
}

// FirstPtr returns a pointer to the first element.
func (s Slice1[T]) FirstPtr() *T {
	return s.ptr
}

// Last returns the last element.
func (s Slice1[T]) Last() T {
	return *s.LastPtr()
}

// LastPtr returns a pointer to the last element.
func (s Slice1[T]) LastPtr() *T {
	return &s.Slice()[s.tail]
}

// SplitFirst returns the first element and the elements after it.
func (s Slice1[T]) SplitFirst() (T, []T) {
	first, rest := s.SplitFirstPtr()
	return *first, rest
}

// SplitFirstPtr returns a pointer to the first element and the elements
// after it.
func (s Slice1[T]) SplitFirstPtr() (*T, []T) {
	return s.ptr, s.Tail()
}

// SplitLast returns the last element and the elements before it.
func (s Slice1[T]) SplitLast() (T, []T) {
	last, front := s.SplitLastPtr()
	return *last, front
}

// SplitLastPtr returns a pointer to the last element and the elements
// before it.
func (s Slice1[T]) SplitLastPtr() (*T, []T) {
	all := s.Slice()
	return &all[s.tail], all[:s.tail:s.tail]
}
