// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicen

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// The bounds of a and b may differ; only the materialized slices are
// compared.
func Equal[T comparable, N, M Bound](a SliceN[T, N], b SliceN[T, M]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc reports whether a and b have the same length and eq reports
// true for every pair of elements. The element types may differ.
func EqualFunc[T, U any, N, M Bound](a SliceN[T, N], b SliceN[U, M], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// EqualSlice reports whether a holds the same elements as the plain slice b.
//
// Fixed-size arrays compare through arr[:]:
//
//	slicen.EqualSlice(v, [3]byte{5, 2, 9}[:])
func EqualSlice[T comparable, N Bound](a SliceN[T, N], b []T) bool {
	return slices.Equal(a.Slice(), b)
}

// Compare compares a and b lexicographically, as [slices.Compare].
// The result is 0 if a == b, -1 if a < b, and +1 if a > b.
//
// Elements are ordered by [cmp.Compare], so a NaN sorts before every other
// floating-point value and equals another NaN. Compare([NaN], [1]) is -1
// even though NaN < 1 is false. Compare, [Less], [LessOrEqual], [Greater]
// and [GreaterOrEqual] order views exactly as [slices.Compare] orders the
// plain slices.
func Compare[T cmp.Ordered, N, M Bound](a SliceN[T, N], b SliceN[T, M]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like [Compare] but uses cmp to compare elements.
func CompareFunc[T any, N, M Bound](a SliceN[T, N], b SliceN[T, M], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

// Less reports whether a sorts before b, as Compare(a, b) < 0.
// A NaN element sorts before any number; see [Compare].
func Less[T cmp.Ordered, N, M Bound](a SliceN[T, N], b SliceN[T, M]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a sorts before or equal to b.
func LessOrEqual[T cmp.Ordered, N, M Bound](a SliceN[T, N], b SliceN[T, M]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a sorts after b.
func Greater[T cmp.Ordered, N, M Bound](a SliceN[T, N], b SliceN[T, M]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a sorts after or equal to b.
func GreaterOrEqual[T cmp.Ordered, N, M Bound](a SliceN[T, N], b SliceN[T, M]) bool {
	return Compare(a, b) >= 0
}

// Hash writes s to h exactly as [HashSlice] writes s.Slice().
// Views that are [Equal] produce equal hashes regardless of their bounds.
func Hash[T comparable, N Bound](h *maphash.Hash, s SliceN[T, N]) {
	HashSlice(h, s.Slice())
}

// HashSlice writes the length of s followed by each element to h.
func HashSlice[T comparable](h *maphash.Hash, s []T) {
	maphash.WriteComparable(h, len(s))
	for _, v := range s {
		maphash.WriteComparable(h, v)
	}
}
