// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicentest

import "bytes"

// SplitInput derives two independent byte buffers from one raw input.
//
// The first byte selects the length of a (clamped to what remains); the
// rest of the input becomes b. Both results are fresh allocations, so their
// addresses never coincide with data or with each other unless empty.
//
//	SplitInput([]byte{2, 5, 2, 9})  // a = [5 2], b = [9]
//	SplitInput(nil)                 // a = [], b = []
func SplitInput(data []byte) (a, b []byte) {
	if len(data) == 0 {
		return []byte{}, []byte{}
	}
	n := min(int(data[0]), len(data)-1)
	rest := data[1:]
	return cloneBytes(rest[:n]), cloneBytes(rest[n:])
}

// JoinInput is the inverse of [SplitInput] for len(a) <= 255.
// Panics if a is longer.
func JoinInput(a, b []byte) []byte {
	if len(a) > 255 {
		panic("slicentest: first buffer longer than 255 bytes")
	}
	out := make([]byte, 0, 1+len(a)+len(b))
	out = append(out, byte(len(a)))
	out = append(out, a...)
	return append(out, b...)
}

// cloneBytes copies b into a new non-nil slice.
func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return []byte{}
	}
	return bytes.Clone(b)
}
