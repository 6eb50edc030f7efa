// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicen

// Bound is a compile-time minimum length.
//
// A Bound is a zero-size marker type whose Min method returns a constant.
// The value is never stored in a [SliceN]; it is recovered from the type
// parameter whenever a length is computed.
//
// Custom bounds are declared the same way as the predeclared ones:
//
//	type N64 struct{}
//
//	func (N64) Min() int { return 64 }
//
//	v, ok := slicen.FromSlice[N64](frame)
type Bound interface {
	~struct{}
	Min() int
}

// N0 places no requirement on the length.
type N0 struct{}

// N1 requires at least one element. See [Slice1].
type N1 struct{}

// N2 requires at least two elements.
type N2 struct{}

// N3 requires at least three elements.
type N3 struct{}

// N4 requires at least four elements.
type N4 struct{}

// N8 requires at least eight elements.
type N8 struct{}

// N16 requires at least sixteen elements.
type N16 struct{}

func (N0) Min() int  { return 0 }
func (N1) Min() int  { return 1 }
func (N2) Min() int  { return 2 }
func (N3) Min() int  { return 3 }
func (N4) Min() int  { return 4 }
func (N8) Min() int  { return 8 }
func (N16) Min() int { return 16 }

// Min returns the minimum length declared by N.
func Min[N Bound]() int {
	var n N
	return n.Min()
}
