// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicentest

import (
	"bytes"
	"errors"
	"fmt"
	"hash/maphash"
	"slices"
	"unsafe"

	"code.hybscloud.com/slicen"
)

// Violation reports a property that did not hold for a pair of buffers.
type Violation struct {
	Property string
	Got      any
	Want     any
}

func (v *Violation) Error() string {
	return fmt.Sprintf("slicentest: %s: got %v, want %v", v.Property, v.Got, v.Want)
}

// Outcome classifies a checked pair.
type Outcome int

const (
	// Checked means both views were built and every property was evaluated.
	Checked Outcome = iota
	// Short means at least one buffer was empty and construction correctly
	// returned no view.
	Short
)

// CheckPair builds non-empty views over a and b and verifies that every
// view operation agrees with the plain slices.
//
// Returns nil if all properties hold, including when a or b is empty and
// construction correctly yields no view. Otherwise returns the joined
// [*Violation] values, one per failed property.
func CheckPair(a, b []byte) error {
	_, err := checkPair(a, b)
	return err
}

func checkPair(a, b []byte) (Outcome, error) {
	var c checker

	x, okA := slicen.NonEmpty(a)
	c.expect("construct a", okA, len(a) > 0)
	if !okA {
		return Short, c.err()
	}
	y, okB := slicen.NonEmpty(b)
	c.expect("construct b", okB, len(b) > 0)
	if !okB {
		return Short, c.err()
	}

	c.checkView(x, a)
	c.checkView(y, b)
	c.checkOrder(x, y, a, b)
	c.checkBounds(a)
	return Checked, c.err()
}

type checker struct {
	errs []error
}

func (c *checker) expect(property string, got, want any) {
	if got != want {
		c.errs = append(c.errs, &Violation{Property: property, Got: got, Want: want})
	}
}

func (c *checker) err() error {
	return errors.Join(c.errs...)
}

// checkView verifies x against the buffer it was built from.
func (c *checker) checkView(x slicen.Slice1[byte], a []byte) {
	n := len(a)

	c.expect("address", x.Data(), unsafe.SliceData(a))
	c.expect("materialized address", unsafe.SliceData(x.Slice()), unsafe.SliceData(a))
	c.expect("materialized length", len(x.Slice()), n)
	c.expect("length", x.LenInt(), n)
	c.expect("nonzero length", x.Len().Get(), x.LenInt())
	c.expect("tail length", len(x.Tail()), n-1)
	c.expect("head length", len(x.Head()), 1)
	c.expect("materialized contents", bytes.Equal(x.Slice(), a), true)

	u := slicen.NonEmptyUnchecked(a)
	c.expect("unchecked address", u.Data(), x.Data())
	c.expect("unchecked length", u.Len(), x.Len())

	r := slicen.FromRawPartsUnchecked[slicen.N1](&a[0], n)
	c.expect("raw address", r.Data(), x.Data())
	c.expect("raw length", r.Len(), x.LenInt())
	rc, ok := slicen.FromRawParts[slicen.N1](&a[0], n)
	c.expect("raw checked", ok, true)
	c.expect("raw checked address", rc.Data(), x.Data())

	mu := slicen.Uninit(x.SliceN)
	c.expect("uninit address", unsafe.Pointer(mu.Data()), unsafe.Pointer(x.Data()))
	c.expect("uninit length", mu.Len(), n)
	c.expect("assume init address", slicen.AssumeInit(mu).Data(), x.Data())

	c.expect("first", x.First(), a[0])
	c.expect("last", x.Last(), a[n-1])
	c.expect("first pointer", x.FirstPtr(), &a[0])
	c.expect("last pointer", x.LastPtr(), &a[n-1])

	first, rest := x.SplitFirst()
	c.expect("split first element", first, x.First())
	c.expect("split first rest", bytes.Equal(rest, a[1:]), true)
	last, front := x.SplitLast()
	c.expect("split last element", last, x.Last())
	c.expect("split last init", bytes.Equal(front, a[:n-1]), true)

	c.expect("format %v", fmt.Sprintf("%v", x), fmt.Sprintf("%v", a))
	c.expect("format %x", fmt.Sprintf("%x", x), fmt.Sprintf("%x", a))
	c.expect("string", x.String(), fmt.Sprint(a))
	c.expect("iteration", bytes.Equal(slices.Collect(x.Values()), a), true)
}

var hashSeed = maphash.MakeSeed()

func hashView[N slicen.Bound](s slicen.SliceN[byte, N]) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	slicen.Hash(&h, s)
	return h.Sum64()
}

func hashPlain(s []byte) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	slicen.HashSlice(&h, s)
	return h.Sum64()
}

// checkOrder verifies that comparisons between x and y match the plain
// slices a and b.
func (c *checker) checkOrder(x, y slicen.Slice1[byte], a, b []byte) {
	want := bytes.Compare(a, b)

	c.expect("==", slicen.Equal(x.SliceN, y.SliceN), bytes.Equal(a, b))
	c.expect("== plain", slicen.EqualSlice(x.SliceN, b), bytes.Equal(a, b))
	c.expect("compare", slicen.Compare(x.SliceN, y.SliceN), want)
	c.expect("<", slicen.Less(x.SliceN, y.SliceN), want < 0)
	c.expect("<=", slicen.LessOrEqual(x.SliceN, y.SliceN), want <= 0)
	c.expect(">", slicen.Greater(x.SliceN, y.SliceN), want > 0)
	c.expect(">=", slicen.GreaterOrEqual(x.SliceN, y.SliceN), want >= 0)

	c.expect("hash", hashView(x.SliceN), hashPlain(a))
	if bytes.Equal(a, b) {
		c.expect("equal hash", hashView(x.SliceN), hashView(y.SliceN))
	}
}

// checkBounds verifies construction against other minimums over the same
// buffer.
func (c *checker) checkBounds(a []byte) {
	z, ok := slicen.FromSlice[slicen.N0](a)
	c.expect("construct N0", ok, true)
	c.expect("N0 address", z.Data(), unsafe.SliceData(a))
	x := slicen.NonEmptyUnchecked(a)
	c.expect("cross-bound ==", slicen.Equal(z, x.SliceN), true)
	c.expect("cross-bound hash", hashView(z), hashView(x.SliceN))

	t, ok := slicen.FromSlice[slicen.N2](a)
	c.expect("construct N2", ok, len(a) >= 2)
	if ok {
		c.expect("N2 tail length", len(t.Tail()), len(a)-2)
		c.expect("N2 compare", slicen.Compare(t, x.SliceN), 0)
	}
}
