// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicen

import (
	"errors"
	"fmt"
)

// ErrTooShort indicates the source buffer has fewer elements than the
// minimum required by the view's [Bound].
//
// The checked constructors ([FromSlice], [FromRawParts], [NonEmpty]) report
// this condition with ok == false instead. ErrTooShort is returned only by
// [Require], for call sites that propagate errors.
//
// Example:
//
//	hdr, err := slicen.Require[slicen.N8](packet)
//	if errors.Is(err, slicen.ErrTooShort) {
//	    return err // truncated packet
//	}
var ErrTooShort = errors.New("slicen: slice shorter than minimum")

// IsTooShort reports whether err is or wraps [ErrTooShort].
func IsTooShort(err error) bool {
	return errors.Is(err, ErrTooShort)
}

func tooShort(have, want int) error {
	return fmt.Errorf("%w: have %d elements, want at least %d", ErrTooShort, have, want)
}
