// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slicentest checks [slicen] views against plain slice semantics.
//
// The checks take pairs of arbitrary byte buffers. For each pair the
// package attempts to build a non-empty view over both; when a buffer is
// empty, construction must return no view and nothing else is checked.
// Otherwise every property below must hold:
//
//   - the view starts at the buffer's address and has its length
//   - unchecked, raw-pointer and uninitialized-storage views agree with the
//     checked one
//   - First, Last, SplitFirst and SplitLast match indexing the buffer
//   - ==, <, <=, >, >= and three-way comparison match [bytes.Compare]
//   - hashing and formatting match the plain slice
//
// # Single Pairs
//
//	if err := slicentest.CheckPair(a, b); err != nil {
//	    t.Fatal(err)
//	}
//
// Native fuzzing derives both buffers from one input with [SplitInput]:
//
//	func FuzzSlice1(f *testing.F) {
//	    f.Fuzz(func(t *testing.T, data []byte) {
//	        if err := slicentest.CheckPair(slicentest.SplitInput(data)); err != nil {
//	            t.Fatal(err)
//	        }
//	    })
//	}
//
// # Corpora
//
// [Runner] checks a corpus in parallel and reports totals:
//
//	r := slicentest.New(0).Logger(log).Build()
//	report, err := r.Run(ctx, slices.Values(corpus))
//	if !report.OK() {
//	    for _, f := range report.Failures {
//	        log.Error("failing input", zap.Binary("input", f.Input), zap.Error(f.Err))
//	    }
//	}
//
// Views are plain values, so the workers share nothing but the raw inputs.
//
// # Dependencies
//
// The runner's ring uses [code.hybscloud.com/atomix] for ordered atomics and
// [code.hybscloud.com/spin] under CAS contention; full and empty conditions
// are [code.hybscloud.com/iox] semantic errors retried with iox.Backoff.
// Failures are logged through [go.uber.org/zap].
package slicentest
