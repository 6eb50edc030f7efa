// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicentest

import (
	"runtime"

	"go.uber.org/zap"
)

// Options configures a [Runner].
type Options struct {
	workers  int
	capacity int // Ring capacity (rounds up to next power of 2)
	maxFails int // Stop recording failures after this many; 0 means no limit
	logger   *zap.Logger
	check    func(a, b []byte) (Outcome, error) // checkPair outside tests
}

// Builder creates runners with fluent configuration.
//
// Example:
//
//	r := slicentest.New(8).Capacity(4096).Logger(log).Build()
//	report, err := r.Run(ctx, slices.Values(corpus))
type Builder struct {
	opts Options
}

// New creates a runner builder with the given number of checking workers.
// workers <= 0 selects runtime.GOMAXPROCS(0).
//
// The default ring capacity is 1024 and the default logger is a no-op.
func New(workers int) *Builder {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Builder{opts: Options{
		workers:  workers,
		capacity: 1024,
		logger:   zap.NewNop(),
		check:    checkPair,
	}}
}

// Capacity sets the number of inputs buffered between the feeder and the
// workers. Panics if capacity < 2.
func (b *Builder) Capacity(capacity int) *Builder {
	if capacity < 2 {
		panic("slicentest: capacity must be >= 2")
	}
	b.opts.capacity = capacity
	return b
}

// MaxFailures limits how many failing inputs are kept in the [Report].
// Failures past the limit are still counted.
func (b *Builder) MaxFailures(n int) *Builder {
	b.opts.maxFails = n
	return b
}

// Logger sets the logger that receives one entry per failing input.
// A nil logger restores the no-op default.
func (b *Builder) Logger(l *zap.Logger) *Builder {
	if l == nil {
		l = zap.NewNop()
	}
	b.opts.logger = l
	return b
}

// Build creates the [Runner].
func (b *Builder) Build() *Runner {
	return &Runner{opts: b.opts}
}
