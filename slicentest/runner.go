// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicentest

import (
	"context"
	"iter"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"go.uber.org/zap"
)

// Failure is a raw input whose pair failed [CheckPair].
type Failure struct {
	Input []byte
	Err   error
}

// Report summarizes a [Runner.Run].
type Report struct {
	Inputs   int64     // Raw inputs consumed
	Checked  int64     // Pairs where both views were built
	Short    int64     // Pairs where construction correctly returned no view
	Failed   int64     // Pairs with at least one violated property
	Failures []Failure // Recorded failures, at most MaxFailures when set
}

// OK reports whether no input failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Runner checks many raw inputs in parallel.
//
// The goroutine calling Run passes each raw input, uncopied, through a
// bounded lock-free ring to the workers, which run [SplitInput] and
// [CheckPair] on it. Create with [New].
type Runner struct {
	opts Options
}

// Run checks every input produced by inputs and returns the totals.
//
// Run returns ctx.Err() if ctx is canceled before all inputs are checked;
// the report then covers the inputs checked so far. inputs is consumed on
// the calling goroutine.
func (r *Runner) Run(ctx context.Context, inputs iter.Seq[[]byte]) (Report, error) {
	q := newRing[[]byte](r.opts.capacity)

	var (
		inputsN, checked, short, failed atomix.Int64
		mu                              sync.Mutex
		failures                        []Failure
		wg                              sync.WaitGroup
	)

	record := func(worker int, data []byte) {
		a, b := SplitInput(data)
		outcome, err := r.opts.check(a, b)
		if err == nil {
			if outcome == Short {
				short.Add(1)
			} else {
				checked.Add(1)
			}
			return
		}
		failed.Add(1)
		r.opts.logger.Warn("property violated",
			zap.Int("worker", worker),
			zap.Int("len_a", len(a)),
			zap.Int("len_b", len(b)),
			zap.Error(err))
		mu.Lock()
		if r.opts.maxFails <= 0 || len(failures) < r.opts.maxFails {
			failures = append(failures, Failure{Input: data, Err: err})
		}
		mu.Unlock()
	}

	for w := range r.opts.workers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for ctx.Err() == nil {
				data, err := q.Dequeue()
				if err == nil {
					backoff.Reset()
					record(id, data)
					continue
				}
				if !iox.IsWouldBlock(err) {
					return // closed and drained
				}
				backoff.Wait()
			}
		}(w)
	}

	r.opts.logger.Debug("run started",
		zap.Int("workers", r.opts.workers),
		zap.Int("capacity", q.Cap()))

	feed(ctx, q, inputs, &inputsN)
	wg.Wait()

	report := Report{
		Inputs:   inputsN.Load(),
		Checked:  checked.Load(),
		Short:    short.Load(),
		Failed:   failed.Load(),
		Failures: failures,
	}
	r.opts.logger.Debug("run finished",
		zap.Int64("inputs", report.Inputs),
		zap.Int64("checked", report.Checked),
		zap.Int64("short", report.Short),
		zap.Int64("failed", report.Failed))

	return report, ctx.Err()
}

// feed enqueues inputs until exhausted or ctx is canceled, then closes q.
func feed(ctx context.Context, q *ring[[]byte], inputs iter.Seq[[]byte], n *atomix.Int64) {
	defer q.Close()
	backoff := iox.Backoff{}
	for data := range inputs {
		for {
			if ctx.Err() != nil {
				return
			}
			err := q.Enqueue(&data)
			if err == nil {
				break
			}
			if !iox.IsWouldBlock(err) {
				return
			}
			backoff.Wait()
		}
		backoff.Reset()
		n.Add(1)
	}
}
