// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command slicencheck runs the slicentest property checks over random
// buffers and corpus files.
//
// Usage:
//
//	slicencheck [-n 100000] [-seed 1] [-max-len 64] [-workers 0] [-corpus dir] [-v]
//
// Each input is split into two buffers with slicentest.SplitInput. Corpus
// files are read whole, one input per file, and checked before the random
// inputs. The exit status is 1 if any property fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"code.hybscloud.com/slicen/slicentest"
)

func main() {
	var (
		n        = flag.Int("n", 100000, "Number of random inputs")
		seed     = flag.Uint64("seed", 1, "Random seed")
		maxLen   = flag.Int("max-len", 64, "Maximum random input length in bytes")
		workers  = flag.Int("workers", 0, "Checking workers (0 = GOMAXPROCS)")
		corpus   = flag.String("corpus", "", "Directory of corpus files (optional)")
		maxFails = flag.Int("max-failures", 10, "Failing inputs to report (0 = all)")
		verbose  = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	if *n < 0 || *maxLen < 0 {
		fmt.Fprintln(os.Stderr, "Usage: slicencheck [-n count] [-seed s] [-max-len bytes] [-workers w] [-corpus dir] [-v]")
		os.Exit(2)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ok, err := run(log, *n, *seed, *maxLen, *workers, *maxFails, *corpus)
	if err != nil {
		log.Error("run failed", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil || !ok {
		os.Exit(1)
	}
}

func run(log *zap.Logger, n int, seed uint64, maxLen, workers, maxFails int, corpusDir string) (bool, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var files []string
	if corpusDir != "" {
		var err error
		files, err = filepath.Glob(filepath.Join(corpusDir, "*"))
		if err != nil {
			return false, fmt.Errorf("corpus: %w", err)
		}
	}

	r := slicentest.New(workers).MaxFailures(maxFails).Logger(log).Build()
	report, err := r.Run(ctx, inputs(log, files, n, seed, maxLen))

	log.Info("check finished",
		zap.Int64("inputs", report.Inputs),
		zap.Int64("checked", report.Checked),
		zap.Int64("short", report.Short),
		zap.Int64("failed", report.Failed))
	for _, f := range report.Failures {
		log.Error("failing input", zap.Binary("input", f.Input), zap.Error(f.Err))
	}
	if err != nil {
		return false, err
	}
	return report.OK(), nil
}

// inputs yields the corpus files followed by n random buffers.
func inputs(log *zap.Logger, files []string, n int, seed uint64, maxLen int) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, name := range files {
			data, err := os.ReadFile(name)
			if err != nil {
				log.Warn("skip corpus file", zap.String("file", name), zap.Error(err))
				continue
			}
			if !yield(data) {
				return
			}
		}

		rng := rand.New(rand.NewPCG(seed, seed+1))
		for range n {
			data := make([]byte, rng.IntN(maxLen+1))
			for i := range data {
				data[i] = byte(rng.Uint32())
			}
			if !yield(data) {
				return
			}
		}
	}
}

// newLogger returns a colored console logger when stderr is a terminal and a
// JSON logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if term.IsTerminal(int(os.Stderr.Fd())) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
