// Package bench times a function over repeated sequential calls.
//
// Iterations never overlap. A wall-clock Budget cuts the loop short once the
// elapsed time exceeds it; the function being measured is never interrupted.
package bench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/on-the-ground/memo_ive_go/shared/orderedbuffer"
)

var ErrNoIterations = errors.New("no iterations completed")

const (
	DefaultIterations = 1000
	DefaultSlowest    = 5
)

type Options struct {
	Iterations int           // default: 1000
	Warmup     int           // untimed calls before measuring
	Budget     time.Duration // <= 0 means no budget
	Slowest    int           // number of slowest samples kept, default: 5
}

func NewOptions(iterations, warmup int, budget time.Duration, slowest int) Options {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if warmup < 0 {
		warmup = 0
	}
	if slowest <= 0 {
		slowest = DefaultSlowest
	}
	return Options{
		Iterations: iterations,
		Warmup:     warmup,
		Budget:     budget,
		Slowest:    slowest,
	}
}

type Result struct {
	Name       string
	Iterations int
	Total      time.Duration
	Mean       time.Duration
	Min        time.Duration
	Max        time.Duration
	Median     time.Duration
	P95        time.Duration
	Slowest    []time.Duration // slowest first
	Truncated  bool            // stopped by the budget or the context
}

// Run calls fn up to opts.Iterations times and summarizes the timings.
// The first error returned by fn stops the run and is returned wrapped.
func Run(ctx context.Context, name string, fn func() error, opts Options) (Result, error) {
	opts = NewOptions(opts.Iterations, opts.Warmup, opts.Budget, opts.Slowest)
	res := Result{Name: name}

	for i := 0; i < opts.Warmup; i++ {
		if err := fn(); err != nil {
			return res, fmt.Errorf("%s: warmup %d: %w", name, i, err)
		}
	}

	samples := make([]time.Duration, 0, opts.Iterations)
	slowest := orderedbuffer.NewOrderedBoundedBuffer(opts.Slowest, func(a, b time.Duration) int {
		return int(a - b)
	})

	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		if ctx.Err() != nil || (opts.Budget > 0 && time.Since(start) > opts.Budget) {
			res.Truncated = true
			break
		}
		t0 := time.Now()
		err := fn()
		elapsed := time.Since(t0)
		if err != nil {
			return res, fmt.Errorf("%s: iteration %d: %w", name, i, err)
		}
		samples = append(samples, elapsed)
		_, _ = slowest.Insert(elapsed)
	}

	if len(samples) == 0 {
		return res, fmt.Errorf("%s: %w", name, ErrNoIterations)
	}

	res.Iterations = len(samples)
	for _, s := range samples {
		res.Total += s
	}
	res.Mean = res.Total / time.Duration(len(samples))

	slices.Sort(samples)
	res.Min = samples[0]
	res.Max = samples[len(samples)-1]
	res.Median = percentile(samples, 50)
	res.P95 = percentile(samples, 95)

	res.Slowest = slowest.Items()
	slices.Reverse(res.Slowest)
	return res, nil
}

// percentile uses the nearest-rank method on sorted samples.
func percentile(sorted []time.Duration, p int) time.Duration {
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// Speedup returns how many times faster candidate is than baseline by mean.
func Speedup(baseline, candidate Result) float64 {
	if candidate.Mean == 0 {
		return 0
	}
	return float64(baseline.Mean) / float64(candidate.Mean)
}

func (r Result) OpsPerSecond() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Iterations) / r.Total.Seconds()
}

func (r Result) String() string {
	s := fmt.Sprintf("%s: %s iterations, mean %s, median %s, p95 %s, %s ops/s",
		r.Name,
		humanize.Comma(int64(r.Iterations)),
		r.Mean, r.Median, r.P95,
		humanize.CommafWithDigits(r.OpsPerSecond(), 1),
	)
	if r.Truncated {
		s += " (truncated)"
	}
	return s
}
