// Package benchmark drives a measured operation across concurrent
// workers and reduces the timings each worker gathers privately.
package benchmark

import (
	"fmt"
	"sync"
	"time"

	"github.com/kcz17/latbench/collector"
	"github.com/kcz17/latbench/stats"
)

// Operation is a single measured unit of work.
type Operation func() error

type Options struct {
	Workers    int // concurrent workers, each timing into a private buffer
	Iterations int // measured iterations per worker
	Warmup     int // untimed iterations per worker before measurement
}

// Summary is the outcome of one run: the merged overall view plus the
// per-worker results it was merged from.
type Summary struct {
	Overall   stats.Result
	PerWorker []stats.Result
	Hist      stats.Histogram
	Elapsed   time.Duration
}

type Runner struct {
	opts Options
}

func NewRunner(opts Options) (*Runner, error) {
	if opts.Workers < 1 {
		return nil, fmt.Errorf("expected Workers >= 1; got %d", opts.Workers)
	}
	if opts.Iterations < 1 {
		return nil, fmt.Errorf("expected Iterations >= 1; got %d", opts.Iterations)
	}
	if opts.Warmup < 0 {
		return nil, fmt.Errorf("expected Warmup >= 0; got %d", opts.Warmup)
	}
	return &Runner{opts: opts}, nil
}

// Run executes op across the configured workers. Each worker times its
// iterations into a private collector; only the reduced per-worker
// results cross goroutines, so the run needs no locking beyond the
// final join.
func (r *Runner) Run(op Operation) (Summary, error) {
	start := time.Now()

	type outcome struct {
		result stats.Result
		hist   stats.Histogram
		err    error
	}
	outcomes := make([]outcome, r.opts.Workers)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			c := collector.NewArrayCollector()
			for i := 0; i < r.opts.Warmup; i++ {
				if err := op(); err != nil {
					outcomes[w].err = fmt.Errorf("worker %d warmup iteration %d: %w", w, i, err)
					return
				}
			}
			for i := 0; i < r.opts.Iterations; i++ {
				opStart := time.Now()
				if err := op(); err != nil {
					outcomes[w].err = fmt.Errorf("worker %d iteration %d: %w", w, i, err)
					return
				}
				c.Add(time.Since(opStart))
			}

			samples := c.TakeSamples()
			outcomes[w].hist = stats.FromSamples(samples)
			outcomes[w].result = stats.Compute(samples)
		}(w)
	}
	wg.Wait()

	summary := Summary{
		PerWorker: make([]stats.Result, 0, r.opts.Workers),
		Elapsed:   time.Since(start),
	}
	for _, o := range outcomes {
		if o.err != nil {
			return Summary{}, o.err
		}
		summary.PerWorker = append(summary.PerWorker, o.result)
		summary.Hist.Add(o.hist)
	}
	summary.Overall = stats.Merge(summary.PerWorker)
	return summary, nil
}
