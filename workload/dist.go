// Package workload synthesizes operation latencies with a known shape,
// for demo runs and tests of the statistics pipeline.
package workload

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator draws latencies from a normal distribution truncated to
// [lo, hi] nanoseconds. It is safe for use from concurrent workers.
type Generator struct {
	mux  sync.Mutex
	norm distuv.Normal
	uni  distuv.Uniform
}

func NewGenerator(lo, hi, mean, stddev float64, seed uint64) *Generator {
	norm := distuv.Normal{
		Mu:    mean,
		Sigma: stddev,
		Src:   rand.NewSource(seed),
	}

	// Use an inverse transform method to sample from the truncated
	// distribution: drawing uniformly between the CDF values of the
	// bounds keeps every sample inside [lo, hi].
	// Reference: https://www.r-bloggers.com/2020/08/generating-data-from-a-truncated-distribution/
	uni := distuv.Uniform{
		Min: norm.CDF(lo),
		Max: norm.CDF(hi),
		Src: rand.NewSource(seed),
	}

	return &Generator{norm: norm, uni: uni}
}

// Sample draws one latency.
func (g *Generator) Sample() time.Duration {
	g.mux.Lock()
	u := g.uni.Rand()
	g.mux.Unlock()
	return time.Duration(g.norm.Quantile(u))
}

// Operation returns a benchmark operation that sleeps for a sampled
// latency, standing in for real work.
func (g *Generator) Operation() func() error {
	return func() error {
		time.Sleep(g.Sample())
		return nil
	}
}
