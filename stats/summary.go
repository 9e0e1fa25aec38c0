// Package stats reduces raw benchmark latency samples into summary
// statistics and coarse histograms, and combines summaries produced by
// independent runs.
package stats

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
)

// IQRFenceMultiplier sets the width of the outlier fence used by the
// trimmed mean: samples outside [Q1 - m*IQR, Q3 + m*IQR] are discarded.
// The conventional multiplier is 1.5; timing data carries enough benign
// tail noise that a wider fence is used instead.
const IQRFenceMultiplier = 3.0

// Result holds the summary statistics of one set of latency samples. All
// duration fields are nanoseconds. The zero Result means "no data".
type Result struct {
	Mean        float64
	TrimmedMean float64
	StdDev      float64
	Min         uint64
	Max         uint64
	P50         uint64
	P99         uint64
	Count       int
}

// Compute reduces a set of nanosecond samples to a Result. It sorts
// samples in place, so callers must not rely on the original ordering
// afterwards; use ComputeCopy to keep the input untouched. An empty input
// yields the zero Result rather than an error.
//
// Percentiles use the nearest-rank method with no interpolation: P50 is
// the element at index n/2 and P99 the element at index
// floor((n-1) * 0.99) of the sorted samples.
func Compute(samples []uint64) Result {
	if len(samples) == 0 {
		return Result{}
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	n := len(samples)

	data := make([]float64, n)
	for i, v := range samples {
		data[i] = float64(v)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		panic(fmt.Errorf("unexpected err in Compute() while calculating mean: %w", err))
	}

	// A single sample has no spread; avoid the n-1 division.
	stdDev := 0.0
	if n > 1 {
		stdDev, err = stats.StandardDeviationSample(data)
		if err != nil {
			panic(fmt.Errorf("unexpected err in Compute() while calculating stddev: %w", err))
		}
	}

	return Result{
		Mean:        mean,
		TrimmedMean: trimmedMean(samples, data, mean),
		StdDev:      stdDev,
		Min:         samples[0],
		Max:         samples[n-1],
		P50:         samples[n/2],
		P99:         samples[int(float64(n-1)*0.99)],
		Count:       n,
	}
}

// ComputeCopy is Compute over a private copy of samples, for callers that
// need the original ordering preserved.
func ComputeCopy(samples []uint64) Result {
	copied := make([]uint64, len(samples))
	copy(copied, samples)
	return Compute(copied)
}

// OpsPerSec converts the trimmed mean, interpreted as nanoseconds per
// operation, into operations per second. It returns 0 when there is no
// positive trimmed mean to convert.
func (r Result) OpsPerSec() float64 {
	if r.TrimmedMean <= 0 {
		return 0
	}
	return 1e9 / r.TrimmedMean
}

// trimmedMean is the mean of the samples inside the IQR outlier fence.
// samples must already be sorted ascending and data must be its float64
// mirror. For n < 4 the quartile indices collapse and the fence degrades
// to [Q1, Q3], which is intentional. If the fence rejects every sample,
// the untrimmed mean is returned.
func trimmedMean(samples []uint64, data []float64, mean float64) float64 {
	n := len(samples)
	q1 := float64(samples[n/4])
	q3 := float64(samples[3*n/4])
	iqr := q3 - q1

	lowerBound := q1 - IQRFenceMultiplier*iqr
	if lowerBound < 0 {
		lowerBound = 0
	}
	lower := uint64(lowerBound)
	upper := uint64(q3 + IQRFenceMultiplier*iqr)

	var kept []float64
	for i, v := range samples {
		if v >= lower && v <= upper {
			kept = append(kept, data[i])
		}
	}
	if len(kept) == 0 {
		return mean
	}

	trimmed, err := stats.Mean(kept)
	if err != nil {
		panic(fmt.Errorf("unexpected err in trimmedMean() while calculating mean: %w", err))
	}
	return trimmed
}
