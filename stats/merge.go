package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MergeStrategy combines already-reduced per-run Results into one overall
// Result, without access to the underlying raw samples.
type MergeStrategy interface {
	Merge(results []Result) Result
}

// Merge combines per-run Results using the default UnweightedMerge
// strategy.
func Merge(results []Result) Result {
	return UnweightedMerge{}.Merge(results)
}

// UnweightedMerge averages per-run summary fields without weighting by
// sample count. Min, Max and Count are exact; Mean is exact only when all
// runs have equal counts; StdDev (quadratic mean of per-run deviations),
// TrimmedMean, P50 and P99 are approximations whenever per-run counts or
// distributions differ.
type UnweightedMerge struct{}

func (UnweightedMerge) Merge(results []Result) Result {
	if len(results) == 0 {
		return Result{}
	}

	out := Result{Min: math.MaxUint64}
	var mean, trimmed, sqDev, p50, p99 float64
	for _, r := range results {
		mean += r.Mean
		trimmed += r.TrimmedMean
		sqDev += r.StdDev * r.StdDev
		p50 += float64(r.P50)
		p99 += float64(r.P99)
		if r.Min < out.Min {
			out.Min = r.Min
		}
		if r.Max > out.Max {
			out.Max = r.Max
		}
		out.Count += r.Count
	}

	n := float64(len(results))
	out.Mean = mean / n
	out.TrimmedMean = trimmed / n
	out.StdDev = math.Sqrt(sqDev / n)
	out.P50 = uint64(p50 / n)
	out.P99 = uint64(p99 / n)
	return out
}

// CountWeightedMerge pools per-run means and variances weighted by sample
// count, which is exact for Mean and StdDev even when runs differ in
// size. TrimmedMean, P50 and P99 become count-weighted averages and stay
// approximations. Runs with zero samples contribute nothing.
type CountWeightedMerge struct{}

func (CountWeightedMerge) Merge(results []Result) Result {
	if len(results) == 0 {
		return Result{}
	}

	out := Result{Min: math.MaxUint64}
	means := make([]float64, 0, len(results))
	trimmed := make([]float64, 0, len(results))
	p50s := make([]float64, 0, len(results))
	p99s := make([]float64, 0, len(results))
	weights := make([]float64, 0, len(results))
	for _, r := range results {
		out.Count += r.Count
		if r.Count == 0 {
			continue
		}
		if r.Min < out.Min {
			out.Min = r.Min
		}
		if r.Max > out.Max {
			out.Max = r.Max
		}
		means = append(means, r.Mean)
		trimmed = append(trimmed, r.TrimmedMean)
		p50s = append(p50s, float64(r.P50))
		p99s = append(p99s, float64(r.P99))
		weights = append(weights, float64(r.Count))
	}
	if out.Count == 0 {
		return Result{}
	}

	out.Mean = stat.Mean(means, weights)
	out.TrimmedMean = stat.Mean(trimmed, weights)
	out.P50 = uint64(stat.Mean(p50s, weights))
	out.P99 = uint64(stat.Mean(p99s, weights))
	out.StdDev = pooledStdDev(results, out.Mean, out.Count)
	return out
}

// pooledStdDev recovers the Bessel-corrected standard deviation of the
// pooled samples from per-run summaries: the total squared deviation is
// the sum of each run's internal spread, (n_i - 1) * s_i^2, plus its
// shift from the pooled mean, n_i * (m_i - m)^2.
func pooledStdDev(results []Result, pooledMean float64, totalCount int) float64 {
	if totalCount < 2 {
		return 0
	}
	var sqDev float64
	for _, r := range results {
		if r.Count == 0 {
			continue
		}
		n := float64(r.Count)
		shift := r.Mean - pooledMean
		sqDev += (n-1)*r.StdDev*r.StdDev + n*shift*shift
	}
	return math.Sqrt(sqDev / float64(totalCount-1))
}
