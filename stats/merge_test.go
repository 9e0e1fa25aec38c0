package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_EmptyInputReturnsZeroResult(t *testing.T) {
	assert.Equal(t, Result{}, Merge([]Result{}))
	assert.Equal(t, Result{}, Merge(nil))
}

func TestMerge_MinMaxCountAreExact(t *testing.T) {
	results := []Result{
		{Min: 1, Max: 100, Count: 10},
		{Min: 1, Max: 100, Count: 10},
		{Min: 2, Max: 90},
	}
	merged := Merge(results)

	assert.Equal(t, uint64(1), merged.Min)
	assert.Equal(t, uint64(100), merged.Max)
	assert.Equal(t, 20, merged.Count)
}

func TestMerge_AveragesMeansAndPercentiles(t *testing.T) {
	results := []Result{
		{Mean: 10, TrimmedMean: 8, P50: 10, P99: 10, Count: 5},
		{Mean: 20, TrimmedMean: 12, P50: 20, P99: 21, Count: 5},
	}
	merged := Merge(results)

	assert.Equal(t, 15.0, merged.Mean)
	assert.Equal(t, 10.0, merged.TrimmedMean)
	assert.Equal(t, uint64(15), merged.P50)
	// (10 + 21) / 2 truncates toward zero.
	assert.Equal(t, uint64(15), merged.P99)
}

func TestMerge_QuadraticMeanOfStdDevs(t *testing.T) {
	results := []Result{
		{StdDev: 3, Count: 4},
		{StdDev: 4, Count: 4},
	}
	merged := Merge(results)
	assert.InDelta(t, math.Sqrt(12.5), merged.StdDev, 1e-9)
}

func TestCountWeightedMerge_WeightsMeansByCount(t *testing.T) {
	results := []Result{
		{Mean: 10, TrimmedMean: 10, Count: 1},
		{Mean: 20, TrimmedMean: 20, Count: 3},
	}
	merged := CountWeightedMerge{}.Merge(results)

	assert.InDelta(t, 17.5, merged.Mean, 1e-9)
	assert.InDelta(t, 17.5, merged.TrimmedMean, 1e-9)
	assert.Equal(t, 4, merged.Count)

	// The unweighted default ignores the count imbalance.
	assert.InDelta(t, 15.0, Merge(results).Mean, 1e-9)
}

func TestCountWeightedMerge_MatchesPooledComputation(t *testing.T) {
	a := []uint64{1, 2, 3}
	b := []uint64{4, 5, 6, 7}
	pooled := ComputeCopy(append(append([]uint64{}, a...), b...))

	merged := CountWeightedMerge{}.Merge([]Result{Compute(a), Compute(b)})

	assert.InDelta(t, pooled.Mean, merged.Mean, 1e-9)
	assert.InDelta(t, pooled.StdDev, merged.StdDev, 1e-9)
	assert.Equal(t, pooled.Count, merged.Count)
	assert.Equal(t, pooled.Min, merged.Min)
	assert.Equal(t, pooled.Max, merged.Max)
}

func TestCountWeightedMerge_EmptyRunsDoNotSkewMinMax(t *testing.T) {
	// A worker that recorded nothing carries zero-valued Min/Max; those
	// must not drag the merged bounds down to 0.
	merged := CountWeightedMerge{}.Merge([]Result{
		{},
		{Mean: 7, TrimmedMean: 7, Min: 5, Max: 9, P50: 7, P99: 9, Count: 3},
	})

	assert.Equal(t, uint64(5), merged.Min)
	assert.Equal(t, uint64(9), merged.Max)
	assert.Equal(t, 3, merged.Count)
}

func TestCountWeightedMerge_AllEmptyRunsReturnZeroResult(t *testing.T) {
	merged := CountWeightedMerge{}.Merge([]Result{{}, {}})
	assert.Equal(t, Result{}, merged)
}

func TestMergeStrategies_SatisfyInterface(t *testing.T) {
	for _, strategy := range []MergeStrategy{UnweightedMerge{}, CountWeightedMerge{}} {
		assert.Equal(t, Result{}, strategy.Merge(nil))
	}
}
