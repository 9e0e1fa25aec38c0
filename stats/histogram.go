package stats

// NumBuckets is the number of histogram buckets.
const NumBuckets = 9

// BucketLabels are the display labels for the histogram buckets, aligned
// with bucketBounds.
var BucketLabels = [NumBuckets]string{
	" <1 ", "  1 ", "  2 ", "  4 ", "  8 ", " 16 ", " 32 ", " 64 ", "128+",
}

type bucketBound struct {
	lower uint64 // inclusive, microseconds
	upper uint64 // exclusive, microseconds; 0 marks the open-ended bucket
}

// bucketBounds is the log2-like microsecond scale the histogram buckets
// cover. Classification walks this table rather than branching so the
// boundaries stay a single swappable data structure.
var bucketBounds = [NumBuckets]bucketBound{
	{0, 1},
	{1, 2},
	{2, 4},
	{4, 8},
	{8, 16},
	{16, 32},
	{32, 64},
	{64, 128},
	{128, 0},
}

// Histogram is a fixed-bucket frequency count of latency samples on a
// log2 microsecond scale. Total always equals the sum of Buckets.
type Histogram struct {
	Buckets [NumBuckets]uint32
	Total   uint32
}

// FromSamples buckets nanosecond samples by their truncated microsecond
// value. The input is read-only and may be in any order.
func FromSamples(samples []uint64) Histogram {
	var h Histogram
	for _, ns := range samples {
		h.Buckets[bucketFor(ns/1000)]++
		h.Total++
	}
	return h
}

// Fraction returns the share of samples that landed in bucket. It returns
// 0 when the histogram is empty or bucket is out of range.
func (h Histogram) Fraction(bucket int) float64 {
	if bucket < 0 || bucket >= NumBuckets || h.Total == 0 {
		return 0
	}
	return float64(h.Buckets[bucket]) / float64(h.Total)
}

// Add accumulates other into h bucket by bucket. Bucket boundaries are
// fixed, so the sum is exact.
func (h *Histogram) Add(other Histogram) {
	for i := range h.Buckets {
		h.Buckets[i] += other.Buckets[i]
	}
	h.Total += other.Total
}

func bucketFor(us uint64) int {
	for i, b := range bucketBounds {
		if us >= b.lower && (b.upper == 0 || us < b.upper) {
			return i
		}
	}
	return NumBuckets - 1
}
