// Package report renders benchmark statistics and histograms for the
// terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kcz17/latbench/benchmark"
	"github.com/kcz17/latbench/stats"
)

const histogramBarWidth = 40

// FormatNanos renders a nanosecond duration in the most readable unit.
func FormatNanos(ns uint64) string {
	if ns < 1000 {
		return fmt.Sprintf("%d ns", ns)
	}
	if ns < 1000000 {
		return fmt.Sprintf("%.1f us", float64(ns)/1000.0)
	}
	return fmt.Sprintf("%.2f ms", float64(ns)/1000000.0)
}

// WriteResult writes a table of one Result's summary statistics.
func WriteResult(w io.Writer, r stats.Result) {
	fmt.Fprintf(w, "samples:      %d\n", r.Count)
	fmt.Fprintf(w, "mean:         %s\n", FormatNanos(uint64(r.Mean)))
	fmt.Fprintf(w, "trimmed mean: %s\n", FormatNanos(uint64(r.TrimmedMean)))
	fmt.Fprintf(w, "stddev:       %s\n", FormatNanos(uint64(r.StdDev)))
	fmt.Fprintf(w, "min / p50 / p99 / max: %s / %s / %s / %s\n",
		FormatNanos(r.Min), FormatNanos(r.P50), FormatNanos(r.P99), FormatNanos(r.Max))
	fmt.Fprintf(w, "ops/sec:      %.0f\n", r.OpsPerSec())
}

// WriteSummary writes one run's overall statistics together with the
// worker count and wall time.
func WriteSummary(w io.Writer, s benchmark.Summary) {
	fmt.Fprintf(w, "workers:      %d (%.2fs elapsed)\n", len(s.PerWorker), s.Elapsed.Seconds())
	WriteResult(w, s.Overall)
}

// WriteHistogram writes one row per bucket: its microsecond label, count
// and a bar proportional to the bucket's share of samples.
func WriteHistogram(w io.Writer, h stats.Histogram) {
	fmt.Fprintln(w, "latency histogram (us):")
	for i := 0; i < stats.NumBuckets; i++ {
		fraction := h.Fraction(i)
		bar := strings.Repeat("#", int(fraction*histogramBarWidth+0.5))
		fmt.Fprintf(w, "%s |%-*s| %6.2f%% (%d)\n",
			stats.BucketLabels[i], histogramBarWidth, bar, fraction*100, h.Buckets[i])
	}
}
