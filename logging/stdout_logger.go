package logging

import (
	"log"

	"github.com/kcz17/latbench/stats"
)

// stdoutLogger logs the output to standard output.
type stdoutLogger struct{}

func NewStdoutLogger() *stdoutLogger {
	return &stdoutLogger{}
}

func (*stdoutLogger) LogTrialResult(trial int, r stats.Result) {
	log.Printf("trial %d: count: %d, mean: %.0fns, trimmed mean: %.0fns, stddev: %.0fns, p50: %dns, p99: %dns, ops/sec: %.0f\n",
		trial, r.Count, r.Mean, r.TrimmedMean, r.StdDev, r.P50, r.P99, r.OpsPerSec())
}

func (*stdoutLogger) LogOverallResult(r stats.Result) {
	log.Printf("overall: count: %d, mean: %.0fns, trimmed mean: %.0fns, stddev: %.0fns, min: %dns, p50: %dns, p99: %dns, max: %dns, ops/sec: %.0f\n",
		r.Count, r.Mean, r.TrimmedMean, r.StdDev, r.Min, r.P50, r.P99, r.Max, r.OpsPerSec())
}

func (*stdoutLogger) LogHistogram(h stats.Histogram) {
	for i := 0; i < stats.NumBuckets; i++ {
		log.Printf("bucket %s: %d (%.2f%%)\n", stats.BucketLabels[i], h.Buckets[i], h.Fraction(i)*100)
	}
}
