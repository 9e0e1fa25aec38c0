// Package logging ships benchmark results to a configurable sink.
package logging

import "github.com/kcz17/latbench/stats"

type Logger interface {
	LogTrialResult(trial int, r stats.Result) // Takes one trial's summary statistics in nanoseconds.
	LogOverallResult(r stats.Result)          // Takes the merged view across all trials.
	LogHistogram(h stats.Histogram)
}

// noopLogger does not perform any logging.
type noopLogger struct{}

func NewNoopLogger() *noopLogger {
	return &noopLogger{}
}

func (*noopLogger) LogTrialResult(int, stats.Result) {
	return
}

func (*noopLogger) LogOverallResult(stats.Result) {
	return
}

func (*noopLogger) LogHistogram(stats.Histogram) {
	return
}
