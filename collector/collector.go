// Package collector accumulates per-operation latencies. The intended
// pattern is one private collector per worker or trial, with only the
// reduced results shared between goroutines.
package collector

import (
	"time"

	"github.com/kcz17/latbench/stats"
)

type Collector interface {
	Add(t time.Duration)     // Add records the elapsed time of one operation.
	Len() int                // Len gets the number of recorded samples.
	Aggregate() stats.Result // Aggregate reduces the recorded samples to summary statistics.
	Reset()                  // Reset resets the state of the collector for reuse.
}
