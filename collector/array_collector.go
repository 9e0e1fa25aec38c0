package collector

import (
	"sync"
	"time"

	"github.com/kcz17/latbench/stats"
)

// arrayCollector uses a slice to capture all recorded timings. As storage
// and computation are both O(n), this has been designed for bounded
// benchmark trials rather than long-lived monitoring.
type arrayCollector struct {
	samplesNanos    []uint64
	samplesNanosMux *sync.Mutex
}

func NewArrayCollector() *arrayCollector {
	return &arrayCollector{
		samplesNanos:    []uint64{},
		samplesNanosMux: &sync.Mutex{},
	}
}

func (c *arrayCollector) Add(t time.Duration) {
	// A clock step backwards surfaces as a negative duration; clamp it so
	// the unsigned sample cannot wrap.
	if t < 0 {
		t = 0
	}
	c.samplesNanosMux.Lock()
	c.samplesNanos = append(c.samplesNanos, uint64(t.Nanoseconds()))
	c.samplesNanosMux.Unlock()
}

func (c *arrayCollector) Len() int {
	c.samplesNanosMux.Lock()
	defer c.samplesNanosMux.Unlock()
	return len(c.samplesNanos)
}

// TakeSamples hands ownership of the accumulated nanosecond samples to
// the caller and resets the collector. Callers are free to let
// stats.Compute sort the returned slice in place.
func (c *arrayCollector) TakeSamples() []uint64 {
	c.samplesNanosMux.Lock()
	defer c.samplesNanosMux.Unlock()
	samples := c.samplesNanos
	c.samplesNanos = []uint64{}
	return samples
}

// Aggregate computes on a private copy so the recorded samples keep their
// insertion order for a later TakeSamples.
func (c *arrayCollector) Aggregate() stats.Result {
	c.samplesNanosMux.Lock()
	defer c.samplesNanosMux.Unlock()
	return stats.ComputeCopy(c.samplesNanos)
}

// Histogram buckets the recorded samples without consuming them.
func (c *arrayCollector) Histogram() stats.Histogram {
	c.samplesNanosMux.Lock()
	defer c.samplesNanosMux.Unlock()
	return stats.FromSamples(c.samplesNanos)
}

func (c *arrayCollector) Reset() {
	c.samplesNanosMux.Lock()
	c.samplesNanos = []uint64{}
	c.samplesNanosMux.Unlock()
}
