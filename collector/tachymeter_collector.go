package collector

import (
	"sync/atomic"
	"time"

	"github.com/jamiealquiza/tachymeter"

	"github.com/kcz17/latbench/stats"
)

// tachymeterCollector uses the jamiealquiza/tachymeter library to capture
// timings in a fixed-size window. This collector suits long-running use
// where retaining every sample is too expensive. Its aggregation is
// tachymeter's own: the average stands in for the trimmed mean and no
// standard deviation is produced, so results only approximate the array
// collector's.
type tachymeterCollector struct {
	tach  *tachymeter.Tachymeter
	count uint64
}

func NewTachymeterCollector(window int) *tachymeterCollector {
	return &tachymeterCollector{tach: tachymeter.New(&tachymeter.Config{
		Size: window,
	})}
}

func (c *tachymeterCollector) Add(t time.Duration) {
	c.tach.AddTime(t)
	atomic.AddUint64(&c.count, 1)
}

func (c *tachymeterCollector) Len() int {
	return int(atomic.LoadUint64(&c.count))
}

func (c *tachymeterCollector) Aggregate() stats.Result {
	if atomic.LoadUint64(&c.count) == 0 {
		return stats.Result{}
	}
	metrics := c.tach.Calc()
	return stats.Result{
		Mean:        float64(metrics.Time.Avg),
		TrimmedMean: float64(metrics.Time.Avg),
		Min:         uint64(metrics.Time.Min),
		Max:         uint64(metrics.Time.Max),
		P50:         uint64(metrics.Time.P50),
		P99:         uint64(metrics.Time.P99),
		Count:       metrics.Count,
	}
}

func (c *tachymeterCollector) Reset() {
	c.tach.Reset()
	atomic.StoreUint64(&c.count, 0)
}
