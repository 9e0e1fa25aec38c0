// Package serving exposes the latest benchmark statistics over HTTP for
// live monitors to poll.
package serving

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jackwhelpton/fasthttp-routing/v2"
	"github.com/valyala/fasthttp"

	"github.com/kcz17/latbench/stats"
)

type APIServer struct {
	mux    sync.RWMutex
	result stats.Result
	hist   stats.Histogram
}

func NewAPIServer() *APIServer {
	return &APIServer{}
}

// Publish replaces the served result and histogram.
func (s *APIServer) Publish(r stats.Result, h stats.Histogram) {
	s.mux.Lock()
	s.result = r
	s.hist = h
	s.mux.Unlock()
}

func (s *APIServer) ListenAndServe(addr string) error {
	router := routing.New()

	router.Get("/stats", s.getStatsHandler())
	router.Get("/histogram", s.getHistogramHandler())

	return fasthttp.ListenAndServe(addr, router.HandleRequest)
}

func (s *APIServer) getStatsHandler() routing.Handler {
	return func(c *routing.Context) error {
		s.mux.RLock()
		r := s.result
		s.mux.RUnlock()

		response := &struct {
			Mean        float64
			TrimmedMean float64
			StdDev      float64
			Min         uint64
			Max         uint64
			P50         uint64
			P99         uint64
			Count       int
			OpsPerSec   float64
		}{
			Mean:        r.Mean,
			TrimmedMean: r.TrimmedMean,
			StdDev:      r.StdDev,
			Min:         r.Min,
			Max:         r.Max,
			P50:         r.P50,
			P99:         r.P99,
			Count:       r.Count,
			OpsPerSec:   r.OpsPerSec(),
		}

		b, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("could not marshal stats: err = %w", err)
		}
		return c.Write(b)
	}
}

func (s *APIServer) getHistogramHandler() routing.Handler {
	return func(c *routing.Context) error {
		s.mux.RLock()
		h := s.hist
		s.mux.RUnlock()

		fractions := make([]float64, stats.NumBuckets)
		for i := range fractions {
			fractions[i] = h.Fraction(i)
		}
		response := &struct {
			Labels    []string
			Buckets   []uint32
			Fractions []float64
			Total     uint32
		}{
			Labels:    stats.BucketLabels[:],
			Buckets:   h.Buckets[:],
			Fractions: fractions,
			Total:     h.Total,
		}

		b, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("could not marshal histogram: err = %w", err)
		}
		return c.Write(b)
	}
}
