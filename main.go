package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kcz17/latbench/benchmark"
	"github.com/kcz17/latbench/config"
	"github.com/kcz17/latbench/logging"
	"github.com/kcz17/latbench/report"
	"github.com/kcz17/latbench/serving"
	"github.com/kcz17/latbench/stats"
	"github.com/kcz17/latbench/workload"
)

func main() {
	conf := config.ReadConfig()

	var logger logging.Logger
	if *conf.Logging.Driver == "noop" {
		logger = logging.NewNoopLogger()
	} else if *conf.Logging.Driver == "stdout" {
		logger = logging.NewStdoutLogger()
	} else if *conf.Logging.Driver == "influxdb" {
		logger = logging.NewInfluxDBLogger(
			*conf.Logging.InfluxDB.Host,
			*conf.Logging.InfluxDB.Token,
			*conf.Logging.InfluxDB.Org,
			*conf.Logging.InfluxDB.Bucket,
		)
	} else {
		log.Fatalf("expected logging.driver one of {noop, stdout, influxdb}; got %s", *conf.Logging.Driver)
	}

	// Workload bounds are configured in microseconds; the generator and
	// the stats core both work in nanoseconds.
	gen := workload.NewGenerator(
		*conf.Workload.MinMicros*1000,
		*conf.Workload.MaxMicros*1000,
		*conf.Workload.MeanMicros*1000,
		*conf.Workload.StdDevMicros*1000,
		uint64(time.Now().UTC().UnixNano()),
	)

	runner, err := benchmark.NewRunner(benchmark.Options{
		Workers:    *conf.Benchmark.Workers,
		Iterations: *conf.Benchmark.Iterations,
		Warmup:     *conf.Benchmark.Warmup,
	})
	if err != nil {
		log.Fatalf("expected benchmark.NewRunner() returns nil err; got err = %v", err)
	}

	var api *serving.APIServer
	if *conf.API.Enabled {
		api = serving.NewAPIServer()
		go func() {
			if err := api.ListenAndServe(fmt.Sprintf(":%d", *conf.API.Port)); err != nil {
				log.Fatalf("error serving stats API: %v", err)
			}
		}()
	}

	trials := *conf.Benchmark.Trials
	op := gen.Operation()
	trialResults := make([]stats.Result, 0, trials)
	var hist stats.Histogram
	for trial := 1; trial <= trials; trial++ {
		summary, err := runner.Run(op)
		if err != nil {
			log.Fatalf("benchmark trial %d failed: %v", trial, err)
		}

		logger.LogTrialResult(trial, summary.Overall)
		trialResults = append(trialResults, summary.Overall)
		hist.Add(summary.Hist)
		if api != nil {
			api.Publish(stats.Merge(trialResults), hist)
		}
	}

	overall := stats.Merge(trialResults)
	logger.LogOverallResult(overall)
	logger.LogHistogram(hist)

	fmt.Printf("latbench: %d trials complete\n", trials)
	report.WriteResult(os.Stdout, overall)
	report.WriteHistogram(os.Stdout, hist)

	if conf.Report.HistogramPNG != nil && *conf.Report.HistogramPNG != "" {
		if err := report.SaveHistogramPNG(hist, *conf.Report.HistogramPNG); err != nil {
			log.Printf("could not save histogram plot: %v", err)
		}
	}
}
