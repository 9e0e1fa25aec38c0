package logging

import (
	"fmt"
	"log"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kcz17/latbench/stats"
)

// influxDBLogger logs the output to an external InfluxDB instance.
type influxDBLogger struct {
	client      influxdb2.Client
	asyncWriter api.WriteAPI
}

func NewInfluxDBLogger(baseURL, authToken, org, bucket string) *influxDBLogger {
	options := influxdb2.DefaultOptions()
	options.WriteOptions().SetBatchSize(1000)
	options.WriteOptions().SetFlushInterval(250)

	client := influxdb2.NewClientWithOptions(baseURL, authToken, options)
	writeAPI := client.WriteAPI(org, bucket)

	// Create a goroutine for reading and logging async write errors.
	errorsCh := writeAPI.Errors()
	go func() {
		for err := range errorsCh {
			log.Printf("influxdb2 logging async write error: %v\n", err)
		}
	}()

	return &influxDBLogger{
		client:      client,
		asyncWriter: writeAPI,
	}
}

func (l *influxDBLogger) LogTrialResult(trial int, r stats.Result) {
	l.asyncWriter.WritePoint(resultPoint("latbench_trial", r).
		AddField("trial", trial))
}

func (l *influxDBLogger) LogOverallResult(r stats.Result) {
	l.asyncWriter.WritePoint(resultPoint("latbench_overall", r))
}

func (l *influxDBLogger) LogHistogram(h stats.Histogram) {
	p := influxdb2.NewPointWithMeasurement("latbench_histogram").
		SetTime(time.Now())
	for i := 0; i < stats.NumBuckets; i++ {
		p.AddField(fmt.Sprintf("bucket_%d", i), int64(h.Buckets[i]))
	}
	p.AddField("total", int64(h.Total))
	l.asyncWriter.WritePoint(p)
}

// resultPoint converts the unsigned nanosecond fields to int64 as the
// line protocol has no unsigned integer field type.
func resultPoint(measurement string, r stats.Result) *write.Point {
	return influxdb2.NewPointWithMeasurement(measurement).
		AddField("mean", r.Mean).
		AddField("trimmed_mean", r.TrimmedMean).
		AddField("stddev", r.StdDev).
		AddField("min", int64(r.Min)).
		AddField("max", int64(r.Max)).
		AddField("p50", int64(r.P50)).
		AddField("p99", int64(r.P99)).
		AddField("count", r.Count).
		AddField("ops_per_sec", r.OpsPerSec()).
		SetTime(time.Now())
}
