package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kcz17/latbench/stats"
)

func TestFormatNanos(t *testing.T) {
	type args struct {
		ns uint64
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "Sub-microsecond stays in nanoseconds",
			args: args{ns: 999},
			want: "999 ns",
		},
		{
			name: "Sub-millisecond renders microseconds",
			args: args{ns: 1500},
			want: "1.5 us",
		},
		{
			name: "Millisecond and above renders milliseconds",
			args: args{ns: 2500000},
			want: "2.50 ms",
		},
		{
			name: "Zero",
			args: args{ns: 0},
			want: "0 ns",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNanos(tt.args.ns); got != tt.want {
				t.Errorf("FormatNanos() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteResult_IncludesHeadlineFigures(t *testing.T) {
	var buf bytes.Buffer
	WriteResult(&buf, stats.Result{
		Mean:        1500,
		TrimmedMean: 1000,
		Min:         500,
		Max:         4000,
		P50:         1200,
		P99:         3900,
		Count:       100,
	})

	out := buf.String()
	assert.Contains(t, out, "samples:      100")
	assert.Contains(t, out, "trimmed mean: 1.0 us")
	assert.Contains(t, out, "ops/sec:      1000000")
}

func TestWriteHistogram_OneRowPerBucket(t *testing.T) {
	var buf bytes.Buffer
	h := stats.FromSamples([]uint64{500, 1500, 2500, 5000, 130000})
	WriteHistogram(&buf, h)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, stats.NumBuckets+1, "header plus one row per bucket")
	assert.Contains(t, buf.String(), "128+")
	assert.Contains(t, buf.String(), "20.00% (1)")
}

func TestSaveHistogramPNG(t *testing.T) {
	h := stats.FromSamples([]uint64{500, 1500, 2500, 5000, 130000})
	path := filepath.Join(t.TempDir(), "hist.png")

	err := SaveHistogramPNG(h, path)
	assert.NoError(t, err)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.True(t, info.Size() > 0)
}
