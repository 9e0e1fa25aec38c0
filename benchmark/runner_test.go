package benchmark

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRunner_ValidatesOptions(t *testing.T) {
	type args struct {
		opts Options
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name:    "Accepts minimal options",
			args:    args{opts: Options{Workers: 1, Iterations: 1}},
			wantErr: false,
		},
		{
			name:    "Rejects zero workers",
			args:    args{opts: Options{Workers: 0, Iterations: 1}},
			wantErr: true,
		},
		{
			name:    "Rejects zero iterations",
			args:    args{opts: Options{Workers: 1, Iterations: 0}},
			wantErr: true,
		},
		{
			name:    "Rejects negative warmup",
			args:    args{opts: Options{Workers: 1, Iterations: 1, Warmup: -1}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(tt.args.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRunner() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunner_Run_CountsEveryIteration(t *testing.T) {
	runner, err := NewRunner(Options{Workers: 4, Iterations: 50})
	assert.NoError(t, err)

	var calls int64
	summary, err := runner.Run(func() error {
		atomic.AddInt64(&calls, 1)
		time.Sleep(10 * time.Microsecond)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(200), atomic.LoadInt64(&calls))
	assert.Equal(t, 200, summary.Overall.Count)
	assert.Len(t, summary.PerWorker, 4)
	assert.Equal(t, uint32(200), summary.Hist.Total)
	assert.True(t, summary.Elapsed > 0)
}

func TestRunner_Run_WarmupIterationsAreNotMeasured(t *testing.T) {
	runner, err := NewRunner(Options{Workers: 1, Iterations: 10, Warmup: 5})
	assert.NoError(t, err)

	var calls int64
	summary, err := runner.Run(func() error {
		atomic.AddInt64(&calls, 1)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(15), atomic.LoadInt64(&calls))
	assert.Equal(t, 10, summary.Overall.Count)
}

func TestRunner_Run_PercentileOrderingInvariant(t *testing.T) {
	runner, err := NewRunner(Options{Workers: 2, Iterations: 100})
	assert.NoError(t, err)

	summary, err := runner.Run(func() error {
		time.Sleep(5 * time.Microsecond)
		return nil
	})

	assert.NoError(t, err)
	overall := summary.Overall
	assert.True(t, overall.Min <= overall.P50, "expected min <= p50; got %d > %d", overall.Min, overall.P50)
	assert.True(t, overall.P50 <= overall.P99, "expected p50 <= p99; got %d > %d", overall.P50, overall.P99)
	assert.True(t, overall.P99 <= overall.Max, "expected p99 <= max; got %d > %d", overall.P99, overall.Max)
}

func TestRunner_Run_PropagatesOperationError(t *testing.T) {
	runner, err := NewRunner(Options{Workers: 2, Iterations: 10})
	assert.NoError(t, err)

	opErr := errors.New("backend unavailable")
	var calls int64
	_, err = runner.Run(func() error {
		if atomic.AddInt64(&calls, 1) > 5 {
			return opErr
		}
		return nil
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, opErr), "expected returned error to wrap the operation error; got %v", err)
}
