//go:build unit

package janitor

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingDeleter struct {
	calls atomic.Int32
	err   error
}

func (d *countingDeleter) DeleteExpired(context.Context) (int64, error) {
	d.calls.Add(1)
	return 2, d.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIdempotencySweeper_RunsUntilStopped(t *testing.T) {
	d := &countingDeleter{}
	s := NewIdempotencySweeper(d, 5*time.Millisecond, quietLogger())

	s.Start()
	assert.Eventually(t, func() bool { return d.calls.Load() >= 2 }, time.Second, time.Millisecond)
	s.Stop()

	after := d.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, d.calls.Load())
}

func TestIdempotencySweeper_DisabledInterval(t *testing.T) {
	d := &countingDeleter{}
	s := NewIdempotencySweeper(d, 0, quietLogger())

	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	assert.Zero(t, d.calls.Load())
}

func TestIdempotencySweeper_SweepSurvivesErrors(t *testing.T) {
	d := &countingDeleter{err: assert.AnError}
	s := NewIdempotencySweeper(d, time.Hour, quietLogger())

	s.Sweep(context.Background())
	s.Sweep(context.Background())

	assert.Equal(t, int32(2), d.calls.Load())
}
