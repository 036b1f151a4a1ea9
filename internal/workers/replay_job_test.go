package workers

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
)

type countingReplayer struct {
	calls atomic.Int32
	err   error
	n     int
}

func (r *countingReplayer) ReplayPending(context.Context) (int, error) {
	r.calls.Add(1)
	return r.n, r.err
}

func TestReplayJob_RunsOnStartAndOnTick(t *testing.T) {
	r := &countingReplayer{n: 1}
	job := NewReplayJob(r, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	require.Eventually(t, func() bool { return r.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	job.Stop()

	after := r.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, r.calls.Load(), "no passes after Stop")
}

func TestReplayJob_KeepsRunningOnErrors(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("%w: connection refused", service.ErrTransport),
		errors.New("database is locked"),
	} {
		r := &countingReplayer{err: err}
		job := NewReplayJob(r, 10*time.Millisecond, logger.Nop())

		job.Start(context.Background())
		require.Eventually(t, func() bool { return r.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
		job.Stop()
	}
}

func TestReplayJob_StopsWithContext(t *testing.T) {
	r := &countingReplayer{}
	job := NewReplayJob(r, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	require.Eventually(t, func() bool { return r.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestReplayJob_StopWithoutStart(t *testing.T) {
	job := NewReplayJob(&countingReplayer{}, 0, logger.Nop())
	job.Stop()
	assert.Equal(t, defaultReplayInterval, job.(*replayJob).interval)
}

func TestReplayJob_RestartReplacesLoop(t *testing.T) {
	r := &countingReplayer{}
	job := NewReplayJob(r, time.Hour, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	require.Eventually(t, func() bool { return r.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	job.Stop()
}
