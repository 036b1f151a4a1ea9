package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
)

const defaultReplayInterval = time.Minute

type replayJob struct {
	replayer Replayer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReplayJob creates a job that calls replayer.ReplayPending once on start
// and then every interval. A zero or negative interval defaults to one
// minute.
func NewReplayJob(replayer Replayer, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultReplayInterval
	}
	return &replayJob{replayer: replayer, interval: interval, logger: logger}
}

// Start stops any previously running pass loop and launches a new one. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *replayJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.replay(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.replay(jobCtx)
			}
		}
	}()
}

func (j *replayJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *replayJob) replay(ctx context.Context) {
	n, err := j.replayer.ReplayPending(ctx)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrTransport), errors.Is(err, context.Canceled):
		j.logger.Debug().Err(err).Msg("vault still unreachable, replay postponed")
	default:
		j.logger.Err(err).Str("func", "replayJob.replay").Msg("fallback replay failed")
	}

	if n > 0 {
		j.logger.Info().Int("replayed", n).Msg("fallback saves replayed to vault")
	}
}
