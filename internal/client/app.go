package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/workers"
)

type App struct {
	ui      UI
	workers *workers.Workers
	closer  io.Closer

	logger *logger.Logger
}

// NewApp assembles the runtime. closer releases local storage once the UI
// and the workers have stopped; it may be nil.
func NewApp(ui UI, workers *workers.Workers, closer io.Closer, logger *logger.Logger) *App {
	return &App{
		ui:      ui,
		workers: workers,
		closer:  closer,
		logger:  logger,
	}
}

// Run starts the background workers, blocks in the UI and tears everything
// down in reverse order. SIGINT and SIGTERM cancel the run.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctx = a.logger.WithContext(ctx)

	a.workers.Start(ctx)
	a.logger.Info().Msg("client workers started")

	defer func() {
		cancel()
		a.workers.Stop()
		a.logger.Info().Msg("client workers stopped")

		if a.closer != nil {
			if closeErr := a.closer.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("close local storage: %w", closeErr))
			}
		}
	}()

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client ui: %w", err)
	}
	return nil
}
