package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/migrations"
)

// retry policy for operations the driver classifies as [Retryable]
const (
	maxRetries = 3
	retryDelay = 50 * time.Millisecond
)

// ErrorClassification tells whether a failed database operation may be
// retried.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator decides whether a failed database operation may succeed
// when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database/sql handle bound to one driver, its error classifier and
// the placeholder format its SQL builder must use.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the metadata database selected by cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite, "":
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the server schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.MigrateServer(db.DB, db.driver)
}

// MigrateClient applies the client fallback schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// builder returns a squirrel statement builder with the driver's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withRetry runs fn, repeating it with exponential backoff while the
// classifier reports the failure as retryable.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	delay := retryDelay

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			logger.FromContext(ctx).Debug().
				Str("func", "DB.withRetry").
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("retrying database operation")

			select {
			case <-time.After(delay):
				delay *= 2
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err = fn()
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
	}

	return fmt.Errorf("max retries exceeded: %w", err)
}
