package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

type fallbackRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewFallbackRepository constructs a SQLite-backed [FallbackRepository].
func NewFallbackRepository(db *DB, logger *logger.Logger) FallbackRepository {
	return &fallbackRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (f *fallbackRepository) SaveFallback(ctx context.Context, upload models.PendingUpload) error {
	log := logger.FromContext(ctx)

	savedAt := f.now().UTC()
	if upload.CreatedAt.IsZero() {
		upload.CreatedAt = savedAt
	}

	return f.withRetry(ctx, func() error {
		tx, err := f.DB.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "fallbackRepository.SaveFallback").Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		for _, kv := range [][2]string{
			{slotKeyCiphertext, string(upload.Ciphertext)},
			{slotKeyMediaType, upload.MediaType},
		} {
			if _, err = tx.ExecContext(ctx, upsertFallbackSlot, kv[0], kv[1], savedAt); err != nil {
				log.Err(err).
					Str("func", "fallbackRepository.SaveFallback").
					Str("key", kv[0]).
					Msg("failed to overwrite fallback slot")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if _, err = tx.ExecContext(ctx, insertFallbackJournal,
			upload.StorageName,
			upload.OriginalFilename,
			upload.MediaType,
			string(upload.Ciphertext),
			upload.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "fallbackRepository.SaveFallback").
				Str("storage_name", upload.StorageName).
				Msg("failed to append fallback journal")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = tx.Commit(); err != nil {
			log.Err(err).Str("func", "fallbackRepository.SaveFallback").Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		return nil
	})
}

func (f *fallbackRepository) LoadFallback(ctx context.Context) (models.FallbackRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, selectFallbackSlot, slotKeyCiphertext, slotKeyMediaType)
	if err != nil {
		log.Err(err).Str("func", "fallbackRepository.LoadFallback").Msg("failed to query fallback slot")
		return models.FallbackRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		record    models.FallbackRecord
		hasCipher bool
	)
	for rows.Next() {
		var (
			key, value string
			updatedAt  time.Time
		)
		if err = rows.Scan(&key, &value, &updatedAt); err != nil {
			log.Err(err).Str("func", "fallbackRepository.LoadFallback").Msg("failed to scan fallback slot row")
			return models.FallbackRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		switch key {
		case slotKeyCiphertext:
			record.Ciphertext = models.Ciphertext(value)
			record.SavedAt = updatedAt
			hasCipher = value != ""
		case slotKeyMediaType:
			record.MediaType = value
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "fallbackRepository.LoadFallback").Msg("error occurred during rows iteration")
		return models.FallbackRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !hasCipher {
		return models.FallbackRecord{}, ErrFallbackEmpty
	}

	return record, nil
}

func (f *fallbackRepository) ListPending(ctx context.Context, limit int) ([]models.PendingUpload, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, selectPendingUploads, limit)
	if err != nil {
		log.Err(err).Str("func", "fallbackRepository.ListPending").Msg("failed to query pending uploads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pending := make([]models.PendingUpload, 0, limit)
	for rows.Next() {
		var (
			item models.PendingUpload
			ct   string
		)
		if err = rows.Scan(&item.ID, &item.StorageName, &item.OriginalFilename, &item.MediaType, &ct, &item.CreatedAt); err != nil {
			log.Err(err).Str("func", "fallbackRepository.ListPending").Msg("failed to scan pending upload row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.Ciphertext = models.Ciphertext(ct)
		pending = append(pending, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "fallbackRepository.ListPending").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pending, nil
}

func (f *fallbackRepository) MarkReplayed(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := f.withRetry(ctx, func() error {
		var execErr error
		res, execErr = f.DB.ExecContext(ctx, markUploadReplayed, f.now().UTC(), id)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "fallbackRepository.MarkReplayed").Int64("id", id).Msg("failed to mark upload replayed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPendingUploadNotFound
	}

	return nil
}

func (f *fallbackRepository) MarkRejected(ctx context.Context, id int64, reason string) error {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := f.withRetry(ctx, func() error {
		var execErr error
		res, execErr = f.DB.ExecContext(ctx, markUploadRejected, f.now().UTC(), reason, id)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "fallbackRepository.MarkRejected").Int64("id", id).Msg("failed to mark upload rejected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPendingUploadNotFound
	}

	return nil
}
