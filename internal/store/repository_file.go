package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

// fileRepository is the database/sql implementation of [FileRepository]. It
// builds every statement with squirrel so the same code serves PostgreSQL
// ($n placeholders) and SQLite (? placeholders).
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// the request's trace id.
type fileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFile inserts the record and scans back the server-assigned id and
// creation time.
//
// Error handling:
//   - unique violation on stored_filename → [ErrFileAlreadyExists].
//   - any other driver-level error → [ErrExecutingQuery] (wrapped).
func (r *fileRepository) CreateFile(ctx context.Context, rec models.FileRecord) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFileQuery(r.db.builder(), rec)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.CreateFile").Msg("failed to create query")
		return models.FileRecord{}, err
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&rec.ID, (*sqlTime)(&rec.CreatedAt))
	})
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.CreateFile").
			Str("stored_filename", rec.StoredFilename).
			Msg("failed to insert file record")

		if isPostgresUniqueViolation(err) || isSQLiteUniqueViolation(err) {
			return models.FileRecord{}, ErrFileAlreadyExists
		}
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}

// ListFiles returns all records ordered by id descending. Returns an empty
// slice when the table is empty.
func (r *fileRepository) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFilesQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("failed to execute query for listing files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.FileRecord, 0, 16)
	for rows.Next() {
		rec, scanErr := scanFileRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*fileRepository.ListFiles").Msg("failed to scan file row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*fileRepository.ListFiles").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// GetFile returns a single record by id.
func (r *fileRepository) GetFile(ctx context.Context, id int64) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFileQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.GetFile").Msg("failed to create query")
		return models.FileRecord{}, err
	}

	rec, err := scanFileRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FileRecord{}, ErrFileNotFound
		}
		log.Err(err).Str("func", "*fileRepository.GetFile").Int64("id", id).Msg("failed to get file record")
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}

// DeleteFile removes a record by id. Zero affected rows means the record
// did not exist.
func (r *fileRepository) DeleteFile(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFileQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.DeleteFile").Msg("failed to create query")
		return err
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.DeleteFile").Int64("id", id).Msg("failed to delete file record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFileRecord(row rowScanner) (models.FileRecord, error) {
	var rec models.FileRecord
	err := row.Scan(
		&rec.ID,
		&rec.OriginalFilename,
		&rec.StoredFilename,
		&rec.FilePath,
		(*sqlTime)(&rec.CreatedAt),
		&rec.UploadStatus,
	)
	return rec, err
}
