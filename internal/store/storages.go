package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// Storages groups the vault service's persistence: metadata rows and
// ciphertext blobs.
type Storages struct {
	FileRepository FileRepository
	BlobStorage    BlobStorage

	db *DB
}

// NewStorages connects the metadata database selected by cfg.DB, applies
// the migrations for its dialect and prepares the blob directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewDiskBlobStorage(cfg.Files.BinaryDataDir, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		FileRepository: NewFileRepository(db, logger),
		BlobStorage:    blobs,
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
