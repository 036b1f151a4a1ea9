package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-doc-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// FileRepository is the vault service's metadata store.
type FileRepository interface {
	// CreateFile inserts rec and returns it with ID and CreatedAt assigned.
	// Returns [ErrFileAlreadyExists] on a duplicate stored file name.
	CreateFile(ctx context.Context, rec models.FileRecord) (models.FileRecord, error)

	// ListFiles returns every record, highest id first.
	ListFiles(ctx context.Context) ([]models.FileRecord, error)

	// GetFile returns record id or [ErrFileNotFound].
	GetFile(ctx context.Context, id int64) (models.FileRecord, error)

	// DeleteFile removes record id or returns [ErrFileNotFound].
	DeleteFile(ctx context.Context, id int64) error
}

// BlobStorage keeps ciphertext blobs outside the relational database so the
// database only holds lightweight metadata.
type BlobStorage interface {
	// Save writes r under name and returns the path recorded in metadata.
	Save(ctx context.Context, name string, r io.Reader) (string, error)

	// Open returns a reader for the blob at path or [ErrFileNotFound].
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes the blob at path. A missing blob is not an error.
	Remove(ctx context.Context, path string) error
}
