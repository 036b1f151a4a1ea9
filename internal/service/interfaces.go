package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

// FileService is the vault service's business layer: it keeps the metadata
// row and the ciphertext blob of every entry consistent with each other.
type FileService interface {
	// Upload stores the ciphertext blob and its metadata row. If the row
	// cannot be created the blob is removed again.
	Upload(ctx context.Context, req models.UploadRequest) (models.FileRecord, error)

	// List returns every entry, newest first.
	List(ctx context.Context) ([]models.VaultEntry, error)

	// Content returns the stored ciphertext of one entry. Returns
	// [ErrNotFound] when either the row or the blob is missing.
	Content(ctx context.Context, id int64) (models.Ciphertext, error)

	// Delete removes the row and then the blob.
	Delete(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetStatus(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}

type FileServiceWrapper interface {
	Wrap(FileService) FileService // returns a decorated FileService applying additional behavior
}
