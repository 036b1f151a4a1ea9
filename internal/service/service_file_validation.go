package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/validators"
	"github.com/MKhiriev/go-doc-vault/models"
)

// FileValidationService rejects malformed requests before they reach the
// wrapped [FileService].
type FileValidationService struct {
	inner     FileService
	validator validators.Validator
}

func NewFileValidationService() FileServiceWrapper {
	return &FileValidationService{
		validator: validators.NewUploadValidator(),
	}
}

func (v *FileValidationService) Upload(ctx context.Context, req models.UploadRequest) (models.FileRecord, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.FileRecord{}, mapValidationError(fmt.Errorf("error during upload validation: %w", err))
	}

	return v.inner.Upload(ctx, req)
}

func (v *FileValidationService) List(ctx context.Context) ([]models.VaultEntry, error) {
	return v.inner.List(ctx)
}

func (v *FileValidationService) Content(ctx context.Context, id int64) (models.Ciphertext, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return "", mapValidationError(err)
	}

	return v.inner.Content(ctx, id)
}

func (v *FileValidationService) Delete(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return mapValidationError(err)
	}

	return v.inner.Delete(ctx, id)
}

func (v *FileValidationService) Wrap(wrapped FileService) FileService {
	v.inner = wrapped
	return v
}
