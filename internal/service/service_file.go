package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

type fileService struct {
	files store.FileRepository
	blobs store.BlobStorage

	logger *logger.Logger
}

func NewFileService(files store.FileRepository, blobs store.BlobStorage, logger *logger.Logger) FileService {
	return &fileService{
		files:  files,
		blobs:  blobs,
		logger: logger,
	}
}

func (f *fileService) Upload(ctx context.Context, req models.UploadRequest) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	path, err := f.blobs.Save(ctx, req.StorageName, req.Content)
	if err != nil {
		return models.FileRecord{}, mapStoreError(fmt.Errorf("save blob: %w", err))
	}

	rec, err := f.files.CreateFile(ctx, models.FileRecord{
		OriginalFilename: req.OriginalFilename,
		StoredFilename:   req.StorageName,
		FilePath:         path,
		UploadStatus:     models.UploadStatusUploaded,
	})
	if err != nil {
		if rmErr := f.blobs.Remove(context.WithoutCancel(ctx), path); rmErr != nil {
			log.Err(rmErr).Str("func", "fileService.Upload").Str("path", path).Msg("failed to remove orphaned blob")
		}
		return models.FileRecord{}, mapStoreError(fmt.Errorf("create file record: %w", err))
	}

	log.Info().
		Int64("id", rec.ID).
		Str("stored_filename", rec.StoredFilename).
		Msg("file uploaded")

	return rec, nil
}

func (f *fileService) List(ctx context.Context) ([]models.VaultEntry, error) {
	records, err := f.files.ListFiles(ctx)
	if err != nil {
		return nil, mapStoreError(fmt.Errorf("list files: %w", err))
	}

	entries := make([]models.VaultEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, rec.ToVaultEntry())
	}
	return entries, nil
}

func (f *fileService) Content(ctx context.Context, id int64) (models.Ciphertext, error) {
	rec, err := f.files.GetFile(ctx, id)
	if err != nil {
		return "", mapStoreError(fmt.Errorf("get file %d: %w", id, err))
	}

	rc, err := f.blobs.Open(ctx, rec.FilePath)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			logger.FromContext(ctx).Warn().
				Int64("id", id).
				Str("path", rec.FilePath).
				Msg("metadata row exists but blob is missing")
		}
		return "", mapStoreError(fmt.Errorf("open blob of file %d: %w", id, err))
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read blob of file %d: %w", id, err)
	}

	return models.Ciphertext(body), nil
}

func (f *fileService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	rec, err := f.files.GetFile(ctx, id)
	if err != nil {
		return mapStoreError(fmt.Errorf("get file %d: %w", id, err))
	}

	if err = f.files.DeleteFile(ctx, id); err != nil {
		return mapStoreError(fmt.Errorf("delete file %d: %w", id, err))
	}

	// the row is gone; a leftover blob is unreachable and only logged
	if err = f.blobs.Remove(ctx, rec.FilePath); err != nil {
		log.Err(err).Str("func", "fileService.Delete").Int64("id", id).Msg("failed to remove blob")
	}

	log.Info().Int64("id", id).Msg("file deleted")
	return nil
}
