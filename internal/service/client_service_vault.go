package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// replayBatchSize bounds how many journalled saves one replay pass uploads.
const replayBatchSize = 50

type vaultService struct {
	adapter  adapter.VaultAdapter
	fallback store.FallbackRepository

	timeout               time.Duration
	fallbackOnServerError bool
	newStorageName        func() string

	logger *logger.Logger
}

func NewVaultService(
	vaultAdapter adapter.VaultAdapter,
	fallback store.FallbackRepository,
	cfg config.ClientConfig,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		adapter:               vaultAdapter,
		fallback:              fallback,
		timeout:               cfg.Adapter.RequestTimeout,
		fallbackOnServerError: cfg.App.FallbackOnServerError,
		newStorageName:        utils.NewStorageName,
		logger:                logger,
	}
}

func (s *vaultService) Save(ctx context.Context, ct models.Ciphertext, mediaType, originalFilename string) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if ct.IsEmpty() {
		return models.SaveResult{}, ErrEmptyCiphertext
	}

	name := s.newStorageName()

	reqCtx, cancel := s.withTimeout(ctx)
	err := s.adapter.Upload(reqCtx, name, originalFilename, ct)
	cancel()
	if err == nil {
		log.Info().Str("storage_name", name).Msg("ciphertext saved to vault")
		return models.SaveResult{Outcome: models.SaveOutcomeRemote, StorageName: name}, nil
	}

	if !s.shouldFallback(err) {
		log.Err(err).Str("func", "vaultService.Save").Str("storage_name", name).Msg("vault rejected upload")
		return models.SaveResult{}, mapAdapterError(err)
	}

	log.Warn().Err(err).Str("storage_name", name).Msg("vault unreachable, saving to local fallback")

	upload := models.PendingUpload{
		StorageName:      name,
		OriginalFilename: originalFilename,
		MediaType:        mediaType,
		Ciphertext:       ct,
	}
	// the remote deadline may have expired; the local write gets its own
	if fbErr := s.fallback.SaveFallback(context.WithoutCancel(ctx), upload); fbErr != nil {
		log.Err(fbErr).Str("func", "vaultService.Save").Msg("failed to write local fallback")
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrFallbackFailed, errors.Join(mapAdapterError(err), fbErr))
	}

	return models.SaveResult{
		Outcome:     models.SaveOutcomeFallback,
		StorageName: name,
		Cause:       mapAdapterError(err),
	}, nil
}

func (s *vaultService) List(ctx context.Context) (models.ListResult, error) {
	reqCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	entries, err := s.adapter.ListFiles(reqCtx)
	if err != nil {
		if s.shouldFallback(err) {
			logger.FromContext(ctx).Warn().Err(err).Msg("vault unreachable, listing is offline")
			return models.ListResult{Entries: []models.VaultEntry{}, Offline: true}, nil
		}
		return models.ListResult{}, mapAdapterError(err)
	}

	return models.ListResult{Entries: entries}, nil
}

func (s *vaultService) FetchContent(ctx context.Context, id int64) (models.Ciphertext, error) {
	reqCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	ct, err := s.adapter.FetchContent(reqCtx, id)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return ct, nil
}

func (s *vaultService) Delete(ctx context.Context, id int64) error {
	reqCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	return mapAdapterError(s.adapter.Delete(reqCtx, id))
}

func (s *vaultService) LoadFallback(ctx context.Context) (models.FallbackRecord, error) {
	rec, err := s.fallback.LoadFallback(ctx)
	if err != nil {
		return models.FallbackRecord{}, fmt.Errorf("load fallback: %w", err)
	}
	return rec, nil
}

func (s *vaultService) ReplayPending(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	pending, err := s.fallback.ListPending(ctx, replayBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending uploads: %w", err)
	}

	replayed := 0
	for _, p := range pending {
		reqCtx, cancel := s.withTimeout(ctx)
		err = s.adapter.Upload(reqCtx, p.StorageName, p.OriginalFilename, p.Ciphertext)
		cancel()

		switch {
		case err == nil, errors.Is(err, adapter.ErrConflict):
			// a conflict means an earlier pass already uploaded this name
		case s.shouldFallback(err):
			return replayed, mapAdapterError(err)
		default:
			log.Err(err).
				Str("func", "vaultService.ReplayPending").
				Str("storage_name", p.StorageName).
				Msg("vault rejected journalled upload, taking it out of the replay queue")
			if markErr := s.fallback.MarkRejected(ctx, p.ID, err.Error()); markErr != nil {
				return replayed, fmt.Errorf("mark upload %d rejected: %w", p.ID, markErr)
			}
			continue
		}

		if err = s.fallback.MarkReplayed(ctx, p.ID); err != nil {
			return replayed, fmt.Errorf("mark upload %d replayed: %w", p.ID, err)
		}
		replayed++
		log.Info().Str("storage_name", p.StorageName).Msg("journalled upload replayed")
	}

	return replayed, nil
}

// shouldFallback reports whether err means the remote is unavailable rather
// than that it refused the request.
func (s *vaultService) shouldFallback(err error) bool {
	if errors.Is(err, adapter.ErrTransport) {
		return true
	}
	return s.fallbackOnServerError && adapter.IsServerError(err)
}

func (s *vaultService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
