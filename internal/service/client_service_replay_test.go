package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/mock"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// Uploads the vault refuses must not keep later journal rows from replaying,
// even when they outnumber one replay batch.
func TestVaultService_ReplayPending_RejectedRowsDoNotBlockQueue(t *testing.T) {
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.FallbackRepository
	for i := 0; i < replayBatchSize+5; i++ {
		require.NoError(t, repo.SaveFallback(ctx, models.PendingUpload{
			StorageName:      fmt.Sprintf("encrypted_bad_%03d.txt", i),
			OriginalFilename: "huge.bin",
			Ciphertext:       "ct-bad",
		}))
	}
	require.NoError(t, repo.SaveFallback(ctx, models.PendingUpload{
		StorageName:      "encrypted_good.txt",
		OriginalFilename: "good.txt",
		Ciphertext:       "ct-good",
	}))

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockVaultAdapter(ctrl)

	var uploaded []string
	mockAdapter.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name, _ string, ct models.Ciphertext) error {
			if ct == "ct-bad" {
				return fmt.Errorf("%w: payload exceeds limit", adapter.ErrRequestTooLarge)
			}
			uploaded = append(uploaded, name)
			return nil
		}).
		AnyTimes()

	cfg := config.ClientConfig{Adapter: config.ClientAdapter{RequestTimeout: time.Second}}
	svc := NewVaultService(mockAdapter, repo, cfg, logger.Nop())

	total := 0
	for pass := 0; pass < 3; pass++ {
		n, err := svc.ReplayPending(ctx)
		require.NoError(t, err)
		total += n
	}

	assert.Equal(t, 1, total)
	assert.Equal(t, []string{"encrypted_good.txt"}, uploaded)

	pending, err := repo.ListPending(ctx, replayBatchSize)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
