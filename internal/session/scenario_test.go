package session

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/codec"
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// A file saved while the vault is unreachable lands in the fallback slot and
// can be decrypted from there in a fresh session.
func TestScenario_FallbackSaveAndRestore(t *testing.T) {
	ctx := context.Background()

	// a closed server gives a fast connection refused
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	cfg := config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: addr, RequestTimeout: 2 * time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}},
	}

	vaultAdapter, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, logger.Nop())
	require.NoError(t, err)
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	vault := service.NewVaultService(vaultAdapter, storages.FallbackRepository, cfg, logger.Nop())
	engine, err := crypto.NewCipherEngine(crypto.ModePassphrase)
	require.NoError(t, err)

	raw := []byte("0123456789")

	first := NewController(codec.New(0), engine, vault, logger.Nop())
	require.NoError(t, first.SelectData("hello.txt", raw, "text/plain"))
	require.NoError(t, first.Encrypt("pw123"))

	c1, ok := first.State().ActiveCiphertext()
	require.True(t, ok)
	require.NotEmpty(t, c1)

	res, err := first.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SaveOutcomeFallback, res.Outcome)
	assert.ErrorIs(t, res.Cause, service.ErrTransport)

	slot, err := vault.LoadFallback(ctx)
	require.NoError(t, err)
	assert.Equal(t, c1, slot.Ciphertext)
	assert.Equal(t, "text/plain", slot.MediaType)

	second := NewController(codec.New(0), engine, vault, logger.Nop())
	require.NoError(t, second.LoadFallback(ctx))
	require.NoError(t, second.Decrypt("pw123"))

	payload, ok := second.State().DecryptedPayload()
	require.True(t, ok)
	data, mediaType, err := codec.Decode(payload)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, data))
	assert.Equal(t, "text/plain", mediaType.Raw)

	// the save is also journalled for replay
	pending, err := storages.FallbackRepository.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, res.StorageName, pending[0].StorageName)
	assert.Equal(t, "hello.txt", pending[0].OriginalFilename)
}

func TestScenario_EncryptIsNotDeterministic(t *testing.T) {
	engine, err := crypto.NewCipherEngine(crypto.ModePassphrase)
	require.NoError(t, err)

	c := NewController(codec.New(0), engine, nil, logger.Nop())
	require.NoError(t, c.SelectData("hello.txt", []byte("hello"), ""))

	require.NoError(t, c.Encrypt("pw"))
	first, _ := c.State().ActiveCiphertext()
	require.NoError(t, c.Encrypt("pw"))
	second, _ := c.State().ActiveCiphertext()

	assert.NotEqual(t, first, second)
}
