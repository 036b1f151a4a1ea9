package config

import (
	"fmt"
	"time"
)

// Client-side defaults, matching the vault service's default listen address.
const (
	DefaultVaultAddress   = "http://127.0.0.1:8000"
	DefaultVaultTimeout   = 10 * time.Second
	DefaultClientDSN      = "vault-client.db"
	DefaultCipherMode     = CipherModePassphrase
	DefaultMaxFileSize    = 32 << 20
	DefaultReplayInterval = time.Minute
)

// Cipher modes accepted by [App.CipherMode].
const (
	CipherModePassphrase = "passphrase"
	CipherModeSealed     = "sealed"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// CipherMode is the scheme used for new encryptions.
	CipherMode string
	// MaxFileSize caps the size of a selected file in bytes.
	MaxFileSize int64
	// FallbackOnServerError routes 5xx responses to the local fallback.
	FallbackOnServerError bool
	// LogFile is the client log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the vault service base address.
	HTTPAddress string
	// RequestTimeout bounds every outbound vault request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the fallback slot and journal.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ReplayInterval defines how often journalled fallback saves are pushed
	// to the vault service.
	ReplayInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			CipherMode:            cfg.App.CipherMode,
			MaxFileSize:           cfg.App.MaxFileSize,
			FallbackOnServerError: cfg.App.FallbackOnServerError,
			LogFile:               cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{ReplayInterval: cfg.Workers.ReplayInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.CipherMode == "" {
		cfg.App.CipherMode = DefaultCipherMode
	}
	if cfg.App.MaxFileSize == 0 {
		cfg.App.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultVaultAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultVaultTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultClientDSN
	}
	if cfg.Workers.ReplayInterval == 0 {
		cfg.Workers.ReplayInterval = DefaultReplayInterval
	}
}
