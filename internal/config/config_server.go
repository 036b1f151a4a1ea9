package config

import (
	"fmt"
	"time"
)

// Server-side defaults.
const (
	DefaultServerAddress  = "127.0.0.1:8000"
	DefaultServerDriver   = DriverSQLite
	DefaultServerDSN      = "vault.db"
	DefaultBinaryDataDir  = "server_storage"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxUploadSize  = 64 << 20
	DefaultServiceVersion = "dev"
)

// Database drivers accepted by [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// ServerConfig is the vault service configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Server holds listener settings.
	Server Server
	// Storage holds metadata DB and blob directory settings.
	Storage Storage
	// Version is reported by the status endpoint.
	Version string
}

// GetServerConfig builds and validates the vault service config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Version: cfg.App.Version,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultServerDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = DefaultServerDSN
	}
	if cfg.Storage.Files.BinaryDataDir == "" {
		cfg.Storage.Files.BinaryDataDir = DefaultBinaryDataDir
	}
	if cfg.Version == "" {
		cfg.Version = DefaultServiceVersion
	}
}
