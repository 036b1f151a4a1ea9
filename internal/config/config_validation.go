// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the client view before it is used at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return fmt.Errorf("%w: fallback storage must be a file", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ReplayInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.MaxFileSize <= 0 {
		return fmt.Errorf("%w: max file size must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.App.CipherMode {
	case CipherModePassphrase, CipherModeSealed:
	default:
		return fmt.Errorf("%w: unknown cipher mode %q", ErrInvalidAppConfigs, cfg.App.CipherMode)
	}

	return nil
}

// validate checks the vault service view before it is used at startup.
func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.BinaryDataDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
