// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	// App holds cipher and file-handling settings shared by the client
	// runtime.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backends: the local
	// fallback database on the client, the metadata database and the blob
	// directory on the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the vault
	// service HTTP listener.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the remote vault service used by the
	// client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// CipherMode selects the scheme used for new encryptions: "passphrase"
	// (OpenSSL-compatible, default) or "sealed" (Argon2id + AES-GCM).
	// Env: APP_CIPHER_MODE
	CipherMode string `env:"CIPHER_MODE"`

	// MaxFileSize caps the number of bytes a selected file may have.
	// Env: APP_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// FallbackOnServerError routes 5xx responses of the vault service to the
	// local fallback store, like connectivity failures.
	// Env: APP_FALLBACK_ON_SERVER_ERROR
	FallbackOnServerError bool `env:"FALLBACK_ON_SERVER_ERROR"`

	// LogFile is where the client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version reported by the server status endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for ciphertext blobs.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for a database/sql backend.
type DB struct {
	// DSN is the data source name. For sqlite3 it is a file path, for pgx a
	// PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Files holds file-system settings for the ciphertext blob store.
type Files struct {
	// BinaryDataDir is the directory where uploaded ciphertexts are written.
	// Env: STORAGE_FILES_BINARY_DATA_DIR
	BinaryDataDir string `env:"BINARY_DATA_DIR"`
}

// Server holds network and timeout settings for the vault service.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps the multipart body accepted by POST /upload.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter holds settings for the client's connection to the vault service.
type Adapter struct {
	// HTTPAddress is the base address of the vault service, with or without
	// scheme (e.g. "127.0.0.1:8000" or "http://vault.local:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every call to the vault service. An expired
	// call is treated exactly like an unreachable service.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReplayInterval is how often journalled fallback saves are pushed to
	// the vault service.
	// Env: WORKERS_REPLAY_INTERVAL
	ReplayInterval time.Duration `env:"REPLAY_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
