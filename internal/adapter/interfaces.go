// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// vault service.
//
// The primary abstraction is [VaultAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPVaultAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. Failures that never produced a response (refused connections,
// DNS errors, expired deadlines) are reported as [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines communication with the remote vault service. The vault
// stores ciphertexts it cannot read; it only assigns ids and timestamps.
type VaultAdapter interface {
	// Status probes the service root and returns its status line.
	Status(ctx context.Context) (string, error)

	// Upload stores ct under storageName, recording originalFilename as the
	// human-readable name of the entry.
	Upload(ctx context.Context, storageName, originalFilename string, ct models.Ciphertext) error

	// ListFiles returns entry metadata, newest first.
	ListFiles(ctx context.Context) ([]models.VaultEntry, error)

	// FetchContent returns the stored ciphertext of entry id.
	// Returns [ErrNotFound] (wrapped) when the entry or its blob is missing.
	FetchContent(ctx context.Context, id int64) (models.Ciphertext, error)

	// Delete removes entry id. Returns [ErrNotFound] (wrapped) when absent.
	Delete(ctx context.Context, id int64) error
}
