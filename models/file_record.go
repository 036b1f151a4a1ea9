// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// FileRecord is the server-side metadata row of a stored vault entry.
type FileRecord struct {
	// ID is the auto-incremented primary key.
	ID int64

	// OriginalFilename is the client-supplied name of the plaintext file.
	OriginalFilename string

	// StoredFilename is the client-generated storage name of the ciphertext.
	StoredFilename string

	// FilePath is where the ciphertext blob lives on the server's disk.
	FilePath string

	// CreatedAt is the insertion time.
	CreatedAt time.Time

	// UploadStatus records the upload state ("uploaded").
	UploadStatus string
}

// ToVaultEntry converts the record to its public listing form.
func (r FileRecord) ToVaultEntry() VaultEntry {
	return VaultEntry{
		ID:               r.ID,
		OriginalFilename: r.OriginalFilename,
		CreatedAt:        VaultTime{Time: r.CreatedAt},
	}
}

// UploadStatusUploaded marks a record whose blob was written successfully.
const UploadStatusUploaded = "uploaded"

// UploadRequest is one POST /upload as seen by the vault service.
type UploadRequest struct {
	// StorageName is the client-generated blob name, e.g.
	// "encrypted_<uuid>.txt".
	StorageName string

	// OriginalFilename is the name of the plaintext file the ciphertext
	// was produced from.
	OriginalFilename string

	// Content streams the ciphertext body.
	Content io.Reader
}
