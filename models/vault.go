// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Ciphertext is the opaque, portable output of the cipher engine. It carries
// no media-type metadata; the media type travels next to it.
type Ciphertext string

// IsEmpty reports whether the ciphertext holds no data.
func (c Ciphertext) IsEmpty() bool {
	return c == ""
}

// VaultEntry describes one entry stored in the remote vault. Listing returns
// entries without content; the ciphertext is fetched per entry by ID.
type VaultEntry struct {
	// ID is the server-assigned identifier of the entry.
	ID int64 `json:"id"`

	// OriginalFilename is the name of the file before encryption.
	OriginalFilename string `json:"original_filename"`

	// CreatedAt is the server-side creation time of the entry.
	CreatedAt VaultTime `json:"created_at"`
}

// SaveOutcome tells which persistence path a save took.
type SaveOutcome int

const (
	// SaveOutcomeRemote means the ciphertext was accepted by the remote vault.
	SaveOutcomeRemote SaveOutcome = iota + 1

	// SaveOutcomeFallback means the remote vault was unreachable and the
	// ciphertext was written to the local fallback store instead.
	SaveOutcomeFallback
)

// String implements fmt.Stringer.
func (o SaveOutcome) String() string {
	switch o {
	case SaveOutcomeRemote:
		return "remote"
	case SaveOutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// SaveResult reports the result of a vault save.
type SaveResult struct {
	// Outcome is the path that persisted the ciphertext.
	Outcome SaveOutcome

	// StorageName is the unique name generated for this save.
	StorageName string

	// Cause is the transport error that triggered the fallback. Nil for
	// remote saves.
	Cause error
}

// ListResult is the vault listing. Offline distinguishes an unreachable
// vault from a vault that is genuinely empty.
type ListResult struct {
	Entries []VaultEntry
	Offline bool
}

// FallbackRecord is the content of the single local fallback slot.
type FallbackRecord struct {
	Ciphertext Ciphertext
	MediaType  string
	SavedAt    time.Time
}

// PendingUpload is a journalled fallback save waiting to be replayed to the
// remote vault.
type PendingUpload struct {
	ID               int64
	StorageName      string
	OriginalFilename string
	MediaType        string
	Ciphertext       Ciphertext
	CreatedAt        time.Time
}
