// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// keys of the fallback_slot table
const (
	slotKeyCiphertext = "ciphertext"
	slotKeyMediaType  = "media_type"
)

const (
	upsertFallbackSlot = `
		INSERT INTO fallback_slot (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	insertFallbackJournal = `
		INSERT INTO fallback_journal (
			storage_name,
			original_filename,
			media_type,
			ciphertext,
			created_at
		) VALUES (?, ?, ?, ?, ?);`

	selectFallbackSlot = `
		SELECT key, value, updated_at
		FROM fallback_slot
		WHERE key IN (?, ?);`

	selectPendingUploads = `
		SELECT
			id,
			storage_name,
			original_filename,
			media_type,
			ciphertext,
			created_at
		FROM fallback_journal
		WHERE replayed_at IS NULL AND rejected_at IS NULL
		ORDER BY id ASC
		LIMIT ?;`

	markUploadReplayed = `
		UPDATE fallback_journal
		SET replayed_at = ?
		WHERE id = ? AND replayed_at IS NULL;`

	// a rejected row stays in the journal but leaves the replay queue
	markUploadRejected = `
		UPDATE fallback_journal
		SET rejected_at = ?, reject_reason = ?
		WHERE id = ? AND replayed_at IS NULL AND rejected_at IS NULL;`
)
