package tui

import (
	"errors"

	"github.com/MKhiriev/go-doc-vault/internal/codec"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/session"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

// userMessages is ordered: the first matching error wins.
var userMessages = []struct {
	target  error
	message string
}{
	{session.ErrActionPending, "Another action is still running."},
	{crypto.ErrEmptyPassword, "Enter a password first."},
	{crypto.ErrEmptyPlaintext, "The selected file is empty."},
	{session.ErrNoFileSelected, "Select a file first."},
	{session.ErrNoActiveCiphertext, "Nothing to decrypt: encrypt a file or load an entry first."},
	{session.ErrEmptyCiphertext, "The entry holds no ciphertext."},
	{session.ErrNothingDecrypted, "Decrypt something before exporting."},
	{session.ErrExportTargetExists, "A file already exists at that path. Choose another name."},
	{crypto.ErrWrongPasswordOrCorruptData, "Wrong password or corrupted data."},
	{codec.ErrFileTooLarge, "The file is too large."},
	{codec.ErrReadingFile, "The file could not be read."},
	{store.ErrFallbackEmpty, "No ciphertext has been saved locally yet."},
	{service.ErrFallbackFailed, "The vault is unreachable and the local copy could not be written."},
	{service.ErrNotFound, "The entry no longer exists in the vault."},
	{service.ErrAlreadyExists, "The vault already holds an entry with this name."},
	{service.ErrTransport, "The vault is unreachable."},
	{service.ErrRejected, "The vault rejected the request."},
	{service.ErrServerFailure, "The vault failed to process the request."},
}

// userMessage turns an action error into a notification. The raw error is
// appended so nothing is hidden from the user.
func userMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return m.message + "\n\n" + err.Error()
		}
	}
	return err.Error()
}
