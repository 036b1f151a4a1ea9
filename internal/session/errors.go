package session

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
)

var (
	// ErrNoFileSelected is a configuration error: encrypting needs a file.
	ErrNoFileSelected = fmt.Errorf("%w: no file selected", crypto.ErrConfig)

	// ErrNoActiveCiphertext is returned by transitions and actions that need
	// an active ciphertext.
	ErrNoActiveCiphertext = fmt.Errorf("%w: no active ciphertext", crypto.ErrConfig)

	// ErrEmptyCiphertext rejects loading an empty ciphertext.
	ErrEmptyCiphertext = errors.New("ciphertext is empty")

	// ErrNothingDecrypted is returned when exporting before a successful
	// decryption.
	ErrNothingDecrypted = errors.New("nothing has been decrypted")

	// ErrExportTargetExists is returned when the export path is already taken.
	ErrExportTargetExists = errors.New("export target already exists")

	// ErrActionPending is returned when an action is triggered while another
	// one is still running.
	ErrActionPending = errors.New("another action is still pending")
)
