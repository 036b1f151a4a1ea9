package utils

import "github.com/google/uuid"

const (
	storageNamePrefix = "encrypted_"
	storageNameExt    = ".txt"
)

// NewStorageName returns a unique blob name for an uploaded ciphertext.
// UUIDv7 keeps the names ordered by creation time; a random UUID is used if
// the clock source fails.
func NewStorageName() string {
	id, err := uuid.NewV7()
	if err != nil {
		return storageNamePrefix + uuid.NewString() + storageNameExt
	}
	return storageNamePrefix + id.String() + storageNameExt
}
