package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_engine_mock.go -package=mock

import "github.com/MKhiriev/go-doc-vault/models"

// CipherEngine is the client-side password cipher. It knows nothing about
// the network, the vault or file formats: it turns a text payload and a
// password into an opaque, portable ciphertext and back.
//
// Every call to Encrypt draws a fresh random salt, so encrypting the same
// payload with the same password twice yields different ciphertexts.
type CipherEngine interface {
	// Encrypt returns the ciphertext of plaintext under password.
	// Returns an error wrapping [ErrConfig] when either input is empty.
	Encrypt(plaintext, password string) (models.Ciphertext, error)

	// Decrypt recovers the plaintext. Any failure (wrong password, corrupt or
	// foreign data) is reported as [ErrWrongPasswordOrCorruptData].
	Decrypt(ct models.Ciphertext, password string) (string, error)
}
