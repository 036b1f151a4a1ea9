// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-doc-vault/models"
)

var sealedMagic = []byte("GDV1")

const sealedSaltLen = 16

// sealedCipher is the authenticated password cipher:
//
//	key  = Argon2id(password, salt)
//	blob = "GDV1" ‖ salt ‖ nonce ‖ AES-256-GCM(plaintext)
//	ct   = base64(blob)
//
// A wrong password or any modified byte fails the GCM tag check.
type sealedCipher struct {
	// Argon2id tuning parameters. The "GDV1" magic pins them: changing the
	// defaults requires a new magic.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// newSealedCipher uses the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func newSealedCipher() *sealedCipher {
	return &sealedCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// NewSealedCipher returns a [CipherEngine] restricted to the authenticated
// Argon2id + AES-GCM scheme.
func NewSealedCipher() CipherEngine {
	return newSealedCipher()
}

func (s *sealedCipher) deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

func (s *sealedCipher) Encrypt(plaintext, password string) (models.Ciphertext, error) {
	if err := validateInput(plaintext, password); err != nil {
		return "", err
	}

	// 1. Random salt, then the key
	salt := make([]byte, sealedSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := s.deriveKey(password, salt)

	// 2. Build AES-GCM cipher from the key
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// 3. Generate a random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// 4. magic || salt || nonce || ciphertext; the header is authenticated too
	header := make([]byte, 0, len(sealedMagic)+len(salt)+len(nonce))
	header = append(header, sealedMagic...)
	header = append(header, salt...)
	header = append(header, nonce...)
	blob := gcm.Seal(header, nonce, []byte(plaintext), header[:len(sealedMagic)+len(salt)])

	return models.Ciphertext(base64.StdEncoding.EncodeToString(blob)), nil
}

func (s *sealedCipher) Decrypt(ct models.Ciphertext, password string) (string, error) {
	if password == "" {
		return "", configError(ErrEmptyPassword)
	}

	blob, err := decodeCiphertext(ct)
	if err != nil {
		return "", err
	}

	return s.open(blob, password)
}

func (s *sealedCipher) open(blob []byte, password string) (string, error) {
	saltEnd := len(sealedMagic) + sealedSaltLen
	if !bytes.HasPrefix(blob, sealedMagic) || len(blob) < saltEnd {
		return "", ErrWrongPasswordOrCorruptData
	}

	gcm, err := newGCM(s.deriveKey(password, blob[len(sealedMagic):saltEnd]))
	if err != nil {
		return "", ErrWrongPasswordOrCorruptData
	}

	nonceEnd := saltEnd + gcm.NonceSize()
	if len(blob) < nonceEnd+gcm.Overhead() {
		return "", ErrWrongPasswordOrCorruptData
	}

	plain, err := gcm.Open(nil, blob[saltEnd:nonceEnd], blob[nonceEnd:], blob[:saltEnd])
	if err != nil || len(plain) == 0 {
		return "", ErrWrongPasswordOrCorruptData
	}

	return string(plain), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
