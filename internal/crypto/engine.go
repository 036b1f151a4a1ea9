// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/models"
)

// Cipher mode names.
const (
	// ModePassphrase produces OpenSSL "Salted__" AES-256-CBC ciphertexts,
	// readable by `openssl enc -d -aes-256-cbc -md md5 -a` and by the
	// original web client of the vault.
	ModePassphrase = "passphrase"

	// ModeSealed produces authenticated Argon2id + AES-256-GCM ciphertexts.
	ModeSealed = "sealed"
)

// engine encrypts with one mode and decrypts any supported mode, picking the
// scheme from the magic prefix of the decoded ciphertext.
type engine struct {
	encrypter  CipherEngine
	passphrase *passphraseCipher
	sealed     *sealedCipher
}

// NewCipherEngine returns a [CipherEngine] that encrypts with mode.
// An empty mode selects [ModePassphrase].
func NewCipherEngine(mode string) (CipherEngine, error) {
	e := &engine{
		passphrase: newPassphraseCipher(),
		sealed:     newSealedCipher(),
	}

	switch mode {
	case ModePassphrase, "":
		e.encrypter = e.passphrase
	case ModeSealed:
		e.encrypter = e.sealed
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	return e, nil
}

// Encrypt implements [CipherEngine].
func (e *engine) Encrypt(plaintext, password string) (models.Ciphertext, error) {
	return e.encrypter.Encrypt(plaintext, password)
}

// Decrypt implements [CipherEngine].
func (e *engine) Decrypt(ct models.Ciphertext, password string) (string, error) {
	if password == "" {
		return "", configError(ErrEmptyPassword)
	}

	blob, err := decodeCiphertext(ct)
	if err != nil {
		return "", err
	}

	switch {
	case bytes.HasPrefix(blob, sealedMagic):
		return e.sealed.open(blob, password)
	case bytes.HasPrefix(blob, opensslMagic):
		return e.passphrase.open(blob, password)
	default:
		return "", ErrWrongPasswordOrCorruptData
	}
}

func validateInput(plaintext, password string) error {
	if password == "" {
		return configError(ErrEmptyPassword)
	}
	if plaintext == "" {
		return configError(ErrEmptyPlaintext)
	}
	return nil
}

// decodeCiphertext accepts standard base64, with or without line breaks
// (openssl -a wraps at 64 columns).
func decodeCiphertext(ct models.Ciphertext) ([]byte, error) {
	clean := bytes.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, []byte(ct))

	blob, err := base64.StdEncoding.DecodeString(string(clean))
	if err != nil {
		return nil, ErrWrongPasswordOrCorruptData
	}
	return blob, nil
}
