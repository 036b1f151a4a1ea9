// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-doc-vault/models"
)

var opensslMagic = []byte("Salted__")

const (
	opensslSaltLen = 8
	aes256KeyLen   = 32
)

// passphraseCipher is the OpenSSL-compatible password cipher:
//
//	key, iv = EVP_BytesToKey(MD5, password, salt)
//	blob    = "Salted__" ‖ salt ‖ AES-256-CBC(PKCS#7(plaintext))
//	ct      = base64(blob)
//
// CBC carries no authentication, so decryption success is judged by the
// padding and by the plaintext being non-empty UTF-8. A wrong password can,
// rarely, pass both checks.
type passphraseCipher struct{}

func newPassphraseCipher() *passphraseCipher {
	return &passphraseCipher{}
}

// NewPassphraseCipher returns a [CipherEngine] restricted to the
// OpenSSL-compatible scheme.
func NewPassphraseCipher() CipherEngine {
	return newPassphraseCipher()
}

func (p *passphraseCipher) Encrypt(plaintext, password string) (models.Ciphertext, error) {
	if err := validateInput(plaintext, password); err != nil {
		return "", err
	}

	salt := make([]byte, opensslSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	return p.encryptWithSalt(plaintext, password, salt)
}

func (p *passphraseCipher) encryptWithSalt(plaintext, password string, salt []byte) (models.Ciphertext, error) {
	key, iv := evpBytesToKey([]byte(password), salt, aes256KeyLen, aes.BlockSize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	blob := make([]byte, len(opensslMagic)+len(salt)+len(padded))
	n := copy(blob, opensslMagic)
	n += copy(blob[n:], salt)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(blob[n:], padded)

	return models.Ciphertext(base64.StdEncoding.EncodeToString(blob)), nil
}

func (p *passphraseCipher) Decrypt(ct models.Ciphertext, password string) (string, error) {
	if password == "" {
		return "", configError(ErrEmptyPassword)
	}

	blob, err := decodeCiphertext(ct)
	if err != nil {
		return "", err
	}

	return p.open(blob, password)
}

func (p *passphraseCipher) open(blob []byte, password string) (string, error) {
	header := len(opensslMagic) + opensslSaltLen
	if !bytes.HasPrefix(blob, opensslMagic) || len(blob) < header+aes.BlockSize || (len(blob)-header)%aes.BlockSize != 0 {
		return "", ErrWrongPasswordOrCorruptData
	}

	salt := blob[len(opensslMagic):header]
	key, iv := evpBytesToKey([]byte(password), salt, aes256KeyLen, aes.BlockSize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", ErrWrongPasswordOrCorruptData
	}

	plain := make([]byte, len(blob)-header)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, blob[header:])

	plain, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok || len(plain) == 0 || !utf8.Valid(plain) {
		return "", ErrWrongPasswordOrCorruptData
	}

	return string(plain), nil
}

// evpBytesToKey is OpenSSL's EVP_BytesToKey with MD5 and one iteration:
// D_i = MD5(D_{i-1} ‖ password ‖ salt), concatenated until keyLen+ivLen
// bytes are available.
func evpBytesToKey(password, salt []byte, keyLen, ivLen int) (key, iv []byte) {
	derived := make([]byte, 0, keyLen+ivLen+md5.Size)
	var prev []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New()
		h.Write(prev)
		h.Write(password)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, false
		}
	}
	return data[:len(data)-padLen], true
}
