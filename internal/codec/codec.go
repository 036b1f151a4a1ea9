// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-vault/models"
)

// DefaultMaxSize is used when the codec is constructed without a positive cap.
const DefaultMaxSize int64 = 32 << 20

const (
	dataURLScheme  = "data:"
	base64Marker   = ";base64"
	octetStream    = "application/octet-stream"
	plainTextASCII = "text/plain;charset=US-ASCII"
)

type dataURLCodec struct {
	maxSize int64
}

// New returns a [FileCodec] that rejects files larger than maxSize bytes.
// A non-positive maxSize selects [DefaultMaxSize].
func New(maxSize int64) FileCodec {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &dataURLCodec{maxSize: maxSize}
}

func (c *dataURLCodec) Encode(name string, data []byte, mediaType string) (models.SelectedFile, error) {
	if int64(len(data)) > c.maxSize {
		return models.SelectedFile{}, fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, len(data), c.maxSize)
	}

	mt := resolveMediaType(name, data, mediaType)

	var b strings.Builder
	b.Grow(len(dataURLScheme) + len(mt.Raw) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(dataURLScheme)
	b.WriteString(mt.Raw)
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(data))

	return models.SelectedFile{
		Name:           filepath.Base(name),
		MediaType:      mt,
		Size:           int64(len(data)),
		EncodedPayload: b.String(),
	}, nil
}

func (c *dataURLCodec) EncodeReader(ctx context.Context, name string, r io.Reader, mediaType string) (models.SelectedFile, error) {
	if err := ctx.Err(); err != nil {
		return models.SelectedFile{}, err
	}

	// one byte over the cap is enough to tell the file is too large
	data, err := io.ReadAll(io.LimitReader(&ctxReader{ctx: ctx, r: r}, c.maxSize+1))
	if err != nil {
		if ctx.Err() != nil {
			return models.SelectedFile{}, ctx.Err()
		}
		return models.SelectedFile{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return c.Encode(name, data, mediaType)
}

func (c *dataURLCodec) EncodeFile(ctx context.Context, path string) (models.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	if info.IsDir() {
		return models.SelectedFile{}, fmt.Errorf("%w: %s is a directory", ErrReadingFile, path)
	}
	if info.Size() > c.maxSize {
		return models.SelectedFile{}, fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, info.Size(), c.maxSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	defer f.Close()

	return c.EncodeReader(ctx, filepath.Base(path), f, "")
}

func (c *dataURLCodec) Decode(encoded string) ([]byte, models.MediaType, error) {
	return Decode(encoded)
}

// Decode parses a data URL into its bytes and media type. Both base64 and
// percent-encoded bodies are accepted.
func Decode(encoded string) ([]byte, models.MediaType, error) {
	if !strings.HasPrefix(encoded, dataURLScheme) {
		return nil, models.UnknownMediaType, ErrMalformedPayload
	}

	header, body, ok := strings.Cut(strings.TrimPrefix(encoded, dataURLScheme), ",")
	if !ok {
		return nil, models.UnknownMediaType, fmt.Errorf("%w: missing data separator", ErrMalformedPayload)
	}

	isBase64 := false
	if strings.HasSuffix(strings.ToLower(header), base64Marker) {
		isBase64 = true
		header = header[:len(header)-len(base64Marker)]
	}

	// RFC 2397: an omitted media type means US-ASCII text
	if header == "" || strings.HasPrefix(header, ";") {
		header = plainTextASCII
	}
	mt := models.ParseMediaType(header)

	if !isBase64 {
		data, err := url.PathUnescape(body)
		if err != nil {
			return nil, models.UnknownMediaType, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return []byte(data), mt, nil
	}

	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, models.UnknownMediaType, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	return data, mt, nil
}

// resolveMediaType prefers the declared type, then the extension, then the
// content. Sniffing always yields something, octet-stream at worst.
func resolveMediaType(name string, data []byte, declared string) models.MediaType {
	if mt := models.ParseMediaType(declared); mt.IsKnown() {
		return mt
	}

	if ext := filepath.Ext(name); ext != "" {
		if mt := models.ParseMediaType(mime.TypeByExtension(ext)); mt.IsKnown() {
			return mt
		}
	}

	if len(data) == 0 {
		return models.ParseMediaType(octetStream)
	}

	return models.ParseMediaType(http.DetectContentType(data))
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
