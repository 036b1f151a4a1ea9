package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// diskBlobStorage is the filesystem implementation of [BlobStorage]. Blobs
// live flat inside one directory, named by the client-generated storage
// name.
type diskBlobStorage struct {
	dir    string
	logger *logger.Logger
}

// NewDiskBlobStorage creates dir if needed and returns a [BlobStorage]
// rooted in it.
func NewDiskBlobStorage(dir string, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create blob directory: %w", err)
	}
	return &diskBlobStorage{dir: dir, logger: logger}, nil
}

// Save writes the blob to a temp file first and renames it into place, so a
// failed upload never leaves a truncated blob under the final name.
func (d *diskBlobStorage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	target, err := d.resolve(name)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(d.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "diskBlobStorage.Save").Msg("failed to create temp file")
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, &ctxReader{ctx: ctx, r: r}); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "diskBlobStorage.Save").Str("name", name).Msg("failed to write blob")
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}

	// rename would silently replace an existing blob
	if _, err = os.Stat(target); err == nil {
		return "", fmt.Errorf("%w: %q", ErrFileAlreadyExists, name)
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		log.Err(err).Str("func", "diskBlobStorage.Save").Str("name", name).Msg("failed to move blob into place")
		return "", fmt.Errorf("move blob: %w", err)
	}

	return target, nil
}

func (d *diskBlobStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := d.contains(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "diskBlobStorage.Open").Str("path", path).Msg("failed to open blob")
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

func (d *diskBlobStorage) Remove(ctx context.Context, path string) error {
	if err := d.contains(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "diskBlobStorage.Remove").Str("path", path).Msg("failed to remove blob")
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// resolve maps a storage name to a path inside the blob directory.
func (d *diskBlobStorage) resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobName, name)
	}
	return filepath.Join(d.dir, name), nil
}

// contains rejects paths outside the blob directory.
func (d *diskBlobStorage) contains(path string) error {
	rel, err := filepath.Rel(d.dir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || strings.ContainsAny(rel, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidBlobName, path)
	}
	return nil
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
