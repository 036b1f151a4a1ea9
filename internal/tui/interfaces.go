package tui

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/internal/session"
	"github.com/MKhiriev/go-doc-vault/models"
)

// Vault is the action surface the UI drives. [session.Controller]
// implements it.
type Vault interface {
	State() session.State
	Pending() bool

	SelectFile(ctx context.Context, path string) error
	Encrypt(password string) error
	Save(ctx context.Context) (models.SaveResult, error)
	LoadEntry(ctx context.Context, id int64) error
	LoadFallback(ctx context.Context) error
	Decrypt(password string) error
	Delete(ctx context.Context, id int64) error
	Refresh(ctx context.Context) (models.ListResult, error)
	ExportDecrypted(path string) error
}

var _ Vault = (*session.Controller)(nil)
