package store

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// FallbackRepository is the client's local persistence for saves the remote
// vault could not accept. It keeps one overwrite-only slot (the latest
// ciphertext and its media type) and an append-only journal of every
// fallback save so they can be replayed later.
type FallbackRepository interface {
	// SaveFallback overwrites the slot with upload's ciphertext and media type
	// and appends upload to the journal, all in one transaction.
	SaveFallback(ctx context.Context, upload models.PendingUpload) error

	// LoadFallback returns the slot. Returns [ErrFallbackEmpty] when nothing
	// has been saved yet.
	LoadFallback(ctx context.Context) (models.FallbackRecord, error)

	// ListPending returns up to limit journal records neither replayed nor
	// rejected, oldest first.
	ListPending(ctx context.Context, limit int) ([]models.PendingUpload, error)

	// MarkReplayed flags journal record id as uploaded.
	MarkReplayed(ctx context.Context, id int64) error

	// MarkRejected takes journal record id out of the replay queue after the
	// vault refused it. The record and its ciphertext are kept.
	MarkRejected(ctx context.Context, id int64, reason string) error
}
