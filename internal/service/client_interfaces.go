package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

// VaultService is the client's persistence layer: the remote vault service
// first, the local fallback store when the remote cannot be reached.
//
// Every remote call runs under the configured request timeout; an expired
// call counts as a transport failure.
type VaultService interface {
	// Save uploads ct under a freshly generated storage name. When the remote
	// is unreachable (or answers 5xx and fallback on server errors is
	// enabled) the ciphertext and its media type are written to the local
	// fallback slot and journal instead, and the result reports
	// [models.SaveOutcomeFallback]. Rejections (4xx) are returned as errors
	// and never fall back. If the fallback write fails as well, the returned
	// error wraps both causes.
	Save(ctx context.Context, ct models.Ciphertext, mediaType, originalFilename string) (models.SaveResult, error)

	// List returns the remote entries. An unreachable remote yields an empty
	// result with Offline set and a nil error.
	List(ctx context.Context) (models.ListResult, error)

	// FetchContent returns the ciphertext of one remote entry.
	FetchContent(ctx context.Context, id int64) (models.Ciphertext, error)

	// Delete removes one remote entry.
	Delete(ctx context.Context, id int64) error

	// LoadFallback returns the ciphertext and media type of the last
	// fallback save, or store.ErrFallbackEmpty.
	LoadFallback(ctx context.Context) (models.FallbackRecord, error)

	// ReplayPending uploads journalled fallback saves in order and marks
	// each one replayed. Saves the vault refuses are marked rejected so
	// they never block later ones. It stops at the first transport failure
	// and returns how many saves reached the remote.
	ReplayPending(ctx context.Context) (int, error)
}
