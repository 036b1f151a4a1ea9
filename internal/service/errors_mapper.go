package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/validators"
)

// mapStoreError translates storage errors into service business errors,
// keeping the original error in the chain.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrFileNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrFileAlreadyExists):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case errors.Is(err, store.ErrInvalidBlobName):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return err
}

// mapValidationError marks validator failures as invalid input. Unsupported
// types and unknown fields are programming errors and pass through.
func mapValidationError(err error) error {
	if err == nil ||
		errors.Is(err, validators.ErrUnsupportedType) ||
		errors.Is(err, validators.ErrUnknownField) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
