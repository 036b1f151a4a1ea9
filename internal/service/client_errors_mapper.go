// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrTransport, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrRequestTooLarge),
		errors.Is(err, adapter.ErrClientError):
		return fmt.Errorf("%w: %w", ErrRejected, err)

	case adapter.IsServerError(err):
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return err
}
