package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", fmt.Errorf("%w: %q", ErrInvalidFileID, "x"), http.StatusBadRequest},
		{"no file", ErrNoFileProvided, http.StatusBadRequest},
		{"malformed", fmt.Errorf("%w: boom", ErrMalformedUpload), http.StatusBadRequest},
		{"too large", ErrUploadTooLarge, http.StatusRequestEntityTooLarge},
		{"validation", fmt.Errorf("upload: %w", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"not found", fmt.Errorf("get file 1: %w", service.ErrNotFound), http.StatusNotFound},
		{"exists", service.ErrAlreadyExists, http.StatusConflict},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
