package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-doc-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldStorageName      = "storage_name"
	FieldOriginalFilename = "original_filename"
	FieldContent          = "content"
	FieldID               = "id"
)

const maxNameLength = 255

// storage names become file names on the server's disk
var storageNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// UploadValidator validates [models.UploadRequest] values and file ids.
type UploadValidator struct {
}

func NewUploadValidator() Validator {
	return &UploadValidator{}
}

// Validate accepts a [models.UploadRequest] (value or pointer) or an int64
// file id.
func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUploadRequest(ctx, *value, fields...)

	case int64:
		if value <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidFileID, value)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateUploadRequest(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStorageName, FieldOriginalFilename, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldStorageName:
			if err := validateStorageName(req.StorageName); err != nil {
				return err
			}
		case FieldOriginalFilename:
			if strings.TrimSpace(req.OriginalFilename) == "" {
				return ErrEmptyOriginalFilename
			}
			if len(req.OriginalFilename) > maxNameLength ||
				!utf8.ValidString(req.OriginalFilename) ||
				strings.ContainsRune(req.OriginalFilename, 0) {
				return ErrInvalidFilename
			}
		case FieldContent:
			if req.Content == nil {
				return ErrNoContent
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validateStorageName(name string) error {
	if name == "" {
		return ErrEmptyStorageName
	}
	if len(name) > maxNameLength || !storageNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidStorageName, name)
	}
	return nil
}
