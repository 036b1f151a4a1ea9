package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyStorageName      = errors.New("storage name is required")
	ErrInvalidStorageName    = errors.New("storage name must be a plain file name")
	ErrEmptyOriginalFilename = errors.New("original file name is required")
	ErrInvalidFilename       = errors.New("original file name is invalid")
	ErrNoContent             = errors.New("file content is required")
	ErrInvalidFileID         = errors.New("invalid file id")
)
