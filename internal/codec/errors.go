package codec

import "errors"

var (
	// ErrFileTooLarge is returned when a file exceeds the size cap.
	ErrFileTooLarge = errors.New("file is too large")

	// ErrMalformedPayload is returned when a payload is not a valid data URL.
	ErrMalformedPayload = errors.New("payload is not a valid data url")

	// ErrReadingFile wraps I/O failures while reading a selected file.
	ErrReadingFile = errors.New("error reading file")
)
