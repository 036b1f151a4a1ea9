// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level errors detected by the handlers before the service layer is
// called. Callers can match against them with [errors.Is].
var (
	// ErrInvalidFileID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidFileID = errors.New("invalid file id")

	// ErrNoFileProvided is returned when POST /upload carries no "file" part.
	ErrNoFileProvided = errors.New("no file provided")

	// ErrUploadTooLarge is returned when the upload body exceeds the
	// configured limit.
	ErrUploadTooLarge = errors.New("upload too large")

	// ErrMalformedUpload is returned when the request is not a parseable
	// multipart form.
	ErrMalformedUpload = errors.New("malformed multipart upload")
)
