package service

import "errors"

var (
	// ErrTransport means the vault service could not be reached in time.
	ErrTransport = errors.New("vault service unreachable")

	// ErrNotFound means the requested entry does not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrAlreadyExists means an entry with the same storage name exists.
	ErrAlreadyExists = errors.New("entry already exists")

	// ErrRejected means the vault service refused the request (4xx).
	ErrRejected = errors.New("request rejected by vault service")

	// ErrServerFailure is a 5xx answer that was not routed to the fallback.
	ErrServerFailure = errors.New("vault service failed")

	// ErrFallbackFailed is returned when both the remote save and the local
	// fallback write failed.
	ErrFallbackFailed = errors.New("remote save and local fallback both failed")

	ErrEmptyCiphertext       = errors.New("nothing to save: ciphertext is empty")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
