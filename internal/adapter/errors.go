package adapter

import "errors"

var (
	// ErrTransport means the request never got an HTTP response: the service
	// is unreachable or the deadline expired.
	ErrTransport = errors.New("vault service unreachable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRequestTooLarge     = errors.New("request entity too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrClientError and ErrServerError cover 4xx and 5xx statuses with no
	// dedicated sentinel above.
	ErrClientError = errors.New("request refused by vault service")
	ErrServerError = errors.New("vault service error")

	// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response from vault service")
)
