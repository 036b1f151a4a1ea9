package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-doc-vault/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorDetail(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrRequestTooLarge, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerError, resp.StatusCode(), body)
	case resp.StatusCode() >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrClientError, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}

// errorDetail extracts {"detail": "..."} bodies and falls back to raw text.
func errorDetail(raw []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Detail != "" {
		return er.Detail
	}
	return strings.TrimSpace(string(raw))
}

// IsServerError reports whether err is a 5xx mapped by this package.
func IsServerError(err error) bool {
	for _, target := range []error{ErrInternalServerError, ErrBadGateway, ErrServiceUnavailable, ErrServerError} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
