package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "doc-vault-client"

// HTTPClient embeds *resty.Client so callers build requests with R().
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Every request carries the
// client user agent and gives up after timeout; a non-positive timeout
// disables the limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
