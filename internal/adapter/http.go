package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// Form fields of POST /upload.
const (
	uploadFileField         = "file"
	uploadOriginalNameField = "original_name"
	ciphertextContentType   = "text/plain"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs an HTTP/REST implementation of [VaultAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPVaultAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpVaultAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Status implements [VaultAdapter]. GET /.
func (h *httpVaultAdapter) Status(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return "", transportError("status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var status models.StatusResponse
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return "", fmt.Errorf("%w: decode status response: %w", ErrUnexpectedResponse, err)
	}

	return status.Status, nil
}

// Upload implements [VaultAdapter]. It sends the ciphertext as a multipart
// text/plain file part named after storageName, plus the original_name field,
// to POST /upload.
func (h *httpVaultAdapter) Upload(ctx context.Context, storageName, originalFilename string, ct models.Ciphertext) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartField(uploadFileField, storageName, ciphertextContentType, strings.NewReader(string(ct))).
		SetMultipartFormData(map[string]string{uploadOriginalNameField: originalFilename}).
		Post("/upload")
	if err != nil {
		return transportError("upload", err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("storage_name", storageName).Msg("vault rejected upload")
		return err
	}

	return nil
}

// ListFiles implements [VaultAdapter]. GET /files.
func (h *httpVaultAdapter) ListFiles(ctx context.Context) ([]models.VaultEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/files")
	if err != nil {
		return nil, transportError("list files", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	entries := make([]models.VaultEntry, 0)
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("%w: decode list response: %w", ErrUnexpectedResponse, err)
	}

	return entries, nil
}

// FetchContent implements [VaultAdapter]. GET /files/{id}/content.
func (h *httpVaultAdapter) FetchContent(ctx context.Context, id int64) (models.Ciphertext, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/files/{id}/content")
	if err != nil {
		return "", transportError("fetch content", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return models.Ciphertext(strings.TrimSpace(resp.String())), nil
}

// Delete implements [VaultAdapter]. DELETE /files/{id}.
func (h *httpVaultAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/files/{id}")
	if err != nil {
		return transportError("delete", err)
	}

	return mapHTTPError(resp)
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
}
