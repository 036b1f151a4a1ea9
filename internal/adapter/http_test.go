// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

func newTestAdapter(t *testing.T, serverURL string, timeout time.Duration) *httpVaultAdapter {
	t.Helper()
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	a, err := NewHTTPVaultAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpVaultAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "127.0.0.1:8000", want: "http://127.0.0.1:8000"},
		{in: "http://vault.local:8000/", want: "http://vault.local:8000"},
		{in: "  https://vault.local  ", want: "https://vault.local"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Status ──────────────────────────────────────────────────────────────────

func TestStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"Secure Vault Running"}`))
	}))
	defer srv.Close()

	status, err := newTestAdapter(t, srv.URL, 0).Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Secure Vault Running", status)
}

// ── Upload ──────────────────────────────────────────────────────────────────

func TestUpload_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "passport.png", r.FormValue("original_name"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "encrypted_1.txt", hdr.Filename)
		assert.Equal(t, "text/plain", hdr.Header.Get("Content-Type"))

		body, _ := io.ReadAll(f)
		assert.Equal(t, "U2FsdGVkX18=", string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"Saved"}`))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, 0).Upload(context.Background(), "encrypted_1.txt", "passport.png", "U2FsdGVkX18=")
	require.NoError(t, err)
}

func TestUpload_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"detail":"missing file"}`, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "conflict", status: http.StatusConflict, body: `{"detail":"file already exists"}`, wantErr: ErrConflict},
		{name: "too large", status: http.StatusRequestEntityTooLarge, wantErr: ErrRequestTooLarge},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "method not allowed", status: http.StatusMethodNotAllowed, wantErr: ErrClientError},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, body: `{"detail":"field required"}`, wantErr: ErrClientError},
		{name: "too many requests", status: http.StatusTooManyRequests, wantErr: ErrClientError},
		{name: "not implemented", status: http.StatusNotImplemented, wantErr: ErrServerError},
		{name: "insufficient storage", status: http.StatusInsufficientStorage, wantErr: ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL, 0).Upload(context.Background(), "s", "o", "ct")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrTransport)
		})
	}
}

func TestUpload_DetailIsExtracted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"missing file"}`))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, 0).Upload(context.Background(), "s", "o", "ct")
	require.Error(t, err)
	assert.Equal(t, "bad request: missing file", err.Error())
}

func TestUpload_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url, 0).Upload(context.Background(), "s", "o", "ct")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestUpload_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	err := newTestAdapter(t, srv.URL, 50*time.Millisecond).Upload(context.Background(), "s", "o", "ct")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── ListFiles ───────────────────────────────────────────────────────────────

func TestListFiles_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/files", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":2,"original_filename":"b.pdf","created_at":"2026-03-02 10:00:00"},
			{"id":1,"original_filename":"a.png","created_at":"2026-03-01T10:00:00Z"}
		]`))
	}))
	defer srv.Close()

	entries, err := newTestAdapter(t, srv.URL, 0).ListFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].ID)
	assert.Equal(t, "b.pdf", entries[0].OriginalFilename)
	assert.Equal(t, 2026, entries[0].CreatedAt.Year())
	assert.Equal(t, int64(1), entries[1].ID)
}

func TestListFiles_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	entries, err := newTestAdapter(t, srv.URL, 0).ListFiles(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListFiles_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, 0).ListFiles(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

// ── FetchContent ────────────────────────────────────────────────────────────

func TestFetchContent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/42/content", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("U2FsdGVkX18BAgMEBQYHCA==\n"))
	}))
	defer srv.Close()

	ct, err := newTestAdapter(t, srv.URL, 0).FetchContent(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.Ciphertext("U2FsdGVkX18BAgMEBQYHCA=="), ct)
}

func TestFetchContent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"File not found"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, 0).FetchContent(context.Background(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/files/1" {
			_, _ = w.Write([]byte(`{"status":"Deleted successfully"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"File not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	require.NoError(t, a.Delete(context.Background(), 1))

	err := a.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsServerError(t *testing.T) {
	assert.True(t, IsServerError(ErrInternalServerError))
	assert.True(t, IsServerError(ErrServiceUnavailable))
	assert.True(t, IsServerError(ErrServerError))
	assert.False(t, IsServerError(ErrClientError))
	assert.False(t, IsServerError(ErrNotFound))
	assert.False(t, IsServerError(ErrTransport))
}
