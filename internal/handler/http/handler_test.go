package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/app"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/mock"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	files   *mock.MockFileService
	appInfo *mock.MockAppInfoService
	router  http.Handler
}

func newTestEnv(t *testing.T, maxUploadSize int64) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		files:   mock.NewMockFileService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		FileService:    env.files,
		AppInfoService: env.appInfo,
	}, maxUploadSize, logger.Nop())
	env.router = h.Init(time.Second)

	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func multipartUpload(t *testing.T, storageName, originalName, content string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if storageName != "" {
		part, err := mw.CreateFormFile(uploadFileField, storageName)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField(uploadOriginalNameField, originalName))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var er models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &er))
	return er.Detail
}

func TestStatus(t *testing.T) {
	env := newTestEnv(t, 0)
	env.appInfo.EXPECT().GetStatus(gomock.Any()).Return(app.MsgVaultRunning)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Secure Vault Running"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t, 0)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := env.do(httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestUpload_Saved(t *testing.T) {
	env := newTestEnv(t, 1<<20)
	env.files.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UploadRequest) (models.FileRecord, error) {
			assert.Equal(t, "encrypted_0192.txt", req.StorageName)
			assert.Equal(t, "passport.png", req.OriginalFilename)
			body, err := io.ReadAll(req.Content)
			require.NoError(t, err)
			assert.Equal(t, "U2FsdGVkX1+abc", string(body))
			return models.FileRecord{ID: 7}, nil
		})

	rr := env.do(multipartUpload(t, "encrypted_0192.txt", "passport.png", "U2FsdGVkX1+abc"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Saved"}`, rr.Body.String())
}

func TestUpload_NoFilePart(t *testing.T) {
	env := newTestEnv(t, 1<<20)

	rr := env.do(multipartUpload(t, "", "passport.png", ""))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgNoFileProvided, decodeDetail(t, rr))
}

func TestUpload_NotMultipart(t *testing.T) {
	env := newTestEnv(t, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"file":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := env.do(req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeDetail(t, rr))
}

func TestUpload_TooLarge(t *testing.T) {
	env := newTestEnv(t, 64)

	rr := env.do(multipartUpload(t, "encrypted_1.txt", "a.txt", strings.Repeat("A", 4096)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, app.MsgUploadTooLarge, decodeDetail(t, rr))
}

func TestUpload_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"invalid data", fmt.Errorf("%w: bad storage name", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"duplicate storage name", service.ErrAlreadyExists, http.StatusConflict, app.MsgFileAlreadyExists},
		{"unexpected", assert.AnError, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 1<<20)
			env.files.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.FileRecord{}, tt.err)

			rr := env.do(multipartUpload(t, "encrypted_1.txt", "a.txt", "ct"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
		})
	}
}

func TestListFiles(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("entries newest first as returned", func(t *testing.T) {
		env := newTestEnv(t, 0)
		env.files.EXPECT().List(gomock.Any()).Return([]models.VaultEntry{
			{ID: 2, OriginalFilename: "b.pdf", CreatedAt: models.VaultTime{Time: created}},
			{ID: 1, OriginalFilename: "a.png", CreatedAt: models.VaultTime{Time: created}},
		}, nil)

		rr := env.do(httptest.NewRequest(http.MethodGet, "/files", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[
			{"id":2,"original_filename":"b.pdf","created_at":"2026-03-01T10:00:00Z"},
			{"id":1,"original_filename":"a.png","created_at":"2026-03-01T10:00:00Z"}
		]`, rr.Body.String())
	})

	t.Run("empty vault is an empty array", func(t *testing.T) {
		env := newTestEnv(t, 0)
		env.files.EXPECT().List(gomock.Any()).Return(nil, nil)

		rr := env.do(httptest.NewRequest(http.MethodGet, "/files", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("gzip when accepted", func(t *testing.T) {
		env := newTestEnv(t, 0)
		env.files.EXPECT().List(gomock.Any()).Return([]models.VaultEntry{{ID: 1, OriginalFilename: "a.png"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"original_filename":"a.png","created_at":""}]`, string(plain))
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestEnv(t, 0)
		env.files.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

		rr := env.do(httptest.NewRequest(http.MethodGet, "/files", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, app.MsgInternalServerError, decodeDetail(t, rr))
	})
}

func TestFileContent(t *testing.T) {
	t.Run("ciphertext as text/plain", func(t *testing.T) {
		env := newTestEnv(t, 0)
		env.files.EXPECT().Content(gomock.Any(), int64(42)).Return(models.Ciphertext("U2FsdGVkX1+xyz"), nil)

		rr := env.do(httptest.NewRequest(http.MethodGet, "/files/42/content", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))
		assert.Equal(t, "U2FsdGVkX1+xyz", rr.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		env := newTestEnv(t, 0)
		env.files.EXPECT().Content(gomock.Any(), int64(9)).Return(models.Ciphertext(""), service.ErrNotFound)

		rr := env.do(httptest.NewRequest(http.MethodGet, "/files/9/content", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, app.MsgFileNotFound, decodeDetail(t, rr))
	})

	for _, raw := range []string{"abc", "0", "-3"} {
		t.Run("invalid id "+raw, func(t *testing.T) {
			env := newTestEnv(t, 0)

			rr := env.do(httptest.NewRequest(http.MethodGet, "/files/"+raw+"/content", nil))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, app.MsgInvalidFileID, decodeDetail(t, rr))
		})
	}
}

func TestDeleteFile(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		env := newTestEnv(t, 0)
		env.files.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		rr := env.do(httptest.NewRequest(http.MethodDelete, "/files/3", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"Deleted successfully"}`, rr.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		env := newTestEnv(t, 0)
		env.files.EXPECT().Delete(gomock.Any(), int64(3)).Return(fmt.Errorf("get file 3: %w", service.ErrNotFound))

		rr := env.do(httptest.NewRequest(http.MethodDelete, "/files/3", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "File not found", decodeDetail(t, rr))
	})
}

func TestRouter_UnsupportedMethodIsNotFound(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/upload"},
		{http.MethodGet, "/upload"},
		{http.MethodPost, "/files"},
		{http.MethodPut, "/files/1"},
		{http.MethodPost, "/files/1/content"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			env := newTestEnv(t, 0)

			rr := env.do(httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	env := newTestEnv(t, 0)

	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := env.do(req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}

func TestRouter_EchoesTraceID(t *testing.T) {
	env := newTestEnv(t, 0)
	env.appInfo.EXPECT().GetStatus(gomock.Any()).Return(app.MsgVaultRunning)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := env.do(req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}
