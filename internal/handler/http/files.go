// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-doc-vault/internal/app"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/go-chi/chi/v5"
)

// Form fields of POST /upload.
const (
	uploadFileField         = "file"
	uploadOriginalNameField = "original_name"
)

// upload stores one ciphertext. The multipart part name "file" carries the
// ciphertext and its filename is the client-generated storage name; the
// "original_name" field carries the plaintext file's name.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(w, r, "*Handler.upload", fmt.Errorf("%w: limit %d bytes", ErrUploadTooLarge, tooLarge.Limit))
			return
		}
		fail(w, r, "*Handler.upload", fmt.Errorf("%w: %w", ErrMalformedUpload, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			fail(w, r, "*Handler.upload", ErrNoFileProvided)
			return
		}
		fail(w, r, "*Handler.upload", fmt.Errorf("%w: %w", ErrMalformedUpload, err))
		return
	}
	defer file.Close()

	rec, err := h.services.FileService.Upload(r.Context(), models.UploadRequest{
		StorageName:      header.Filename,
		OriginalFilename: r.FormValue(uploadOriginalNameField),
		Content:          file,
	})
	if err != nil {
		fail(w, r, "*Handler.upload", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", rec.ID).Int64("size", header.Size).Msg("upload stored")
	writeStatus(w, r, http.StatusOK, app.MsgSaved)
}

// listFiles returns every entry, newest first. An empty vault is [].
func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.FileService.List(r.Context())
	if err != nil {
		fail(w, r, "*Handler.listFiles", err)
		return
	}
	if entries == nil {
		entries = []models.VaultEntry{}
	}

	if _, err = utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listFiles").Msg("error writing response")
	}
}

// fileContent returns the stored ciphertext verbatim as text/plain.
func (h *Handler) fileContent(w http.ResponseWriter, r *http.Request) {
	id, err := fileIDParam(r)
	if err != nil {
		fail(w, r, "*Handler.fileContent", err)
		return
	}

	ct, err := h.services.FileService.Content(r.Context(), id)
	if err != nil {
		fail(w, r, "*Handler.fileContent", err)
		return
	}

	if _, err = utils.WriteText(w, string(ct), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.fileContent").Msg("error writing response")
	}
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := fileIDParam(r)
	if err != nil {
		fail(w, r, "*Handler.deleteFile", err)
		return
	}

	if err = h.services.FileService.Delete(r.Context(), id); err != nil {
		fail(w, r, "*Handler.deleteFile", err)
		return
	}

	writeStatus(w, r, http.StatusOK, app.MsgDeletedSuccessfully)
}

func fileIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFileID, raw)
	}
	return id, nil
}
