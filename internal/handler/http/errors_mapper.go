package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/app"
	"github.com/MKhiriev/go-doc-vault/internal/service"
)

type errorResponse struct {
	status int
	detail string
}

// errorResponses is ordered: the first matching target wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidFileID, errorResponse{http.StatusBadRequest, app.MsgInvalidFileID}},
	{ErrNoFileProvided, errorResponse{http.StatusBadRequest, app.MsgNoFileProvided}},
	{ErrMalformedUpload, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrUploadTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgUploadTooLarge}},

	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrNotFound, errorResponse{http.StatusNotFound, app.MsgFileNotFound}},
	{service.ErrAlreadyExists, errorResponse{http.StatusConflict, app.MsgFileAlreadyExists}},
}

func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
