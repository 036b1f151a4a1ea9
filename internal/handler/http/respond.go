package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

func writeStatus(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if _, err := utils.WriteJSON(w, models.StatusResponse{Status: msg}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeStatus").Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeError").Msg("error writing response")
	}
}

// fail translates err into its status and {"detail": ...} body. Only server
// faults are logged as errors.
func fail(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", resp.status).Msg("request rejected")
	}

	writeError(w, r, resp.status, resp.detail)
}
