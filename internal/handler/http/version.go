package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
)

// status answers GET / with {"status": "Secure Vault Running"}.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusOK, h.services.AppInfoService.GetStatus(r.Context()))
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, serverVersion, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}
