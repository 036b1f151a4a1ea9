package http

import (
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
)

// multipartMemory is how much of an upload is kept in memory before the
// multipart parser spills to temporary files.
const multipartMemory = 1 << 20

type Handler struct {
	services *service.Services

	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, maxUploadSize int64, logger *logger.Logger) *Handler {
	logger.Info().Int64("max_upload_size", maxUploadSize).Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}
