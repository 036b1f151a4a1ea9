package service

import (
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

type Services struct {
	FileService    FileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	files := NewFileService(storages.FileRepository, storages.BlobStorage, logger)

	return &Services{
		FileService:    NewFileValidationService().Wrap(files),
		AppInfoService: appInfo,
	}, nil
}
