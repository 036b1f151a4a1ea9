package service

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/internal/app"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(version string, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetStatus(ctx context.Context) string {
	return app.MsgVaultRunning
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
