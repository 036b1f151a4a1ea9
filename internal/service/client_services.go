package service

import (
	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

type ClientServices struct {
	VaultService VaultService
}

func NewClientServices(localStore *store.ClientStorages, vaultAdapter adapter.VaultAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		VaultService: NewVaultService(vaultAdapter, localStore.FallbackRepository, cfg, logger),
	}
}
