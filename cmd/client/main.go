package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/adapter"
	"github.com/MKhiriev/go-doc-vault/internal/client"
	"github.com/MKhiriev/go-doc-vault/internal/codec"
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/session"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/tui"
	"github.com/MKhiriev/go-doc-vault/internal/workers"
	"github.com/MKhiriev/go-doc-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, cfgErr := config.GetClientConfig()
	logPath := ""
	if cfg != nil {
		logPath = cfg.App.LogFile
	}

	log := logger.NewClientLogger("doc-vault-client", logPath)
	if cfgErr != nil {
		log.Fatal().Err(cfgErr).Msg("error getting configs")
	}

	vaultAdapter, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create vault adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	cipher, err := crypto.NewCipherEngine(cfg.App.CipherMode)
	if err != nil {
		localStorage.Close()
		log.Fatal().Err(err).Msg("create cipher engine")
	}

	services := service.NewClientServices(localStorage, vaultAdapter, *cfg, log)
	controller := session.NewController(codec.New(cfg.App.MaxFileSize), cipher, services.VaultService, log)

	ui := tui.New(controller, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	jobs := workers.NewWorkers(
		workers.NewReplayJob(services.VaultService, cfg.Workers.ReplayInterval, log),
	)

	app := client.NewApp(ui, jobs, localStorage, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
