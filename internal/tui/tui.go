package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	vault     Vault
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(vault Vault, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		vault:     vault,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newModel(ctx, t.vault, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal ui stopped with error")
		return fmt.Errorf("run terminal ui: %w", err)
	}

	t.logger.Info().Msg("terminal ui closed")
	return nil
}
