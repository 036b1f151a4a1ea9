package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/app"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService("1.0.0", logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService("", logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetStatus / GetAppVersion
// ─────────────────────────────────────────────

func TestGetStatus_ReportsRunning(t *testing.T) {
	svc, err := NewAppInfoService("1.0.0", logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, app.MsgVaultRunning, svc.GetStatus(context.Background()))
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService("1.0.0", logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService("v1.2.3-beta+build.42", logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "v1.2.3-beta+build.42", svc2.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService("1.0.0", logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
