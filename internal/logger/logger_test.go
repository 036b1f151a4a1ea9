// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, raw []byte) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_EntryFields(t *testing.T) {
	configureGlobals()

	var buf bytes.Buffer
	l := newLogger(&buf, "doc-vault-server")
	l.Info().Str("storage_name", "encrypted_1.txt").Msg("upload stored")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "doc-vault-server", entry["role"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "upload stored", entry["message"])
	assert.Equal(t, "encrypted_1.txt", entry["storage_name"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
}

func TestNewLogger_Globals(t *testing.T) {
	require.NotNil(t, NewLogger("doc-vault-server"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("doc-vault-client", logPath)
	l.Info().Msg("first")
	l.Warn().Msg("second")

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)

	entries := decodeLines(t, raw)
	require.Len(t, entries, 2)
	assert.Equal(t, "doc-vault-client", entries[0]["role"])
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, "warn", entries[1]["level"])
}

func TestNewClientLogger_AppendsToExistingFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "client.log")
	require.NoError(t, os.WriteFile(logPath, []byte(`{"message":"earlier run"}`+"\n"), 0o644))

	NewClientLogger("doc-vault-client", logPath).Info().Msg("this run")

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	entries := decodeLines(t, raw)
	require.Len(t, entries, 2)
	assert.Equal(t, "earlier run", entries[0]["message"])
	assert.Equal(t, "this run", entries[1]["message"])
}

func TestNewClientLogger_UnwritablePath(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "missing", "client.log")

	l := NewClientLogger("doc-vault-client", missingDir)

	require.NotNil(t, l)
	_, err := os.Stat(missingDir)
	assert.True(t, os.IsNotExist(err))
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "doc-vault-client")

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "abc").Logger()

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0]["trace_id"])
	assert.NotContains(t, entries[1], "trace_id")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "doc-vault-client")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("via context")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "doc-vault-client", entries[0]["role"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("no logger attached")
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "doc-vault-server")

	r := httptest.NewRequest("GET", "/files", nil)
	r = r.WithContext(l.WithContext(r.Context()))
	FromRequest(r).Debug().Str("path", r.URL.Path).Msg("request")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "/files", entries[0]["path"])
}
