// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MAX_UPLOAD_MB": "8",
		"APP_DEFAULT_MODE":  "ai",
		"APP_NUDGE_DELAY":   "2s",

		"ADAPTER_ADDRESS":         "localhost:5000",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"WORKERS_STATUS_INTERVAL": "1m",

		"LOG_FILE":  "/var/log/chat.log",
		"LOG_LEVEL": "info",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, 8, cfg.App.MaxUploadMB)
	assert.Equal(t, "ai", cfg.App.DefaultMode)
	assert.Equal(t, 2*time.Second, cfg.App.NudgeDelay)
	assert.Equal(t, "localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.StatusInterval)
	assert.Equal(t, "/var/log/chat.log", cfg.Log.FilePath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "forever")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
