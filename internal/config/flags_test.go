package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_All(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "http://backend:5000",
		"-request-timeout", "45s",
		"-max-upload-mb", "32",
		"-mode", "ai",
		"-nudge-delay", "3s",
		"-status-interval", "10s",
		"-log-file", "/tmp/chat.log",
		"-log-level", "info",
		"-config", "/etc/chat.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://backend:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 32, cfg.App.MaxUploadMB)
	assert.Equal(t, "ai", cfg.App.DefaultMode)
	assert.Equal(t, 3*time.Second, cfg.App.NudgeDelay)
	assert.Equal(t, 10*time.Second, cfg.Workers.StatusInterval)
	assert.Equal(t, "/tmp/chat.log", cfg.Log.FilePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/etc/chat.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-status-interval", "often"})
	assert.Error(t, err)
}
