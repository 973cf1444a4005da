package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresOrigin(t *testing.T) {
	t.Setenv("FIXIT_API_ORIGIN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIXIT_API_ORIGIN")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FIXIT_API_ORIGIN", "https://app.example.com")
	t.Setenv("FIXIT_ADMIN_TOKEN", "")
	t.Setenv("FIXIT_CREDENTIALS_FILE", "")
	t.Setenv("FIXIT_POLL_INTERVAL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com", cfg.APIOrigin)
	assert.Equal(t, "30s", cfg.PollInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NotEmpty(t, cfg.CredentialsFile, "falls back to a path under the home directory")
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	t.Setenv("FIXIT_API_ORIGIN", "http://localhost:5000")
	t.Setenv("FIXIT_ADMIN_TOKEN", "ADMIN123")
	t.Setenv("FIXIT_CREDENTIALS_FILE", "/tmp/creds.json")
	t.Setenv("FIXIT_POLL_INTERVAL", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ADMIN123", cfg.AdminToken)
	assert.Equal(t, "/tmp/creds.json", cfg.CredentialsFile)
	assert.Equal(t, "5s", cfg.PollInterval)
}
