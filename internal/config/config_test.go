package config_test

import (
	"os"
	"testing"

	"kaapi/backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	os.Setenv("KAAPI_ADDR", ":9999")
	os.Setenv("KAAPI_DATA_DIR", "/tmp/kaapi")
	os.Setenv("KAAPI_LOG_LEVEL", "debug")
	os.Setenv("KAAPI_APP_BASE_URL", "https://dash.example.com/")
	os.Setenv("KAAPI_MAX_UPLOAD_BYTES", "1024")
	defer func() {
		os.Unsetenv("KAAPI_ADDR")
		os.Unsetenv("KAAPI_DATA_DIR")
		os.Unsetenv("KAAPI_LOG_LEVEL")
		os.Unsetenv("KAAPI_APP_BASE_URL")
		os.Unsetenv("KAAPI_MAX_UPLOAD_BYTES")
	}()

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/kaapi", cfg.DataDir)
	require.Contains(t, cfg.DBPath, "/tmp/kaapi/kaapi.db")
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "https://dash.example.com", cfg.AppBaseURL)
	require.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("KAAPI_ADDR")
	os.Unsetenv("KAAPI_DATA_DIR")
	os.Unsetenv("KAAPI_DB_PATH")
	os.Unsetenv("KAAPI_LOG_LEVEL")
	os.Unsetenv("KAAPI_MAX_UPLOAD_BYTES")

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "data", cfg.DataDir)
	require.Contains(t, cfg.DBPath, "kaapi.db")
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "http://localhost:3000", cfg.AppBaseURL)
	require.Equal(t, int64(config.DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	require.Equal(t, "anthropic", cfg.AIProvider)
}

func TestLoad_InvalidMaxUploadIgnored(t *testing.T) {
	os.Setenv("KAAPI_MAX_UPLOAD_BYTES", "not-a-number")
	defer os.Unsetenv("KAAPI_MAX_UPLOAD_BYTES")

	cfg := config.Load()
	require.Equal(t, int64(config.DefaultMaxUploadBytes), cfg.MaxUploadBytes)
}
