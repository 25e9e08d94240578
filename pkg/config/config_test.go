package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifier/pkg/config"
	"github.com/dmitrymomot/notifier/pkg/environment"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "SERVICE_NAME", "LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, environment.Production, cfg.Environment())
	assert.Equal(t, "notifier", cfg.ServiceName)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	unsetAll(t)
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SERVICE_NAME", "demo")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, environment.Development, cfg.Environment())
	assert.Equal(t, "demo", cfg.ServiceName)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_InvalidLevel(t *testing.T) {
	unsetAll(t)
	t.Setenv("LOG_LEVEL", "LOUD")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadFiles(t *testing.T) {
	unsetAll(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=staging\nSERVICE_NAME=from-file\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_ENV")
		_ = os.Unsetenv("SERVICE_NAME")
	})

	cfg, err := config.LoadFiles(path)
	require.NoError(t, err)
	assert.Equal(t, environment.Staging, cfg.Environment())
	assert.Equal(t, "from-file", cfg.ServiceName)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadFiles_Missing(t *testing.T) {
	_, err := config.LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
