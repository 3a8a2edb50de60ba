package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "https://jsonplaceholder.typicode.com", cfg.Upstream.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	require.Equal(t, ":memory:", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  host: 127.0.0.1
  port: 9090
upstream:
  base_url: http://localhost:4000
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("PULSEBOARD_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "http://localhost:4000", cfg.Upstream.BaseURL)
	require.Equal(t, "debug", cfg.Log.Level)

	// File values leave untouched fields at their defaults.
	require.Equal(t, ":memory:", cfg.DB.Path)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600))
	t.Setenv("PULSEBOARD_CONFIG_PATH", path)
	t.Setenv("PULSEBOARD_SERVER_PORT", "7070")
	t.Setenv("PULSEBOARD_UPSTREAM_TIMEOUT", "5s")
	t.Setenv("PULSEBOARD_TRANSPORT_MODE", "stdio")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	require.Equal(t, "stdio", cfg.Transport.Mode)
}

func TestLoadInvalidValues(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PULSEBOARD_SERVER_PORT", "not-a-port")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("PULSEBOARD_UPSTREAM_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("PULSEBOARD_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := Load()
		require.Error(t, err)
	})
}
