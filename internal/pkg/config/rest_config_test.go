//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("FullConfig", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
authority:
  mode: authenticated
  secret: "0123456789abcdef0123456789abcdef"
`)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "debug", cfg.Logger.LogLevel)
		assert.Equal(t, SqliteDbType, cfg.Database.Type)
		assert.Equal(t, "authenticated", cfg.Authority.Mode)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		path := writeConfigFile(t, `
authority:
  secret: "0123456789abcdef0123456789abcdef"
`)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
		assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
		assert.Equal(t, SqliteDbType, cfg.Database.Type)
		assert.Equal(t, "authenticated", cfg.Authority.Mode)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
		assert.Error(t, err)
	})

	t.Run("InvalidAuthoritySettings", func(t *testing.T) {
		path := writeConfigFile(t, `
authority:
  mode: authenticated
  secret: "too-short"
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("InvalidLoggerSettings", func(t *testing.T) {
		path := writeConfigFile(t, `
logger:
  log_level: noisy
  log_type: console
authority:
  secret: "0123456789abcdef0123456789abcdef"
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
