//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func consoleSettings(level string) *config.LoggerSettings {
	return &config.LoggerSettings{LogLevel: level, LogType: config.LogTypeConsole}
}

func TestInitLogger(t *testing.T) {
	t.Run("ConsoleLogger", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		require.NoError(t, InitLogger(consoleSettings(config.LogLevelInfo)))

		logger, err := GetLogger()
		require.NoError(t, err)
		require.NotNil(t, logger)
	})

	t.Run("FileLoggerWritesToPath", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		logPath := filepath.Join(t.TempDir(), "app.log")
		require.NoError(t, InitLogger(&config.LoggerSettings{
			LogLevel:   config.LogLevelInfo,
			LogType:    config.LogTypeFile,
			FilePath:   logPath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}))

		logger, err := GetLogger()
		require.NoError(t, err)
		logger.Info("startup complete")

		_, err = os.Stat(logPath)
		assert.NoError(t, err)
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		assert.Error(t, InitLogger(consoleSettings("chatty")))

		logger, err := GetLogger()
		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("UnsupportedLogType", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		err := InitLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  "syslog",
		})
		assert.Error(t, err)
	})

	t.Run("FileLoggerMissingRotationSettings", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		err := InitLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeFile,
			FilePath: filepath.Join(t.TempDir(), "app.log"),
		})
		assert.Error(t, err)
	})

	t.Run("BeforeInit", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		logger, err := GetLogger()
		assert.Nil(t, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not initialized")
	})

	t.Run("SecondInitIsIgnored", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		require.NoError(t, InitLogger(consoleSettings(config.LogLevelInfo)))
		first, err := GetLogger()
		require.NoError(t, err)

		// A later call with different settings must not rebuild the singleton
		require.NoError(t, InitLogger(consoleSettings(config.LogLevelDebug)))
		second, err := GetLogger()
		require.NoError(t, err)

		assert.Same(t, first, second)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "single", formatArgs("single"))
	assert.Equal(t, "helloworld", formatArgs("hello", "world"))
	assert.Equal(t, "processed 3 records", formatArgs("processed ", 3, " records"))
}
