package commands

import (
	"fmt"
	"os"

	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// setupLogger initializes the console logger shared by all CLI commands.
// LOG_LEVEL overrides the default level.
func setupLogger() (logger.Logger, error) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = config.LogLevelInfo
	}

	settings := &config.LoggerSettings{
		LogLevel: level,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("logger initialization failed: %w", err)
	}

	return logger.GetLogger()
}
