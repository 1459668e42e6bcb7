package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// RestConfig aggregates all settings required by the REST API application.
type RestConfig struct {
	Port      string            `mapstructure:"port"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Authority AuthoritySettings `mapstructure:"authority"`
}

// InitializeRestConfig reads and validates the REST application configuration
// from the given YAML file.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "secure-signify.db")
	v.SetDefault("authority.mode", "authenticated")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Logger.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database settings: %w", err)
	}
	if err := cfg.Authority.Validate(); err != nil {
		return nil, fmt.Errorf("invalid authority settings: %w", err)
	}

	return &cfg, nil
}
