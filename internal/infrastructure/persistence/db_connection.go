package persistence

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/persistence/models"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
)

// NewDBConnection creates a database connection based on settings and
// migrates the store schema.
func NewDBConnection(settings *config.DatabaseSettings) (*gorm.DB, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database settings: %w", err)
	}

	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = gorm.Open(postgres.Open(settings.DSN), &gorm.Config{})
	case config.SqliteDbType:
		db, err = gorm.Open(sqlite.Open(settings.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", settings.Type, err)
	}

	if err := db.AutoMigrate(&models.CertificateModel{}, &models.TimestampModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
