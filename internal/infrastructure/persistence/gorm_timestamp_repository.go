package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/persistence/models"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

type gormTimestampRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTimestampRepository creates a new GORM-based TimestampRepository implementation
func NewGormTimestampRepository(db *gorm.DB, logger logger.Logger) (timestamps.TimestampRepository, error) {
	return &gormTimestampRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTimestampRepository) Create(ctx context.Context, entry *timestamps.TimestampEntry) error {
	model := &models.TimestampModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create timestamp entry: %w", err)
	}

	r.logger.Info("Stored timestamp entry with id ", entry.ID)
	return nil
}

func (r *gormTimestampRepository) List(ctx context.Context) ([]*timestamps.TimestampEntry, error) {
	var modelList []*models.TimestampModel

	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch timestamp entries: %w", err)
	}

	domainList := make([]*timestamps.TimestampEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTimestampRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.TimestampModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete timestamp entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("timestamp entry with id %s not found", id)
	}

	r.logger.Info("Deleted timestamp entry with id ", id)
	return nil
}
