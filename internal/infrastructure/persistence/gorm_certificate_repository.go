package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/persistence/models"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

type gormCertificateRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCertificateRepository creates a new GORM-based CertificateRepository implementation
func NewGormCertificateRepository(db *gorm.DB, logger logger.Logger) (certificates.CertificateRepository, error) {
	return &gormCertificateRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCertificateRepository) Create(ctx context.Context, record *certificates.CertificateRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CertificateModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create certificate record: %w", err)
	}

	r.logger.Info("Stored certificate record with id ", record.ID)
	return nil
}

func (r *gormCertificateRepository) List(ctx context.Context) ([]*certificates.CertificateRecord, error) {
	var modelList []*models.CertificateModel

	if err := r.db.WithContext(ctx).Order("valid_from asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch certificate records: %w", err)
	}

	domainList := make([]*certificates.CertificateRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCertificateRepository) GetByID(ctx context.Context, id string) (*certificates.CertificateRecord, error) {
	var model models.CertificateModel

	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("certificate record with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch certificate record: %w", err)
	}

	return model.ToDomain(), nil
}

func (r *gormCertificateRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.CertificateModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete certificate record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("certificate record with id %s not found", id)
	}

	r.logger.Info("Deleted certificate record with id ", id)
	return nil
}
