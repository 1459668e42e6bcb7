package app

import (
	"context"
	"fmt"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// certificateService implements the CertificateService interface, wiring the
// issuer to the caller-owned certificate store.
type certificateService struct {
	issuer          certificates.CertificateIssuer
	certificateRepo certificates.CertificateRepository
	logger          logger.Logger
}

// NewCertificateService creates a new certificateService instance
func NewCertificateService(
	issuer certificates.CertificateIssuer,
	certificateRepo certificates.CertificateRepository,
	logger logger.Logger,
) (certificates.CertificateService, error) {
	return &certificateService{
		issuer:          issuer,
		certificateRepo: certificateRepo,
		logger:          logger,
	}, nil
}

// Issue creates a self-signed record and persists it in the store.
func (s *certificateService) Issue(ctx context.Context, subject string, validityDays int, keyPair *crypto.KeyPair) (*certificates.CertificateRecord, error) {
	record, err := s.issuer.IssueSelfSigned(subject, validityDays, keyPair)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.certificateRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return record, nil
}

// List retrieves all stored certificate records.
func (s *certificateService) List(ctx context.Context) ([]*certificates.CertificateRecord, error) {
	records, err := s.certificateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return records, nil
}

// GetByID retrieves a stored certificate record by its unique ID.
func (s *certificateService) GetByID(ctx context.Context, id string) (*certificates.CertificateRecord, error) {
	record, err := s.certificateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return record, nil
}

// DeleteByID removes a certificate record from the store.
func (s *certificateService) DeleteByID(ctx context.Context, id string) error {
	if err := s.certificateRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ExportByID encodes a stored record in its textual container form.
func (s *certificateService) ExportByID(ctx context.Context, id string) (string, error) {
	record, err := s.certificateRepo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	pemText, err := s.issuer.ExportRecord(record)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	return pemText, nil
}

// Import decodes a textual container and persists the record.
func (s *certificateService) Import(ctx context.Context, pemText string) (*certificates.CertificateRecord, error) {
	record, err := s.issuer.ImportRecord(pemText)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.certificateRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return record, nil
}
