//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
)

// MockCertificateService is a mock implementation of CertificateService
type MockCertificateService struct {
	mock.Mock
}

func (m *MockCertificateService) Issue(ctx context.Context, subject string, validityDays int, keyPair *crypto.KeyPair) (*certificates.CertificateRecord, error) {
	args := m.Called(ctx, subject, validityDays, keyPair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*certificates.CertificateRecord), args.Error(1)
}

func (m *MockCertificateService) List(ctx context.Context) ([]*certificates.CertificateRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*certificates.CertificateRecord), args.Error(1)
}

func (m *MockCertificateService) GetByID(ctx context.Context, id string) (*certificates.CertificateRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*certificates.CertificateRecord), args.Error(1)
}

func (m *MockCertificateService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCertificateService) ExportByID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockCertificateService) Import(ctx context.Context, pemText string) (*certificates.CertificateRecord, error) {
	args := m.Called(ctx, pemText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*certificates.CertificateRecord), args.Error(1)
}

// MockTimestampService is a mock implementation of TimestampService
type MockTimestampService struct {
	mock.Mock
}

func (m *MockTimestampService) Stamp(ctx context.Context, data []byte, authorityID string) (*timestamps.TimestampEntry, error) {
	args := m.Called(ctx, data, authorityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timestamps.TimestampEntry), args.Error(1)
}

func (m *MockTimestampService) Verify(token string) *timestamps.TokenVerification {
	args := m.Called(token)
	return args.Get(0).(*timestamps.TokenVerification)
}

func (m *MockTimestampService) History(ctx context.Context) ([]*timestamps.TimestampEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*timestamps.TimestampEntry), args.Error(1)
}

func (m *MockTimestampService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
