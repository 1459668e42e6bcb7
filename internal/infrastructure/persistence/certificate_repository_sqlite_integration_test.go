//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/persistence/models"
)

func TestCertificateSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t)

	record := CreateTestCertificateRecord(t, "service.example.com", time.Now().UTC())

	err := ctx.CertificateRepo.Create(context.Background(), record)
	require.NoError(t, err)

	var createdModel models.CertificateModel
	err = ctx.DB.First(&createdModel, "id = ?", record.ID).Error
	require.NoError(t, err)
	assert.Equal(t, record.ID, createdModel.ID)
	assert.Equal(t, record.SerialNumber, createdModel.SerialNumber)
}

func TestCertificateSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t)

	invalidRecord := &certificates.CertificateRecord{} // Missing required fields

	err := ctx.CertificateRepo.Create(context.Background(), invalidRecord)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestCertificateSqliteRepository_Create_RejectsMismatchedIssuer(t *testing.T) {
	ctx := SetupTestDB(t)

	record := CreateTestCertificateRecord(t, "service.example.com", time.Now().UTC())
	record.Issuer = "other.example.com"

	err := ctx.CertificateRepo.Create(context.Background(), record)
	assert.Error(t, err)
}

func TestCertificateSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t)

	record := CreateTestCertificateRecord(t, "service.example.com", time.Now().UTC())
	require.NoError(t, ctx.CertificateRepo.Create(context.Background(), record))

	fetched, err := ctx.CertificateRepo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, record.Subject, fetched.Subject)
	assert.Equal(t, record.SerialNumber, fetched.SerialNumber)
}

func TestCertificateSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	record, err := ctx.CertificateRepo.GetByID(context.Background(), uuid.NewString())
	assert.Nil(t, record)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCertificateSqliteRepository_List_OrderedByValidFrom(t *testing.T) {
	ctx := SetupTestDB(t)

	newer := CreateTestCertificateRecord(t, "newer.example.com", time.Now().UTC())
	older := CreateTestCertificateRecord(t, "older.example.com", time.Now().UTC().Add(-48*time.Hour))

	require.NoError(t, ctx.CertificateRepo.Create(context.Background(), newer))
	require.NoError(t, ctx.CertificateRepo.Create(context.Background(), older))

	records, err := ctx.CertificateRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "older.example.com", records[0].Subject)
	assert.Equal(t, "newer.example.com", records[1].Subject)
}

func TestCertificateSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t)

	record := CreateTestCertificateRecord(t, "service.example.com", time.Now().UTC())
	require.NoError(t, ctx.CertificateRepo.Create(context.Background(), record))
	require.NoError(t, ctx.CertificateRepo.DeleteByID(context.Background(), record.ID))

	var deletedModel models.CertificateModel
	err := ctx.DB.First(&deletedModel, "id = ?", record.ID).Error
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestCertificateSqliteRepository_DeleteByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	err := ctx.CertificateRepo.DeleteByID(context.Background(), uuid.NewString())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCertificateSqliteRepository_Create_DuplicateSerial(t *testing.T) {
	ctx := SetupTestDB(t)

	first := CreateTestCertificateRecord(t, "service.example.com", time.Now().UTC())
	require.NoError(t, ctx.CertificateRepo.Create(context.Background(), first))

	second := CreateTestCertificateRecord(t, "service.example.com", time.Now().UTC())
	second.SerialNumber = first.SerialNumber

	err := ctx.CertificateRepo.Create(context.Background(), second)
	assert.Error(t, err)
}
