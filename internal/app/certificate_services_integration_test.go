//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateService_IssueAndGet(t *testing.T) {
	ctx := SetupServiceTest(t)

	record, err := ctx.CertificateService.Issue(context.Background(), "service.example.com", 365, ctx.KeyPair)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "service.example.com", record.Subject)
	assert.Equal(t, record.Subject, record.Issuer)

	fetched, err := ctx.CertificateService.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.SerialNumber, fetched.SerialNumber)
}

func TestCertificateService_Issue_InvalidInput(t *testing.T) {
	ctx := SetupServiceTest(t)

	_, err := ctx.CertificateService.Issue(context.Background(), "", 365, ctx.KeyPair)
	assert.Error(t, err)

	_, err = ctx.CertificateService.Issue(context.Background(), "service.example.com", 0, ctx.KeyPair)
	assert.Error(t, err)
}

func TestCertificateService_List(t *testing.T) {
	ctx := SetupServiceTest(t)

	_, err := ctx.CertificateService.Issue(context.Background(), "first.example.com", 30, ctx.KeyPair)
	require.NoError(t, err)
	_, err = ctx.CertificateService.Issue(context.Background(), "second.example.com", 60, ctx.KeyPair)
	require.NoError(t, err)

	records, err := ctx.CertificateService.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCertificateService_ExportAndImport(t *testing.T) {
	ctx := SetupServiceTest(t)

	record, err := ctx.CertificateService.Issue(context.Background(), "roundtrip.example.com", 90, ctx.KeyPair)
	require.NoError(t, err)

	pemText, err := ctx.CertificateService.ExportByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Contains(t, pemText, "BEGIN CERTIFICATE")

	// Delete, then restore from the exported container
	require.NoError(t, ctx.CertificateService.DeleteByID(context.Background(), record.ID))

	imported, err := ctx.CertificateService.Import(context.Background(), pemText)
	require.NoError(t, err)
	assert.Equal(t, record.ID, imported.ID)
	assert.Equal(t, record.SerialNumber, imported.SerialNumber)
}

func TestCertificateService_DeleteByID(t *testing.T) {
	ctx := SetupServiceTest(t)

	record, err := ctx.CertificateService.Issue(context.Background(), "delete.example.com", 30, ctx.KeyPair)
	require.NoError(t, err)

	require.NoError(t, ctx.CertificateService.DeleteByID(context.Background(), record.ID))

	_, err = ctx.CertificateService.GetByID(context.Background(), record.ID)
	assert.Error(t, err)
}

func TestCertificateService_GetByID_NotFound(t *testing.T) {
	ctx := SetupServiceTest(t)

	_, err := ctx.CertificateService.GetByID(context.Background(), uuid.NewString())
	assert.Error(t, err)
}
