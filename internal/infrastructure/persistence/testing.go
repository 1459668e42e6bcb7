//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
	pkgTesting "github.com/Ibrahim98s/secure-signify-vault/internal/pkg/testing"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	CertificateRepo certificates.CertificateRepository
	TimestampRepo   timestamps.TimestampRepository
}

// SetupTestDB initializes an in-memory test database with migrated schema
// and both repositories.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := &config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	logger := pkgTesting.SetupTestLogger(t)

	certificateRepo, err := NewGormCertificateRepository(db, logger)
	require.NoError(t, err, "Failed to create certificate repository")

	timestampRepo, err := NewGormTimestampRepository(db, logger)
	require.NoError(t, err, "Failed to create timestamp repository")

	return &TestContext{
		DB:              db,
		CertificateRepo: certificateRepo,
		TimestampRepo:   timestampRepo,
	}
}

// CreateTestCertificateRecord creates a valid certificate record for tests
func CreateTestCertificateRecord(t *testing.T, subject string, validFrom time.Time) *certificates.CertificateRecord {
	t.Helper()

	return &certificates.CertificateRecord{
		ID:           uuid.NewString(),
		Subject:      subject,
		Issuer:       subject,
		SerialNumber: randomTestSerial(),
		ValidFrom:    validFrom,
		ValidTo:      validFrom.Add(365 * 24 * time.Hour),
		PublicKeyRef: "test-fingerprint",
	}
}

// CreateTestTimestampEntry creates a timestamp history entry for tests
func CreateTestTimestampEntry(t *testing.T, authority string, createdAt time.Time) *timestamps.TimestampEntry {
	t.Helper()

	return &timestamps.TimestampEntry{
		ID:         uuid.NewString(),
		Token:      "ZW5jb2RlZC10b2tlbg==",
		Authority:  authority,
		DataPrefix: "test data",
		CreatedAt:  createdAt,
	}
}

// randomTestSerial derives a unique hex serial from a UUID.
func randomTestSerial() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}
