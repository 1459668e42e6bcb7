//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/persistence"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
	pkgTesting "github.com/Ibrahim98s/secure-signify-vault/internal/pkg/testing"
)

// ServiceTestContext wires real services against an in-memory database
type ServiceTestContext struct {
	CertificateService certificates.CertificateService
	TimestampService   timestamps.TimestampService
	KeyPair            *crypto.KeyPair
}

// SetupServiceTest builds both services on top of a fresh sqlite store and a
// generated key pair.
func SetupServiceTest(t *testing.T) *ServiceTestContext {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)

	db, err := persistence.NewDBConnection(&config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	})
	require.NoError(t, err, "Failed to create database connection")

	certificateRepo, err := persistence.NewGormCertificateRepository(db, logger)
	require.NoError(t, err)
	timestampRepo, err := persistence.NewGormTimestampRepository(db, logger)
	require.NoError(t, err)

	issuer, err := cryptography.NewCertificateIssuer(nil, nil, logger)
	require.NoError(t, err)

	authority, err := cryptography.NewTimestampAuthority(&config.AuthoritySettings{
		Mode:   timestamps.ModeAuthenticated,
		Secret: "0123456789abcdef0123456789abcdef",
	}, nil, nil, logger)
	require.NoError(t, err)

	certificateService, err := NewCertificateService(issuer, certificateRepo, logger)
	require.NoError(t, err)
	timestampService, err := NewTimestampService(authority, timestampRepo, logger)
	require.NoError(t, err)

	keyPairManager, err := cryptography.NewKeyPairManager(logger)
	require.NoError(t, err)
	keyPair, err := keyPairManager.GenerateKeyPair(context.Background(), 2048)
	require.NoError(t, err)

	return &ServiceTestContext{
		CertificateService: certificateService,
		TimestampService:   timestampService,
		KeyPair:            keyPair,
	}
}
