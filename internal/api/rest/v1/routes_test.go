//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	pkgTesting "github.com/Ibrahim98s/secure-signify-vault/internal/pkg/testing"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	logger := pkgTesting.SetupTestLogger(t)

	keyPairManager, err := cryptography.NewKeyPairManager(logger)
	require.NoError(t, err)
	signatureEngine, err := cryptography.NewSignatureEngine(logger)
	require.NoError(t, err)
	digestEngine, err := cryptography.NewDigestEngine(logger)
	require.NoError(t, err)

	mockCertificateService := new(MockCertificateService)
	mockTimestampService := new(MockTimestampService)

	r := gin.Default()
	SetupRoutes(r, keyPairManager, signatureEngine, digestEngine, mockCertificateService, mockTimestampService)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/keypairs"},
		{"POST", "/api/v1/signatures"},
		{"POST", "/api/v1/signatures/verify"},
		{"POST", "/api/v1/digests"},
		{"POST", "/api/v1/certificates"},
		{"POST", "/api/v1/certificates/import"},
		{"POST", "/api/v1/timestamps"},
		{"POST", "/api/v1/timestamps/verify"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}
