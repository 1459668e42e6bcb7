package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyPairManager crypto.KeyPairManager,
	signatureEngine crypto.SignatureEngine,
	digestEngine crypto.DigestEngine,
	certificateService certificates.CertificateService,
	timestampService timestamps.TimestampService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Key pair routes
	keyPairHandler := NewKeyPairHandler(keyPairManager)
	v1.POST("/keypairs", keyPairHandler.Generate)

	// Signature routes
	signatureHandler := NewSignatureHandler(keyPairManager, signatureEngine)
	v1.POST("/signatures", signatureHandler.Sign)
	v1.POST("/signatures/verify", signatureHandler.Verify)

	// Digest routes
	digestHandler := NewDigestHandler(digestEngine)
	v1.POST("/digests", digestHandler.Compute)

	// Certificate routes
	certificateHandler := NewCertificateHandler(certificateService, keyPairManager)
	v1.POST("/certificates", certificateHandler.Issue)
	v1.POST("/certificates/import", certificateHandler.Import)
	v1.GET("/certificates", certificateHandler.List)
	v1.GET("/certificates/:id", certificateHandler.GetByID)
	v1.GET("/certificates/:id/export", certificateHandler.ExportByID)
	v1.DELETE("/certificates/:id", certificateHandler.DeleteByID)

	// Timestamp routes
	timestampHandler := NewTimestampHandler(timestampService)
	v1.POST("/timestamps", timestampHandler.Create)
	v1.POST("/timestamps/verify", timestampHandler.Verify)
	v1.GET("/timestamps", timestampHandler.History)
	v1.DELETE("/timestamps/:id", timestampHandler.DeleteByID)
}
