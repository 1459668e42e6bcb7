package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
)

// KeyPairHandler defines the interface for handling key pair operations
type KeyPairHandler interface {
	Generate(ctx *gin.Context)
}

type keyPairHandler struct {
	keyPairManager crypto.KeyPairManager
}

// NewKeyPairHandler creates a new KeyPairHandler
func NewKeyPairHandler(keyPairManager crypto.KeyPairManager) KeyPairHandler {
	return &keyPairHandler{
		keyPairManager: keyPairManager,
	}
}

// Generate handles the POST request to generate an RSA-PSS key pair and
// return both halves in PEM form. The caller owns the key material; nothing
// is persisted server-side.
func (handler *keyPairHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyPairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key pair data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	keyPair, err := handler.keyPairManager.GenerateKeyPair(ctx, int(request.KeySize))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error generating key pair: %v", err.Error())})
		return
	}

	publicKeyPem, err := handler.keyPairManager.ExportPublicKey(keyPair.Public)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error exporting public key: %v", err.Error())})
		return
	}

	privateKeyPem, err := handler.keyPairManager.ExportPrivateKey(keyPair.Private)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error exporting private key: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, KeyPairResponse{
		PublicKeyPem:  publicKeyPem,
		PrivateKeyPem: privateKeyPem,
		Algorithm:     keyPair.Algorithm,
		KeySizeBits:   keyPair.KeySizeBits,
	})
}
