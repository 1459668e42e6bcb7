package v1

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
)

// SignatureHandler defines the interface for handling signing and
// verification operations
type SignatureHandler interface {
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type signatureHandler struct {
	keyPairManager  crypto.KeyPairManager
	signatureEngine crypto.SignatureEngine
}

// NewSignatureHandler creates a new SignatureHandler
func NewSignatureHandler(keyPairManager crypto.KeyPairManager, signatureEngine crypto.SignatureEngine) SignatureHandler {
	return &signatureHandler{
		keyPairManager:  keyPairManager,
		signatureEngine: signatureEngine,
	}
}

// Sign handles the POST request to sign a message with a PEM-encoded private key
func (handler *signatureHandler) Sign(ctx *gin.Context) {
	var request SignRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid signing data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	privateKey, err := handler.keyPairManager.ImportPrivateKey(request.PrivateKeyPem)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error importing private key: %v", err.Error())})
		return
	}

	saltLength := request.SaltLength
	if saltLength == 0 {
		saltLength = crypto.DefaultSaltLength
	}

	result, err := handler.signatureEngine.Sign([]byte(request.Message), privateKey, saltLength)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error signing message: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, SignatureResponse{
		Signature:   base64.StdEncoding.EncodeToString(result.Signature),
		Algorithm:   result.Algorithm,
		KeySizeBits: result.KeySizeBits,
		CreatedAt:   result.CreatedAt,
	})
}

// Verify handles the POST request to verify a signature against a message.
// Verification failures are a regular negative outcome, not an error status.
func (handler *signatureHandler) Verify(ctx *gin.Context) {
	var request VerifySignatureRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid verification data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	publicKey, err := handler.keyPairManager.ImportPublicKey(request.PublicKeyPem)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error importing public key: %v", err.Error())})
		return
	}

	valid := handler.signatureEngine.Verify([]byte(request.Message), request.Signature, publicKey)

	ctx.JSON(http.StatusOK, VerifySignatureResponse{Valid: valid})
}
