package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
)

// DigestHandler defines the interface for handling digest operations
type DigestHandler interface {
	Compute(ctx *gin.Context)
}

type digestHandler struct {
	digestEngine crypto.DigestEngine
}

// NewDigestHandler creates a new DigestHandler
func NewDigestHandler(digestEngine crypto.DigestEngine) DigestHandler {
	return &digestHandler{
		digestEngine: digestEngine,
	}
}

// Compute handles the POST request to compute a digest over the provided data
func (handler *digestHandler) Compute(ctx *gin.Context) {
	var request DigestRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid digest data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	result, err := handler.digestEngine.Hash([]byte(request.Data), request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error computing digest: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, HashResponse{
		Algorithm:      result.Algorithm,
		DigestHex:      result.DigestHex,
		InputSizeBytes: result.InputSizeBytes,
		ComputedAt:     result.ComputedAt,
	})
}
