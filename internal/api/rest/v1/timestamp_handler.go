package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
)

// TimestampHandler defines the interface for handling timestamp operations
type TimestampHandler interface {
	Create(ctx *gin.Context)
	Verify(ctx *gin.Context)
	History(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type timestampHandler struct {
	timestampService timestamps.TimestampService
}

// NewTimestampHandler creates a new TimestampHandler
func NewTimestampHandler(timestampService timestamps.TimestampService) TimestampHandler {
	return &timestampHandler{
		timestampService: timestampService,
	}
}

// Create handles the POST request to create a timestamp token and record it
// in the history.
func (handler *timestampHandler) Create(ctx *gin.Context) {
	var request CreateTimestampRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid timestamp data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	entry, err := handler.timestampService.Stamp(ctx, []byte(request.Data), request.Authority)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating timestamp: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, toTimestampEntryResponse(entry))
}

// Verify handles the POST request to verify a timestamp token. An invalid
// token is a regular negative outcome, not an error status.
func (handler *timestampHandler) Verify(ctx *gin.Context) {
	var request VerifyTimestampRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid verification data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	verification := handler.timestampService.Verify(request.Token)

	response := VerifyTimestampResponse{Valid: verification.Valid}
	if verification.Valid {
		timestamp := verification.Timestamp
		response.Timestamp = &timestamp
		response.Authority = verification.Authority
	}

	ctx.JSON(http.StatusOK, response)
}

// History handles the GET request to list all recorded timestamp entries
func (handler *timestampHandler) History(ctx *gin.Context) {
	entries, err := handler.timestampService.History(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error listing timestamps: %v", err.Error())})
		return
	}

	listResponse := []TimestampEntryResponse{}
	for _, entry := range entries {
		listResponse = append(listResponse, toTimestampEntryResponse(entry))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// DeleteByID handles the DELETE request to remove a timestamp entry
func (handler *timestampHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.timestampService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting timestamp: %v", err.Error())})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toTimestampEntryResponse(entry *timestamps.TimestampEntry) TimestampEntryResponse {
	return TimestampEntryResponse{
		ID:         entry.ID,
		Token:      entry.Token,
		Authority:  entry.Authority,
		DataPrefix: entry.DataPrefix,
		CreatedAt:  entry.CreatedAt,
	}
}
