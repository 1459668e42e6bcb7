package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
)

// CertificateHandler defines the interface for handling certificate operations
type CertificateHandler interface {
	Issue(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ExportByID(ctx *gin.Context)
	Import(ctx *gin.Context)
}

type certificateHandler struct {
	certificateService certificates.CertificateService
	keyPairManager     crypto.KeyPairManager
}

// NewCertificateHandler creates a new CertificateHandler
func NewCertificateHandler(certificateService certificates.CertificateService, keyPairManager crypto.KeyPairManager) CertificateHandler {
	return &certificateHandler{
		certificateService: certificateService,
		keyPairManager:     keyPairManager,
	}
}

// Issue handles the POST request to issue a self-signed certificate record
// bound to the provided public key.
func (handler *certificateHandler) Issue(ctx *gin.Context) {
	var request IssueCertificateRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid certificate data: %v", err.Error())})
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

	keyPair := &crypto.KeyPair{
		Public:      publicKey,
		Algorithm:   crypto.AlgorithmRSAPSS,
		KeySizeBits: publicKey.Key.N.BitLen(),
	}

	record, err := handler.certificateService.Issue(ctx, request.Subject, request.ValidityDays, keyPair)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error issuing certificate: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, toCertificateResponse(record))
}

// List handles the GET request to list all stored certificate records
func (handler *certificateHandler) List(ctx *gin.Context) {
	records, err := handler.certificateService.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error listing certificates: %v", err.Error())})
		return
	}

	listResponse := []CertificateResponse{}
	for _, record := range records {
		listResponse = append(listResponse, toCertificateResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to fetch a single certificate record
func (handler *certificateHandler) GetByID(ctx *gin.Context) {
	record, err := handler.certificateService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("certificate not found: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, toCertificateResponse(record))
}

// DeleteByID handles the DELETE request to remove a certificate record
func (handler *certificateHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.certificateService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting certificate: %v", err.Error())})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ExportByID handles the GET request to export a record in its textual
// container form.
func (handler *certificateHandler) ExportByID(ctx *gin.Context) {
	pemText, err := handler.certificateService.ExportByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error exporting certificate: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, CertificateExportResponse{Pem: pemText})
}

// Import handles the POST request to import an exported certificate container
func (handler *certificateHandler) Import(ctx *gin.Context) {
	var request ImportCertificateRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid certificate data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	record, err := handler.certificateService.Import(ctx, request.Pem)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error importing certificate: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, toCertificateResponse(record))
}

func toCertificateResponse(record *certificates.CertificateRecord) CertificateResponse {
	return CertificateResponse{
		ID:           record.ID,
		Subject:      record.Subject,
		Issuer:       record.Issuer,
		SerialNumber: record.SerialNumber,
		ValidFrom:    record.ValidFrom,
		ValidTo:      record.ValidTo,
		PublicKeyRef: record.PublicKeyRef,
		Status:       certificates.RecordStatus(record, time.Now().UTC()),
	}
}
