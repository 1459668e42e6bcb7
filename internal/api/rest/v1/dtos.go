package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/validators"
)

// ErrorResponse is the uniform error body returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message"`
}

// GenerateKeyPairRequest is the request body for key pair generation.
type GenerateKeyPairRequest struct {
	Algorithm string `json:"algorithm" validate:"required,oneof=RSA-PSS"`
	KeySize   uint32 `json:"keySize" validate:"required,keySizeValidation"`
}

// Validate for validating GenerateKeyPairRequest struct
func (r *GenerateKeyPairRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keySizeValidation", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return translateValidationError(validate.Struct(r))
}

// KeyPairResponse carries a freshly generated key pair in PEM form.
type KeyPairResponse struct {
	PublicKeyPem  string `json:"publicKeyPem"`
	PrivateKeyPem string `json:"privateKeyPem"`
	Algorithm     string `json:"algorithm"`
	KeySizeBits   int    `json:"keySizeBits"`
}

// SignRequest is the request body for signing a message.
type SignRequest struct {
	Message       string `json:"message" validate:"required"`
	PrivateKeyPem string `json:"privateKeyPem" validate:"required"`
	SaltLength    int    `json:"saltLength" validate:"omitempty,gt=0"`
}

// Validate for validating SignRequest struct
func (r *SignRequest) Validate() error {
	validate := validator.New()
	return translateValidationError(validate.Struct(r))
}

// SignatureResponse carries a produced signature and its metadata.
type SignatureResponse struct {
	Signature   string    `json:"signature"`
	Algorithm   string    `json:"algorithm"`
	KeySizeBits int       `json:"keySizeBits"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VerifySignatureRequest is the request body for verifying a signature.
type VerifySignatureRequest struct {
	Message      string `json:"message" validate:"required"`
	Signature    string `json:"signature" validate:"required"`
	PublicKeyPem string `json:"publicKeyPem" validate:"required"`
}

// Validate for validating VerifySignatureRequest struct
func (r *VerifySignatureRequest) Validate() error {
	validate := validator.New()
	return translateValidationError(validate.Struct(r))
}

// VerifySignatureResponse reports the verification outcome.
type VerifySignatureResponse struct {
	Valid bool `json:"valid"`
}

// DigestRequest is the request body for computing a digest.
type DigestRequest struct {
	Data      string `json:"data" validate:"required"`
	Algorithm string `json:"algorithm" validate:"required,oneof=SHA-1 SHA-256 SHA-384 SHA-512 MD5"`
}

// Validate for validating DigestRequest struct
func (r *DigestRequest) Validate() error {
	validate := validator.New()
	return translateValidationError(validate.Struct(r))
}

// HashResponse carries a computed digest and its metadata.
type HashResponse struct {
	Algorithm      string    `json:"algorithm"`
	DigestHex      string    `json:"digestHex"`
	InputSizeBytes int       `json:"inputSizeBytes"`
	ComputedAt     time.Time `json:"computedAt"`
}

// IssueCertificateRequest is the request body for issuing a self-signed
// certificate record.
type IssueCertificateRequest struct {
	Subject      string `json:"subject" validate:"required,min=1,max=255"`
	ValidityDays int    `json:"validityDays" validate:"required,gt=0"`
	PublicKeyPem string `json:"publicKeyPem" validate:"required"`
}

// Validate for validating IssueCertificateRequest struct
func (r *IssueCertificateRequest) Validate() error {
	validate := validator.New()
	return translateValidationError(validate.Struct(r))
}

// ImportCertificateRequest is the request body for importing an exported
// certificate container.
type ImportCertificateRequest struct {
	Pem string `json:"pem" validate:"required"`
}

// Validate for validating ImportCertificateRequest struct
func (r *ImportCertificateRequest) Validate() error {
	validate := validator.New()
	return translateValidationError(validate.Struct(r))
}

// CertificateResponse carries a certificate record plus its displayed status.
type CertificateResponse struct {
	ID           string    `json:"id"`
	Subject      string    `json:"subject"`
	Issuer       string    `json:"issuer"`
	SerialNumber string    `json:"serialNumber"`
	ValidFrom    time.Time `json:"validFrom"`
	ValidTo      time.Time `json:"validTo"`
	PublicKeyRef string    `json:"publicKeyRef"`
	Status       string    `json:"status"`
}

// CertificateExportResponse carries the textual container of a record.
type CertificateExportResponse struct {
	Pem string `json:"pem"`
}

// CreateTimestampRequest is the request body for creating a timestamp token.
type CreateTimestampRequest struct {
	Data      string `json:"data" validate:"required"`
	Authority string `json:"authority" validate:"required,min=1,max=255"`
}

// Validate for validating CreateTimestampRequest struct
func (r *CreateTimestampRequest) Validate() error {
	validate := validator.New()
	return translateValidationError(validate.Struct(r))
}

// TimestampEntryResponse carries a recorded timestamp history entry.
type TimestampEntryResponse struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Authority  string    `json:"authority"`
	DataPrefix string    `json:"dataPrefix"`
	CreatedAt  time.Time `json:"createdAt"`
}

// VerifyTimestampRequest is the request body for verifying a timestamp token.
type VerifyTimestampRequest struct {
	Token string `json:"token" validate:"required"`
}

// Validate for validating VerifyTimestampRequest struct
func (r *VerifyTimestampRequest) Validate() error {
	validate := validator.New()
	return translateValidationError(validate.Struct(r))
}

// VerifyTimestampResponse reports the token verification outcome. Timestamp
// and authority are present only when the token is valid.
type VerifyTimestampResponse struct {
	Valid     bool       `json:"valid"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Authority string     `json:"authority,omitempty"`
}

func translateValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
