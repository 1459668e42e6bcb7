package certificates

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CertificateRecord entity. For self-signed records Issuer always equals
// Subject, and ValidTo is strictly after ValidFrom. PublicKeyRef is a
// non-owning back-link to the bound public key used for lookup and display.
type CertificateRecord struct {
	ID           string    `json:"id" validate:"required,uuid4"`
	Subject      string    `json:"subject" validate:"required,min=1,max=255"`
	Issuer       string    `json:"issuer" validate:"required,min=1,max=255"`
	SerialNumber string    `json:"serialNumber" validate:"required,hexadecimal"`
	ValidFrom    time.Time `json:"validFrom" validate:"required"`
	ValidTo      time.Time `json:"validTo" validate:"required,gtfield=ValidFrom"`
	PublicKeyRef string    `json:"publicKeyRef"`
}

// Validate for validating CertificateRecord struct
func (r *CertificateRecord) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
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

	if r.Issuer != r.Subject {
		return fmt.Errorf("validation failed: issuer must equal subject for self-signed records")
	}

	return nil
}
