//go:build unit
// +build unit

package certificates

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validTestRecord() *CertificateRecord {
	validFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &CertificateRecord{
		ID:           uuid.New().String(),
		Subject:      "service.example.com",
		Issuer:       "service.example.com",
		SerialNumber: "0A1B2C3D4E5F6071",
		ValidFrom:    validFrom,
		ValidTo:      validFrom.Add(365 * 24 * time.Hour),
		PublicKeyRef: "fingerprint",
	}
}

func TestCertificateRecordValidation(t *testing.T) {
	t.Run("ValidRecord", func(t *testing.T) {
		record := validTestRecord()
		assert.NoError(t, record.Validate())
	})

	t.Run("InvalidID", func(t *testing.T) {
		record := validTestRecord()
		record.ID = "not-a-uuid"
		assert.Error(t, record.Validate())
	})

	t.Run("MissingSubject", func(t *testing.T) {
		record := validTestRecord()
		record.Subject = ""
		assert.Error(t, record.Validate())
	})

	t.Run("NonHexSerialNumber", func(t *testing.T) {
		record := validTestRecord()
		record.SerialNumber = "XYZ!"
		assert.Error(t, record.Validate())
	})

	t.Run("ValidToNotAfterValidFrom", func(t *testing.T) {
		record := validTestRecord()
		record.ValidTo = record.ValidFrom
		assert.Error(t, record.Validate())

		record.ValidTo = record.ValidFrom.Add(-time.Hour)
		assert.Error(t, record.Validate())
	})

	t.Run("IssuerMustEqualSubject", func(t *testing.T) {
		record := validTestRecord()
		record.Issuer = "other.example.com"
		assert.Error(t, record.Validate())
	})
}
