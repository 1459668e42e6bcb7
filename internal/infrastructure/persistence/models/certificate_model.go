package models

import (
	"time"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
)

// CertificateModel is the GORM database model for certificate records
// (infrastructure concern)
type CertificateModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Subject      string    `gorm:"not null;type:varchar(255)"`
	Issuer       string    `gorm:"not null;type:varchar(255)"`
	SerialNumber string    `gorm:"not null;uniqueIndex;type:varchar(64)"`
	ValidFrom    time.Time `gorm:"not null"`
	ValidTo      time.Time `gorm:"not null"`
	PublicKeyRef string    `gorm:"type:varchar(128)"`
}

// TableName specifies the table name for GORM
func (CertificateModel) TableName() string {
	return "certificate_records"
}

// ToDomain converts GORM model to domain entity
func (m *CertificateModel) ToDomain() *certificates.CertificateRecord {
	return &certificates.CertificateRecord{
		ID:           m.ID,
		Subject:      m.Subject,
		Issuer:       m.Issuer,
		SerialNumber: m.SerialNumber,
		ValidFrom:    m.ValidFrom,
		ValidTo:      m.ValidTo,
		PublicKeyRef: m.PublicKeyRef,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CertificateModel) FromDomain(r *certificates.CertificateRecord) {
	m.ID = r.ID
	m.Subject = r.Subject
	m.Issuer = r.Issuer
	m.SerialNumber = r.SerialNumber
	m.ValidFrom = r.ValidFrom
	m.ValidTo = r.ValidTo
	m.PublicKeyRef = r.PublicKeyRef
}
