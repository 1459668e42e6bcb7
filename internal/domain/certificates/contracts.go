package certificates

import (
	"context"
	"errors"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
)

// ErrIssuance indicates invalid certificate issuance parameters, such as an
// empty subject, non-positive validity, or missing key material.
var ErrIssuance = errors.New("certificate issuance failed")

// CertificateIssuer issues self-signed certificate records bound to a key pair
// and converts records to and from their textual container form.
type CertificateIssuer interface {
	// IssueSelfSigned creates a record with issuer equal to subject, validity
	// starting now and ending validityDays later, and a serial number drawn
	// from a cryptographically secure random source. Returns an error
	// wrapping ErrIssuance on invalid parameters.
	IssueSelfSigned(subject string, validityDays int, keyPair *crypto.KeyPair) (*CertificateRecord, error)

	// ExportRecord encodes the record as base64 JSON between CERTIFICATE PEM
	// markers. The container is not a standards-conformant binary certificate
	// and external X.509 tooling will not parse it.
	ExportRecord(record *CertificateRecord) (string, error)

	// ImportRecord decodes a container previously produced by ExportRecord.
	// Returns an error wrapping crypto.ErrDecoding on malformed input.
	ImportRecord(pemText string) (*CertificateRecord, error)

	// ExportX509PEM builds a genuine DER-encoded self-signed X.509
	// certificate from the record and the issuing key pair, for consumers
	// that need interoperability with external tooling.
	ExportX509PEM(record *CertificateRecord, keyPair *crypto.KeyPair) (string, error)
}

// CertificateService defines the presentation-facing operations over the
// issuer and the certificate store.
type CertificateService interface {
	// Issue creates a self-signed record and persists it in the store.
	Issue(ctx context.Context, subject string, validityDays int, keyPair *crypto.KeyPair) (*CertificateRecord, error)

	// List retrieves all stored certificate records.
	List(ctx context.Context) ([]*CertificateRecord, error)

	// GetByID retrieves a stored certificate record by its unique ID.
	GetByID(ctx context.Context, id string) (*CertificateRecord, error)

	// DeleteByID removes a certificate record from the store.
	DeleteByID(ctx context.Context, id string) error

	// ExportByID encodes a stored record in its textual container form.
	ExportByID(ctx context.Context, id string) (string, error)

	// Import decodes a textual container and persists the record.
	Import(ctx context.Context, pemText string) (*CertificateRecord, error)
}

// CertificateRepository defines the operations of the caller-owned certificate
// store. Records are removed only by explicit deletion.
type CertificateRepository interface {
	Create(ctx context.Context, record *CertificateRecord) error
	List(ctx context.Context) ([]*CertificateRecord, error)
	GetByID(ctx context.Context, id string) (*CertificateRecord, error)
	DeleteByID(ctx context.Context, id string) error
}
