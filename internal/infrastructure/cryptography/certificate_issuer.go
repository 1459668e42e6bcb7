package cryptography

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	cryptoDomain "github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// serialNumberBytes is the fixed serial width. Eight random bytes keep the
// collision probability negligible across a long-running store.
const serialNumberBytes = 8

const pemTypeCertificate = "CERTIFICATE"

// certificateIssuer struct that implements the CertificateIssuer interface
type certificateIssuer struct {
	randSource io.Reader
	clock      func() time.Time
	logger     logger.Logger
}

// NewCertificateIssuer creates and returns a new instance of certificateIssuer.
// randSource and clock may be nil, in which case crypto/rand and the wall
// clock are used; tests supply deterministic fakes.
func NewCertificateIssuer(randSource io.Reader, clock func() time.Time, logger logger.Logger) (certificates.CertificateIssuer, error) {
	if randSource == nil {
		randSource = rand.Reader
	}
	if clock == nil {
		clock = time.Now
	}
	return &certificateIssuer{
		randSource: randSource,
		clock:      clock,
		logger:     logger,
	}, nil
}

// IssueSelfSigned creates a certificate record with issuer equal to subject
// and a cryptographically random serial number.
func (i *certificateIssuer) IssueSelfSigned(subject string, validityDays int, keyPair *cryptoDomain.KeyPair) (*certificates.CertificateRecord, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject cannot be empty", certificates.ErrIssuance)
	}
	if validityDays <= 0 {
		return nil, fmt.Errorf("%w: validity must be a positive number of days", certificates.ErrIssuance)
	}
	if keyPair == nil || keyPair.Public == nil || keyPair.Public.Key == nil {
		return nil, fmt.Errorf("%w: key pair is missing public key material", certificates.ErrIssuance)
	}

	serialNumber, err := i.drawSerialNumber()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", certificates.ErrIssuance, err)
	}

	publicKeyRef, err := publicKeyFingerprint(keyPair.Public)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", certificates.ErrIssuance, err)
	}

	validFrom := i.clock().UTC()
	record := &certificates.CertificateRecord{
		ID:           uuid.New().String(),
		Subject:      subject,
		Issuer:       subject,
		SerialNumber: serialNumber,
		ValidFrom:    validFrom,
		ValidTo:      validFrom.Add(time.Duration(validityDays) * 24 * time.Hour),
		PublicKeyRef: publicKeyRef,
	}

	i.logger.Info("Issued self-signed certificate record with serial ", serialNumber)
	return record, nil
}

// ExportRecord encodes the record as base64 JSON between CERTIFICATE PEM
// markers. This container is not a standards-conformant binary certificate.
func (i *certificateIssuer) ExportRecord(record *certificates.CertificateRecord) (string, error) {
	if record == nil {
		return "", fmt.Errorf("%w: record cannot be nil", cryptoDomain.ErrEncoding)
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncoding, err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  pemTypeCertificate,
		Bytes: jsonBytes,
	})

	return string(pemBytes), nil
}

// ImportRecord decodes a container previously produced by ExportRecord.
func (i *certificateIssuer) ImportRecord(pemText string) (*certificates.CertificateRecord, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil || block.Type != pemTypeCertificate {
		return nil, fmt.Errorf("%w: missing CERTIFICATE markers", cryptoDomain.ErrDecoding)
	}

	var record certificates.CertificateRecord
	if err := json.Unmarshal(block.Bytes, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecoding, err)
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecoding, err)
	}

	i.logger.Info("Imported certificate record with serial ", record.SerialNumber)
	return &record, nil
}

// ExportX509PEM builds a genuine DER-encoded self-signed X.509 certificate
// from the record and the issuing key pair.
func (i *certificateIssuer) ExportX509PEM(record *certificates.CertificateRecord, keyPair *cryptoDomain.KeyPair) (string, error) {
	if record == nil {
		return "", fmt.Errorf("%w: record cannot be nil", cryptoDomain.ErrEncoding)
	}
	if keyPair == nil || keyPair.Private == nil || keyPair.Private.Key == nil {
		return "", fmt.Errorf("%w: key pair is missing private key material", cryptoDomain.ErrEncoding)
	}

	serial, ok := new(big.Int).SetString(record.SerialNumber, 16)
	if !ok {
		return "", fmt.Errorf("%w: serial number is not hexadecimal", cryptoDomain.ErrEncoding)
	}

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: record.Subject},
		Issuer:                pkix.Name{CommonName: record.Issuer},
		NotBefore:             record.ValidFrom,
		NotAfter:              record.ValidTo,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, template, template, keyPair.Public.Key, keyPair.Private.Key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncoding, err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  pemTypeCertificate,
		Bytes: derBytes,
	})

	i.logger.Info("Exported X.509 certificate for serial ", record.SerialNumber)
	return string(pemBytes), nil
}

// drawSerialNumber draws a fixed-width serial from the random source and
// encodes it as uppercase hex.
func (i *certificateIssuer) drawSerialNumber() (string, error) {
	buf := make([]byte, serialNumberBytes)
	if _, err := io.ReadFull(i.randSource, buf); err != nil {
		return "", fmt.Errorf("failed to draw serial number: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// publicKeyFingerprint computes the SHA-256 fingerprint of the SPKI encoding,
// used as a non-owning back-link from records to their key pair.
func publicKeyFingerprint(key *cryptoDomain.PublicKey) (string, error) {
	derBytes, err := x509.MarshalPKIXPublicKey(key.Key)
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}
	fingerprint := sha256.Sum256(derBytes)
	return hex.EncodeToString(fingerprint[:]), nil
}
