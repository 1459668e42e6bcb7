//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyPairRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   GenerateKeyPairRequest
		shouldErr bool
	}{
		{"Valid RSA-PSS 2048", GenerateKeyPairRequest{Algorithm: "RSA-PSS", KeySize: 2048}, false},
		{"Valid RSA-PSS 3072", GenerateKeyPairRequest{Algorithm: "RSA-PSS", KeySize: 3072}, false},
		{"Valid RSA-PSS 4096", GenerateKeyPairRequest{Algorithm: "RSA-PSS", KeySize: 4096}, false},
		{"Invalid RSA-PSS 1024", GenerateKeyPairRequest{Algorithm: "RSA-PSS", KeySize: 1024}, true},
		{"Invalid RSA-PSS 2049", GenerateKeyPairRequest{Algorithm: "RSA-PSS", KeySize: 2049}, true},

		// Required fields
		{"Missing algorithm", GenerateKeyPairRequest{KeySize: 2048}, true},
		{"Missing key size", GenerateKeyPairRequest{Algorithm: "RSA-PSS"}, true},

		// Invalid algorithm
		{"Invalid algorithm", GenerateKeyPairRequest{Algorithm: "ECDSA", KeySize: 2048}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestSignRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   SignRequest
		shouldErr bool
	}{
		{"Valid", SignRequest{Message: "payload", PrivateKeyPem: "pem"}, false},
		{"Valid with salt length", SignRequest{Message: "payload", PrivateKeyPem: "pem", SaltLength: 32}, false},
		{"Missing message", SignRequest{PrivateKeyPem: "pem"}, true},
		{"Missing private key", SignRequest{Message: "payload"}, true},
		{"Negative salt length", SignRequest{Message: "payload", PrivateKeyPem: "pem", SaltLength: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestDigestRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   DigestRequest
		shouldErr bool
	}{
		{"Valid SHA-256", DigestRequest{Data: "abc", Algorithm: "SHA-256"}, false},
		{"Valid MD5", DigestRequest{Data: "abc", Algorithm: "MD5"}, false},
		{"Missing data", DigestRequest{Algorithm: "SHA-256"}, true},
		{"Unsupported algorithm", DigestRequest{Data: "abc", Algorithm: "SHA-3"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestIssueCertificateRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   IssueCertificateRequest
		shouldErr bool
	}{
		{"Valid", IssueCertificateRequest{Subject: "service.example.com", ValidityDays: 365, PublicKeyPem: "pem"}, false},
		{"Missing subject", IssueCertificateRequest{ValidityDays: 365, PublicKeyPem: "pem"}, true},
		{"Zero validity", IssueCertificateRequest{Subject: "service.example.com", PublicKeyPem: "pem"}, true},
		{"Negative validity", IssueCertificateRequest{Subject: "service.example.com", ValidityDays: -1, PublicKeyPem: "pem"}, true},
		{"Missing public key", IssueCertificateRequest{Subject: "service.example.com", ValidityDays: 365}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCreateTimestampRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   CreateTimestampRequest
		shouldErr bool
	}{
		{"Valid", CreateTimestampRequest{Data: "contract", Authority: "notary-1"}, false},
		{"Missing data", CreateTimestampRequest{Authority: "notary-1"}, true},
		{"Missing authority", CreateTimestampRequest{Data: "contract"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestVerifyTimestampResponse_Creation(t *testing.T) {
	// Test that response DTOs can be created without errors
	instant := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	response := VerifyTimestampResponse{
		Valid:     true,
		Timestamp: &instant,
		Authority: "notary-1",
	}

	require.True(t, response.Valid)
	require.Equal(t, instant, *response.Timestamp)
	require.Equal(t, "notary-1", response.Authority)
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}
