package crypto

import (
	"crypto/rsa"
	"strings"
	"time"
)

// PublicKey wraps RSA public key material tagged for verification only.
type PublicKey struct {
	Key *rsa.PublicKey
}

// PrivateKey wraps RSA private key material tagged for signing only.
type PrivateKey struct {
	Key *rsa.PrivateKey
}

// KeyPair is a public/private key pair generated together, sharing one
// algorithm family and key-size class.
type KeyPair struct {
	Public      *PublicKey
	Private     *PrivateKey
	Algorithm   string
	KeySizeBits int
}

// SignatureResult holds a produced signature together with its metadata.
// KeySizeBits is the actual modulus bit length of the signing key.
type SignatureResult struct {
	Signature   []byte
	Algorithm   string
	KeySizeBits int
	CreatedAt   time.Time
}

// HashResult holds a computed digest together with its metadata.
type HashResult struct {
	Algorithm      string
	DigestHex      string
	InputSizeBytes int
	ComputedAt     time.Time
}

// CompareDigests reports whether two hex digest strings are equal, ignoring
// case. Pure function, no provider involvement.
func CompareDigests(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
