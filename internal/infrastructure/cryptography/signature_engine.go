package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	cryptoDomain "github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// signatureEngine struct that implements the SignatureEngine interface
type signatureEngine struct {
	logger logger.Logger
}

// NewSignatureEngine creates and returns a new instance of signatureEngine
func NewSignatureEngine(logger logger.Logger) (cryptoDomain.SignatureEngine, error) {
	return &signatureEngine{
		logger: logger,
	}, nil
}

// Sign produces an RSA-PSS signature over message using SHA-256 and the given
// salt length in bytes. A non-positive salt length falls back to the default.
// The result records the true modulus bit length of the signing key.
func (e *signatureEngine) Sign(message []byte, privateKey *cryptoDomain.PrivateKey, saltLength int) (*cryptoDomain.SignatureResult, error) {
	if privateKey == nil || privateKey.Key == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", cryptoDomain.ErrSignature)
	}
	if saltLength <= 0 {
		saltLength = cryptoDomain.DefaultSaltLength
	}

	hashed := sha256.Sum256(message)

	signature, err := rsa.SignPSS(rand.Reader, privateKey.Key, crypto.SHA256, hashed[:], &rsa.PSSOptions{
		SaltLength: saltLength,
		Hash:       crypto.SHA256,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrSignature, err)
	}

	e.logger.Info("RSA-PSS signing succeeded")
	return &cryptoDomain.SignatureResult{
		Signature:   signature,
		Algorithm:   cryptoDomain.AlgorithmRSAPSS,
		KeySizeBits: privateKey.Key.N.BitLen(),
		CreatedAt:   time.Now(),
	}, nil
}

// Verify decodes a base64 signature and checks it against message. It is a
// total predicate: malformed encoding, mismatched lengths or a provider
// rejection all yield false rather than an error.
func (e *signatureEngine) Verify(message []byte, signatureEncoded string, publicKey *cryptoDomain.PublicKey) bool {
	if publicKey == nil || publicKey.Key == nil {
		return false
	}

	signature, err := base64.StdEncoding.DecodeString(signatureEncoded)
	if err != nil {
		e.logger.Warn("Signature verification rejected malformed base64 input")
		return false
	}

	hashed := sha256.Sum256(message)

	err = rsa.VerifyPSS(publicKey.Key, crypto.SHA256, hashed[:], signature, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
		Hash:       crypto.SHA256,
	})
	if err != nil {
		return false
	}

	e.logger.Info("RSA-PSS signature verified successfully")
	return true
}
