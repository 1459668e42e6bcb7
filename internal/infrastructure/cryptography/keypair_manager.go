package cryptography

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"

	cryptoDomain "github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// PEM block types for exported key material
const (
	pemTypePublicKey  = "PUBLIC KEY"
	pemTypePrivateKey = "PRIVATE KEY"
)

// keyPairManager struct that implements the KeyPairManager interface
type keyPairManager struct {
	logger logger.Logger
}

// NewKeyPairManager creates and returns a new instance of keyPairManager
func NewKeyPairManager(logger logger.Logger) (cryptoDomain.KeyPairManager, error) {
	return &keyPairManager{
		logger: logger,
	}, nil
}

// GenerateKeyPair generates an RSA key pair for RSA-PSS signing.
// Supported sizes: 2048, 3072, 4096 bits. rsa.GenerateKey is not
// context-aware, so generation runs off-goroutine and the call returns early
// when the context is cancelled.
func (m *keyPairManager) GenerateKeyPair(ctx context.Context, keySizeBits int) (*cryptoDomain.KeyPair, error) {
	switch keySizeBits {
	case cryptoDomain.KeySize2048, cryptoDomain.KeySize3072, cryptoDomain.KeySize4096:
	default:
		return nil, fmt.Errorf("%w: unsupported key size %d", cryptoDomain.ErrGeneration, keySizeBits)
	}

	type generated struct {
		key *rsa.PrivateKey
		err error
	}
	done := make(chan generated, 1)
	go func() {
		key, err := rsa.GenerateKey(rand.Reader, keySizeBits)
		done <- generated{key: key, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrGeneration, ctx.Err())
	case result := <-done:
		if result.err != nil {
			return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrGeneration, result.err)
		}
		m.logger.Info("Generated RSA key pair with size ", keySizeBits)
		return &cryptoDomain.KeyPair{
			Public:      &cryptoDomain.PublicKey{Key: &result.key.PublicKey},
			Private:     &cryptoDomain.PrivateKey{Key: result.key},
			Algorithm:   cryptoDomain.AlgorithmRSAPSS,
			KeySizeBits: keySizeBits,
		}, nil
	}
}

// ExportPublicKey encodes the public key as PEM (SPKI, base64 wrapped at 64
// characters per line).
func (m *keyPairManager) ExportPublicKey(key *cryptoDomain.PublicKey) (string, error) {
	if key == nil || key.Key == nil {
		return "", fmt.Errorf("%w: public key cannot be nil", cryptoDomain.ErrEncoding)
	}

	derBytes, err := x509.MarshalPKIXPublicKey(key.Key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncoding, err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePublicKey,
		Bytes: derBytes,
	})

	m.logger.Info("Exported public key")
	return string(pemBytes), nil
}

// ExportPrivateKey encodes the private key as PEM (PKCS#8).
func (m *keyPairManager) ExportPrivateKey(key *cryptoDomain.PrivateKey) (string, error) {
	if key == nil || key.Key == nil {
		return "", fmt.Errorf("%w: private key cannot be nil", cryptoDomain.ErrEncoding)
	}

	derBytes, err := x509.MarshalPKCS8PrivateKey(key.Key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncoding, err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePrivateKey,
		Bytes: derBytes,
	})

	m.logger.Info("Exported private key")
	return string(pemBytes), nil
}

// ImportPublicKey reconstructs a verify-only public key from its PEM form.
func (m *keyPairManager) ImportPublicKey(pemText string) (*cryptoDomain.PublicKey, error) {
	derBytes, err := decodeKeyBody(pemText)
	if err != nil {
		return nil, err
	}

	parsed, err := x509.ParsePKIXPublicKey(derBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecoding, err)
	}

	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type RSA", cryptoDomain.ErrDecoding)
	}

	m.logger.Info("Imported public key")
	return &cryptoDomain.PublicKey{Key: publicKey}, nil
}

// ImportPrivateKey reconstructs a sign-only private key from its PEM form.
// Tries PKCS#8 first, then falls back to PKCS#1.
func (m *keyPairManager) ImportPrivateKey(pemText string) (*cryptoDomain.PrivateKey, error) {
	derBytes, err := decodeKeyBody(pemText)
	if err != nil {
		return nil, err
	}

	if parsed, err := x509.ParsePKCS8PrivateKey(derBytes); err == nil {
		privateKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: private key is not of type RSA", cryptoDomain.ErrDecoding)
		}
		m.logger.Info("Imported private key")
		return &cryptoDomain.PrivateKey{Key: privateKey}, nil
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(derBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse private key in either PKCS#8 or PKCS#1 format", cryptoDomain.ErrDecoding)
	}

	m.logger.Info("Imported private key")
	return &cryptoDomain.PrivateKey{Key: privateKey}, nil
}

// decodeKeyBody strips PEM markers and whitespace from a textual key and
// base64-decodes the body.
func decodeKeyBody(pemText string) ([]byte, error) {
	if block, _ := pem.Decode([]byte(pemText)); block != nil {
		return block.Bytes, nil
	}

	// Tolerate bodies with irregular whitespace that pem.Decode rejects.
	var body strings.Builder
	for _, line := range strings.Split(pemText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-----") {
			continue
		}
		body.WriteString(line)
	}

	derBytes, err := base64.StdEncoding.DecodeString(body.String())
	if err != nil {
		return nil, fmt.Errorf("%w: malformed base64 key body", cryptoDomain.ErrDecoding)
	}
	if len(derBytes) == 0 {
		return nil, fmt.Errorf("%w: empty key body", cryptoDomain.ErrDecoding)
	}
	return derBytes, nil
}
