package cryptography

import (
	"crypto/md5" // #nosec G501 -- MD5 is exposed for legacy digest comparison, not for integrity protection
	"crypto/sha1" // #nosec G505 -- same as above for SHA-1
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"time"

	cryptoDomain "github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// digestEngine struct that implements the DigestEngine interface
type digestEngine struct {
	logger logger.Logger
}

// NewDigestEngine creates and returns a new instance of digestEngine
func NewDigestEngine(logger logger.Logger) (cryptoDomain.DigestEngine, error) {
	return &digestEngine{
		logger: logger,
	}, nil
}

// Digest computes the digest of data with the named algorithm and returns it
// as lowercase hex, two characters per byte.
func (d *digestEngine) Digest(data []byte, algorithm string) (string, error) {
	hasher, err := newHasher(algorithm)
	if err != nil {
		return "", err
	}

	hasher.Write(data)
	digestHex := hex.EncodeToString(hasher.Sum(nil))

	d.logger.Info("Computed ", algorithm, " digest")
	return digestHex, nil
}

// Hash computes the digest of data and returns it with input size and
// computation time metadata.
func (d *digestEngine) Hash(data []byte, algorithm string) (*cryptoDomain.HashResult, error) {
	digestHex, err := d.Digest(data, algorithm)
	if err != nil {
		return nil, err
	}

	return &cryptoDomain.HashResult{
		Algorithm:      algorithm,
		DigestHex:      digestHex,
		InputSizeBytes: len(data),
		ComputedAt:     time.Now(),
	}, nil
}

func newHasher(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case cryptoDomain.AlgorithmSHA1:
		return sha1.New(), nil
	case cryptoDomain.AlgorithmSHA256:
		return sha256.New(), nil
	case cryptoDomain.AlgorithmSHA384:
		return sha512.New384(), nil
	case cryptoDomain.AlgorithmSHA512:
		return sha512.New(), nil
	case cryptoDomain.AlgorithmMD5:
		return md5.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrDigest, algorithm)
	}
}
