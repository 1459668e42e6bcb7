package crypto

import (
	"context"
)

// KeyPairManager defines methods for generating asymmetric key pairs and
// encoding/decoding them to and from their textual PEM form.
type KeyPairManager interface {
	// GenerateKeyPair generates an RSA key pair for RSA-PSS signing.
	// Supported sizes: 2048, 3072, 4096 bits. Generation honors context
	// cancellation and returns an error wrapping ErrGeneration on failure.
	GenerateKeyPair(ctx context.Context, keySizeBits int) (*KeyPair, error)

	// ExportPublicKey encodes the public key as PEM (SPKI, base64 wrapped at
	// 64 characters per line). Returns an error wrapping ErrEncoding on failure.
	ExportPublicKey(key *PublicKey) (string, error)

	// ExportPrivateKey encodes the private key as PEM (PKCS#8).
	// Returns an error wrapping ErrEncoding on failure.
	ExportPrivateKey(key *PrivateKey) (string, error)

	// ImportPublicKey reconstructs a verify-only public key from its PEM form.
	// Returns an error wrapping ErrDecoding on malformed input.
	ImportPublicKey(pemText string) (*PublicKey, error)

	// ImportPrivateKey reconstructs a sign-only private key from its PEM form.
	// Returns an error wrapping ErrDecoding on malformed input.
	ImportPrivateKey(pemText string) (*PrivateKey, error)
}

// SignatureEngine defines methods for signing byte sequences and verifying
// signatures produced by a KeyPairManager key pair.
type SignatureEngine interface {
	// Sign produces an RSA-PSS signature over message with the given salt
	// length in bytes. The result records the true bit length of the signing
	// key. Returns an error wrapping ErrSignature on failure.
	Sign(message []byte, privateKey *PrivateKey, saltLength int) (*SignatureResult, error)

	// Verify decodes a base64 signature and checks it against message.
	// Verification is a total predicate over its inputs: malformed encoding,
	// mismatched lengths, or a provider rejection all yield false.
	Verify(message []byte, signatureEncoded string, publicKey *PublicKey) bool
}

// DigestEngine computes cryptographic digests over byte sequences.
type DigestEngine interface {
	// Digest computes the digest of data with the named algorithm and returns
	// it as lowercase hex, two characters per byte. Returns an error wrapping
	// ErrDigest for an unrecognized algorithm identifier.
	Digest(data []byte, algorithm string) (string, error)

	// Hash computes the digest of data and returns it together with input
	// size and computation time metadata.
	Hash(data []byte, algorithm string) (*HashResult, error)
}
