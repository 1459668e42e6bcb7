package crypto

import "errors"

// Sentinel errors for key pair, signature and digest operations. Callers test
// wrapped errors with errors.Is.
var (
	// ErrGeneration indicates key pair generation failed, including an
	// unsupported key size or a cancelled context.
	ErrGeneration = errors.New("key pair generation failed")

	// ErrEncoding indicates key material could not be encoded to PEM.
	ErrEncoding = errors.New("key encoding failed")

	// ErrDecoding indicates malformed PEM or DER input passed to an import.
	ErrDecoding = errors.New("key decoding failed")

	// ErrSignature indicates signing failed, such as a missing private key.
	ErrSignature = errors.New("signing failed")

	// ErrDigest indicates an unrecognized digest algorithm identifier.
	ErrDigest = errors.New("digest computation failed")
)
