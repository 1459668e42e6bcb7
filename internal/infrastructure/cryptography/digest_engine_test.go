//go:build unit
// +build unit

package cryptography

import (
	"testing"

	cryptoDomain "github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	pkgTesting "github.com/Ibrahim98s/secure-signify-vault/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDigestEngine(t *testing.T) cryptoDomain.DigestEngine {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	engine, err := NewDigestEngine(logger)
	require.NoError(t, err)
	return engine
}

func TestDigestEngine(t *testing.T) {
	engine := setupDigestEngine(t)

	t.Run("KnownVectors", func(t *testing.T) {
		tests := []struct {
			algorithm string
			input     string
			expected  string
		}{
			{cryptoDomain.AlgorithmSHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
			{cryptoDomain.AlgorithmSHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
			{cryptoDomain.AlgorithmMD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		}

		for _, tc := range tests {
			digest, err := engine.Digest([]byte(tc.input), tc.algorithm)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, digest)
		}
	})

	t.Run("DigestLengths", func(t *testing.T) {
		lengths := map[string]int{
			cryptoDomain.AlgorithmSHA1:   40,
			cryptoDomain.AlgorithmSHA256: 64,
			cryptoDomain.AlgorithmSHA384: 96,
			cryptoDomain.AlgorithmSHA512: 128,
			cryptoDomain.AlgorithmMD5:    32,
		}

		for algorithm, expectedLength := range lengths {
			digest, err := engine.Digest([]byte("length check"), algorithm)
			assert.NoError(t, err)
			assert.Len(t, digest, expectedLength)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := engine.Digest([]byte("same input"), cryptoDomain.AlgorithmSHA256)
		assert.NoError(t, err)
		second, err := engine.Digest([]byte("same input"), cryptoDomain.AlgorithmSHA256)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		digest, err := engine.Digest([]byte("data"), "SHA-3")
		assert.ErrorIs(t, err, cryptoDomain.ErrDigest)
		assert.Empty(t, digest)
	})

	t.Run("HashMetadata", func(t *testing.T) {
		data := []byte("metadata check")

		result, err := engine.Hash(data, cryptoDomain.AlgorithmSHA512)
		assert.NoError(t, err)
		assert.Equal(t, cryptoDomain.AlgorithmSHA512, result.Algorithm)
		assert.Len(t, result.DigestHex, 128)
		assert.Equal(t, len(data), result.InputSizeBytes)
		assert.False(t, result.ComputedAt.IsZero())
	})

	t.Run("CompareDigests", func(t *testing.T) {
		digest, err := engine.Digest([]byte("abc"), cryptoDomain.AlgorithmSHA256)
		require.NoError(t, err)

		assert.True(t, cryptoDomain.CompareDigests(digest, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"))
		assert.True(t, cryptoDomain.CompareDigests(" "+digest+" ", digest))
		assert.False(t, cryptoDomain.CompareDigests(digest, "deadbeef"))
	})
}
