//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	pkgTesting "github.com/Ibrahim98s/secure-signify-vault/internal/pkg/testing"
)

func newKeyPairHandlerForTest(t *testing.T) KeyPairHandler {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	manager, err := cryptography.NewKeyPairManager(logger)
	require.NoError(t, err)
	return NewKeyPairHandler(manager)
}

func TestKeyPairHandler_Generate_Success(t *testing.T) {
	handler := newKeyPairHandlerForTest(t)

	requestBody := `{"algorithm": "RSA-PSS", "keySize": 2048}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keypairs", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "BEGIN PUBLIC KEY")
	assert.Contains(t, w.Body.String(), "BEGIN PRIVATE KEY")
	assert.Contains(t, w.Body.String(), `"keySizeBits":2048`)
}

func TestKeyPairHandler_Generate_UnsupportedKeySize(t *testing.T) {
	handler := newKeyPairHandlerForTest(t)

	requestBody := `{"algorithm": "RSA-PSS", "keySize": 1024}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keypairs", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeyPairHandler_Generate_UnsupportedAlgorithm(t *testing.T) {
	handler := newKeyPairHandlerForTest(t)

	requestBody := `{"algorithm": "ECDSA", "keySize": 2048}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keypairs", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeyPairHandler_Generate_MalformedBody(t *testing.T) {
	handler := newKeyPairHandlerForTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keypairs", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
