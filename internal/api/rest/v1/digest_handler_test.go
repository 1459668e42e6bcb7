//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	pkgTesting "github.com/Ibrahim98s/secure-signify-vault/internal/pkg/testing"
)

func newDigestHandlerForTest(t *testing.T) DigestHandler {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	engine, err := cryptography.NewDigestEngine(logger)
	require.NoError(t, err)
	return NewDigestHandler(engine)
}

func TestDigestHandler_Compute_Success(t *testing.T) {
	handler := newDigestHandlerForTest(t)

	body, err := json.Marshal(DigestRequest{Data: "abc", Algorithm: "SHA-256"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/digests", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Compute(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HashResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "SHA-256", response.Algorithm)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", response.DigestHex)
	assert.Equal(t, 3, response.InputSizeBytes)
}

func TestDigestHandler_Compute_UnsupportedAlgorithm(t *testing.T) {
	handler := newDigestHandlerForTest(t)

	body, err := json.Marshal(DigestRequest{Data: "abc", Algorithm: "SHA-3"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/digests", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Compute(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDigestHandler_Compute_MissingData(t *testing.T) {
	handler := newDigestHandlerForTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/digests", bytes.NewBufferString(`{"algorithm": "SHA-256"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Compute(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
