package timestamps

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Authority operating modes. In authenticated mode tokens carry an
// HMAC-SHA256 tag keyed by the authority secret and verification rejects
// fabricated timestamps; encoding-only mode reproduces the legacy behavior of
// accepting any token that decodes.
const (
	ModeAuthenticated = "authenticated"
	ModeEncodingOnly  = "encoding-only"
)

// DataPrefixLength is the number of leading input bytes embedded in a token.
const DataPrefixLength = 100

// TokenPayload is the structure serialized into an encoded token.
type TokenPayload struct {
	Timestamp string `json:"timestamp"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
	Algorithm string `json:"algorithm"`
	Authority string `json:"authority"`
	MAC       string `json:"mac,omitempty"`
}

// DecodePayload decodes an encoded token into its payload without checking
// authenticity. Callers that need a trust decision go through the authority's
// VerifyToken instead.
func DecodePayload(token string) (*TokenPayload, error) {
	jsonBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenDecode, err)
	}

	var payload TokenPayload
	if err := json.Unmarshal(jsonBytes, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenDecode, err)
	}

	return &payload, nil
}

// TokenVerification is the outcome of verifying a token. When Valid is false
// the remaining fields are zero.
type TokenVerification struct {
	Valid     bool
	Timestamp time.Time
	Authority string
}

// TimestampEntry is a history record of an issued token, kept in the
// caller-owned timestamp history.
type TimestampEntry struct {
	ID         string
	Token      string
	Authority  string
	DataPrefix string
	CreatedAt  time.Time
}
