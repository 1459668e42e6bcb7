package cryptography

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	cryptoDomain "github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

const nonceBytes = 16

// timestampAuthority struct that implements the TimestampAuthority interface
type timestampAuthority struct {
	mode       string
	secret     []byte
	randSource io.Reader
	clock      func() time.Time
	logger     logger.Logger
}

// NewTimestampAuthority creates and returns a new instance of
// timestampAuthority. randSource and clock may be nil, in which case
// crypto/rand and the wall clock are used; tests supply deterministic fakes.
func NewTimestampAuthority(settings *config.AuthoritySettings, randSource io.Reader, clock func() time.Time, logger logger.Logger) (timestamps.TimestampAuthority, error) {
	if settings == nil {
		return nil, fmt.Errorf("authority settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid authority settings: %w", err)
	}
	if randSource == nil {
		randSource = rand.Reader
	}
	if clock == nil {
		clock = time.Now
	}
	return &timestampAuthority{
		mode:       settings.Mode,
		secret:     []byte(settings.Secret),
		randSource: randSource,
		clock:      clock,
		logger:     logger,
	}, nil
}

// CreateToken captures the current time, a fresh nonce and the first 100
// bytes of data, then serializes and base64-encodes the token. In
// authenticated mode the token carries an HMAC-SHA256 tag over
// SHA-256(dataPrefix) || timestamp || nonce keyed by the authority secret.
func (a *timestampAuthority) CreateToken(data []byte, authorityID string) (string, error) {
	nonceBuf := make([]byte, nonceBytes)
	if _, err := io.ReadFull(a.randSource, nonceBuf); err != nil {
		return "", fmt.Errorf("failed to draw nonce: %w", err)
	}

	prefix := data
	if len(prefix) > timestamps.DataPrefixLength {
		prefix = prefix[:timestamps.DataPrefixLength]
	}

	payload := timestamps.TokenPayload{
		Timestamp: a.clock().UTC().Format(time.RFC3339),
		Nonce:     hex.EncodeToString(nonceBuf),
		Data:      string(prefix),
		Algorithm: cryptoDomain.AlgorithmSHA256,
		Authority: authorityID,
	}

	if a.mode == timestamps.ModeAuthenticated {
		payload.MAC = a.computeMAC(payload.Data, payload.Timestamp, payload.Nonce)
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize token: %w", err)
	}

	a.logger.Info("Created timestamp token for authority ", authorityID)
	return base64.StdEncoding.EncodeToString(jsonBytes), nil
}

// VerifyToken decodes a token and, in authenticated mode, recomputes and
// compares its MAC. It never raises: any failure yields Valid set to false.
func (a *timestampAuthority) VerifyToken(token string) *timestamps.TokenVerification {
	invalid := &timestamps.TokenVerification{Valid: false}

	payload, err := timestamps.DecodePayload(token)
	if err != nil {
		a.logger.Warn("Timestamp verification rejected undecodable token")
		return invalid
	}

	parsedTime, err := time.Parse(time.RFC3339, payload.Timestamp)
	if err != nil {
		return invalid
	}

	if a.mode == timestamps.ModeAuthenticated {
		expected := a.computeMAC(payload.Data, payload.Timestamp, payload.Nonce)
		if !hmac.Equal([]byte(expected), []byte(payload.MAC)) {
			a.logger.Warn("Timestamp verification rejected token with invalid MAC")
			return invalid
		}
	}

	return &timestamps.TokenVerification{
		Valid:     true,
		Timestamp: parsedTime,
		Authority: payload.Authority,
	}
}

func (a *timestampAuthority) computeMAC(dataPrefix, timestamp, nonce string) string {
	digest := sha256.Sum256([]byte(dataPrefix))
	mac := hmac.New(sha256.New, a.secret)
	mac.Write(digest[:])
	mac.Write([]byte(timestamp))
	mac.Write([]byte(nonce))
	return hex.EncodeToString(mac.Sum(nil))
}
