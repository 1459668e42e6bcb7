package timestamps

import (
	"context"
	"errors"
)

// ErrTokenDecode indicates a malformed token passed to a decode operation.
var ErrTokenDecode = errors.New("malformed timestamp token")

// TimestampAuthority creates and verifies timestamp tokens. It depends only
// on a clock and a random source, not on the other core components.
type TimestampAuthority interface {
	// CreateToken captures the current time, a fresh nonce and the first 100
	// bytes of data, then serializes and encodes the token. In authenticated
	// mode the token is bound to the authority secret with HMAC-SHA256.
	CreateToken(data []byte, authorityID string) (string, error)

	// VerifyToken decodes a token and, in authenticated mode, checks its MAC.
	// It never raises: any failure yields a result with Valid set to false.
	VerifyToken(token string) *TokenVerification
}

// TimestampService defines the presentation-facing operations over the
// authority and the timestamp history.
type TimestampService interface {
	// Stamp creates a token for data and records it in the history.
	Stamp(ctx context.Context, data []byte, authorityID string) (*TimestampEntry, error)

	// Verify checks a token through the authority's single verification
	// entry point.
	Verify(token string) *TokenVerification

	// History retrieves all recorded timestamp entries.
	History(ctx context.Context) ([]*TimestampEntry, error)

	// DeleteByID removes a timestamp entry from the history.
	DeleteByID(ctx context.Context, id string) error
}

// TimestampRepository defines the operations of the caller-owned timestamp
// history.
type TimestampRepository interface {
	Create(ctx context.Context, entry *TimestampEntry) error
	List(ctx context.Context) ([]*TimestampEntry, error)
	DeleteByID(ctx context.Context, id string) error
}
