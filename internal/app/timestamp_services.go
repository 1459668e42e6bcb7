package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// timestampService implements the TimestampService interface, wiring the
// authority to the caller-owned timestamp history.
type timestampService struct {
	authority     timestamps.TimestampAuthority
	timestampRepo timestamps.TimestampRepository
	logger        logger.Logger
}

// NewTimestampService creates a new timestampService instance
func NewTimestampService(
	authority timestamps.TimestampAuthority,
	timestampRepo timestamps.TimestampRepository,
	logger logger.Logger,
) (timestamps.TimestampService, error) {
	return &timestampService{
		authority:     authority,
		timestampRepo: timestampRepo,
		logger:        logger,
	}, nil
}

// Stamp creates a token for data and records it in the history.
func (s *timestampService) Stamp(ctx context.Context, data []byte, authorityID string) (*timestamps.TimestampEntry, error) {
	token, err := s.authority.CreateToken(data, authorityID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	prefix := data
	if len(prefix) > timestamps.DataPrefixLength {
		prefix = prefix[:timestamps.DataPrefixLength]
	}

	entry := &timestamps.TimestampEntry{
		ID:         uuid.New().String(),
		Token:      token,
		Authority:  authorityID,
		DataPrefix: string(prefix),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.timestampRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return entry, nil
}

// Verify checks a token through the authority's single verification entry point.
func (s *timestampService) Verify(token string) *timestamps.TokenVerification {
	return s.authority.VerifyToken(token)
}

// History retrieves all recorded timestamp entries.
func (s *timestampService) History(ctx context.Context) ([]*timestamps.TimestampEntry, error) {
	entries, err := s.timestampRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return entries, nil
}

// DeleteByID removes a timestamp entry from the history.
func (s *timestampService) DeleteByID(ctx context.Context, id string) error {
	if err := s.timestampRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
