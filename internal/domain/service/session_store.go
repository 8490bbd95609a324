package service

import (
	"context"
	"time"

	"authsvc/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionStore is the server-side table resolving issued tokens to accounts.
// Implementations return repository.ErrSessionNotFound for unknown, expired or revoked tokens.
type SessionStore interface {
	// Register records that token belongs to accountID for ttl.
	Register(ctx context.Context, token string, accountID uuid.UUID, ttl time.Duration) (*entity.Session, error)

	// Resolve returns the live session for token.
	Resolve(ctx context.Context, token string) (*entity.Session, error)

	// Revoke removes the session for token.
	Revoke(ctx context.Context, token string) error
}
