package repository

import (
	"context"
	"errors"
	"time"

	"authsvc/internal/domain/entity"
)

var (
	// ErrSessionNotFound is returned when no session exists for a token hash.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session exists but is past its expiry.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository persists sessions in the relational store.
type SessionRepository interface {
	// Upsert stores the session, replacing any row with the same token hash.
	Upsert(ctx context.Context, session *entity.Session) error

	// FindByTokenHash returns the session or ErrSessionNotFound / ErrSessionExpired.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session; ErrSessionNotFound if nothing was removed.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes every session that expired before now and returns the count.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
