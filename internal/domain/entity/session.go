package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session binds an issued bearer token to exactly one account until it expires.
// Only the SHA-256 hash of the token is ever stored.
type Session struct {
	TokenHash string
	AccountID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the session is no longer valid at t.
func (s *Session) ExpiredAt(t time.Time) bool {
	return !s.ExpiresAt.After(t)
}
