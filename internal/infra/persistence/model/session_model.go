package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table, keyed by the SHA-256 of the bearer token.
type SessionModel struct {
	TokenHash string    `gorm:"type:char(64);primaryKey"`
	AccountID uuid.UUID `gorm:"type:char(36);index:idx_sessions_account_id;not null"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index:idx_sessions_expires_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
