package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountEventModel mirrors the 'account_events' table. The ID comes from the publisher,
// which makes redelivered messages collide on the primary key.
type AccountEventModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	Type       string    `gorm:"type:varchar(64);not null"`
	AccountID  uuid.UUID `gorm:"type:char(36);index:idx_account_events_account_id;not null"`
	Email      string    `gorm:"type:varchar(255)"`
	RequestID  string    `gorm:"type:varchar(64)"`
	OccurredAt time.Time `gorm:"not null"`
	ReceivedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountEventModel) TableName() string {
	return "account_events"
}
