package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountEventType names a lifecycle change of an account.
type AccountEventType string

const (
	AccountEventSignedUp  AccountEventType = "account.signed_up"
	AccountEventLoggedIn  AccountEventType = "account.logged_in"
	AccountEventLoggedOut AccountEventType = "account.logged_out"
)

// IsValid reports whether t is a known event type.
func (t AccountEventType) IsValid() bool {
	switch t {
	case AccountEventSignedUp, AccountEventLoggedIn, AccountEventLoggedOut:
		return true
	default:
		return false
	}
}

// AccountEvent is an audit record of something that happened to an account.
type AccountEvent struct {
	ID         uuid.UUID
	Type       AccountEventType
	AccountID  uuid.UUID
	Email      string
	RequestID  string
	OccurredAt time.Time
	ReceivedAt time.Time
}
