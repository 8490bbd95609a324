package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_ExpiredAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	session := &Session{ExpiresAt: now}

	assert.False(t, session.ExpiredAt(now.Add(-time.Second)))
	assert.True(t, session.ExpiredAt(now))
	assert.True(t, session.ExpiredAt(now.Add(time.Second)))
}

func TestAccountEventType_IsValid(t *testing.T) {
	assert.True(t, AccountEventSignedUp.IsValid())
	assert.True(t, AccountEventLoggedIn.IsValid())
	assert.True(t, AccountEventLoggedOut.IsValid())
	assert.False(t, AccountEventType("account.deleted").IsValid())
	assert.False(t, AccountEventType("").IsValid())
}
