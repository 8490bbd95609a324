package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/repository"
)

func TestAccountEventRepository_CreateAndList(t *testing.T) {
	repo := NewAccountEventRepository(newTestDB(t))
	ctx := t.Context()
	accountID := uuid.New()
	base := time.Now().UTC().Truncate(time.Millisecond)

	types := []entity.AccountEventType{
		entity.AccountEventSignedUp,
		entity.AccountEventLoggedIn,
		entity.AccountEventLoggedOut,
	}
	for i, eventType := range types {
		require.NoError(t, repo.Create(ctx, &entity.AccountEvent{
			ID:         uuid.New(),
			Type:       eventType,
			AccountID:  accountID,
			Email:      "a@example.com",
			RequestID:  "req",
			OccurredAt: base.Add(time.Duration(i) * time.Second),
			ReceivedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.AccountEvent{
		ID:         uuid.New(),
		Type:       entity.AccountEventSignedUp,
		AccountID:  uuid.New(),
		OccurredAt: base,
		ReceivedAt: base,
	}))

	events, err := repo.ListByAccount(ctx, accountID, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.AccountEventLoggedOut, events[0].Type)
	assert.Equal(t, entity.AccountEventLoggedIn, events[1].Type)

	all, err := repo.ListByAccount(ctx, accountID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAccountEventRepository_Duplicate(t *testing.T) {
	repo := NewAccountEventRepository(newTestDB(t))
	ctx := t.Context()

	event := &entity.AccountEvent{
		ID:         uuid.New(),
		Type:       entity.AccountEventLoggedIn,
		AccountID:  uuid.New(),
		OccurredAt: time.Now().UTC(),
		ReceivedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, event))
	assert.ErrorIs(t, repo.Create(ctx, event), repository.ErrAccountEventDuplicate)
}
