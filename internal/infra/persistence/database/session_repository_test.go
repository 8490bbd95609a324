package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/repository"
	"authsvc/internal/util"
)

func newSession(accountID uuid.UUID, token string, issuedAt time.Time, ttl time.Duration) *entity.Session {
	return &entity.Session{
		TokenHash: util.SHA256Hex(token),
		AccountID: accountID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(ttl),
	}
}

func TestSessionRepository_UpsertAndFind(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := t.Context()
	accountID := uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)

	session := newSession(accountID, "token-a", now, time.Hour)
	require.NoError(t, repo.Upsert(ctx, session))

	found, err := repo.FindByTokenHash(ctx, session.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, accountID, found.AccountID)
	assert.True(t, session.ExpiresAt.Equal(found.ExpiresAt))
}

func TestSessionRepository_UpsertReplaces(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := t.Context()
	now := time.Now().UTC().Truncate(time.Millisecond)

	first := newSession(uuid.New(), "same-token", now, time.Minute)
	require.NoError(t, repo.Upsert(ctx, first))

	second := newSession(first.AccountID, "same-token", now.Add(time.Second), 2*time.Hour)
	require.NoError(t, repo.Upsert(ctx, second))

	found, err := repo.FindByTokenHash(ctx, first.TokenHash)
	require.NoError(t, err)
	assert.True(t, second.ExpiresAt.Equal(found.ExpiresAt))
}

func TestSessionRepository_Expired(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t)).(*sessionRepository)
	ctx := t.Context()
	issued := time.Now().UTC().Truncate(time.Millisecond)

	session := newSession(uuid.New(), "short", issued, time.Minute)
	require.NoError(t, repo.Upsert(ctx, session))

	repo.now = func() time.Time { return issued.Add(time.Minute) }
	_, err := repo.FindByTokenHash(ctx, session.TokenHash)
	assert.ErrorIs(t, err, repository.ErrSessionExpired)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := t.Context()

	session := newSession(uuid.New(), "to-delete", time.Now().UTC(), time.Hour)
	require.NoError(t, repo.Upsert(ctx, session))

	require.NoError(t, repo.DeleteByTokenHash(ctx, session.TokenHash))

	_, err := repo.FindByTokenHash(ctx, session.TokenHash)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	assert.ErrorIs(t, repo.DeleteByTokenHash(ctx, session.TokenHash), repository.ErrSessionNotFound)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := t.Context()
	now := time.Now().UTC().Truncate(time.Millisecond)
	accountID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, newSession(accountID, "old-1", now.Add(-2*time.Hour), time.Hour)))
	require.NoError(t, repo.Upsert(ctx, newSession(accountID, "old-2", now.Add(-3*time.Hour), time.Hour)))
	live := newSession(accountID, "live", now, time.Hour)
	require.NoError(t, repo.Upsert(ctx, live))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repo.FindByTokenHash(ctx, live.TokenHash)
	assert.NoError(t, err)

	removed, err = repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
