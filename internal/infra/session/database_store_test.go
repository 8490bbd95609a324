package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"
	mockRepo "authsvc/internal/mocks/repository"
	"authsvc/internal/util"
)

func TestDatabaseStore_Register(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	store := NewDatabaseStore(repo).(*databaseStore)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	accountID := uuid.New()

	repo.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			assert.Equal(t, util.SHA256Hex("tok"), session.TokenHash)
			assert.Equal(t, accountID, session.AccountID)
			assert.Equal(t, fixed, session.IssuedAt)
			assert.Equal(t, fixed.Add(time.Hour), session.ExpiresAt)
		}).
		Return(nil)

	session, err := store.Register(t.Context(), "tok", accountID, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, accountID, session.AccountID)
}

func TestDatabaseStore_RegisterPropagatesStorageError(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	store := NewDatabaseStore(repo)
	storeErr := domainerrors.NewStorageError(errors.New("disk full"), "upsert session")

	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(storeErr)

	_, err := store.Register(t.Context(), "tok", uuid.New(), time.Hour)
	assert.ErrorIs(t, err, storeErr)
}

func TestDatabaseStore_Resolve(t *testing.T) {
	accountID := uuid.New()
	hash := util.SHA256Hex("tok")

	tests := []struct {
		name      string
		setupMock func(repo *mockRepo.MockSessionRepository)
		wantErr   error
	}{
		{
			name: "live session",
			setupMock: func(repo *mockRepo.MockSessionRepository) {
				repo.EXPECT().FindByTokenHash(mock.Anything, hash).
					Return(&entity.Session{TokenHash: hash, AccountID: accountID}, nil)
			},
		},
		{
			name: "unknown token",
			setupMock: func(repo *mockRepo.MockSessionRepository) {
				repo.EXPECT().FindByTokenHash(mock.Anything, hash).Return(nil, repository.ErrSessionNotFound)
			},
			wantErr: repository.ErrSessionNotFound,
		},
		{
			name: "expired session is removed",
			setupMock: func(repo *mockRepo.MockSessionRepository) {
				repo.EXPECT().FindByTokenHash(mock.Anything, hash).Return(nil, repository.ErrSessionExpired)
				repo.EXPECT().DeleteByTokenHash(mock.Anything, hash).Return(nil)
			},
			wantErr: repository.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockSessionRepository(t)
			tt.setupMock(repo)

			session, err := NewDatabaseStore(repo).Resolve(t.Context(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, accountID, session.AccountID)
		})
	}
}

func TestDatabaseStore_Revoke(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	repo.EXPECT().DeleteByTokenHash(mock.Anything, util.SHA256Hex("tok")).Return(repository.ErrSessionNotFound)

	err := NewDatabaseStore(repo).Revoke(t.Context(), "tok")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
