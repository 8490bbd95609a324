package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
	mockRepo "authsvc/internal/mocks/repository"
)

func TestSessionMaintenanceService_PurgeExpiredSessions(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	srv := NewSessionMaintenanceService(SessionMaintenanceServiceParams{
		SessionRepo: sessionRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*sessionMaintenanceService)

	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	transient := domainerrors.NewTransientStorageError(errors.New("deadlock"), "delete expired sessions")
	sessionRepo.EXPECT().DeleteExpired(mock.Anything, now).Return(0, transient).Once()
	sessionRepo.EXPECT().DeleteExpired(mock.Anything, now).Return(3, nil).Once()

	removed, err := srv.PurgeExpiredSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionMaintenanceService_PurgeExpiredSessions_Failure(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	srv := NewSessionMaintenanceService(SessionMaintenanceServiceParams{
		SessionRepo: sessionRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	storeErr := domainerrors.NewStorageError(errors.New("permission denied"), "delete expired sessions")
	sessionRepo.EXPECT().DeleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).Return(0, storeErr).Once()

	removed, err := srv.PurgeExpiredSessions(context.Background())

	assert.ErrorIs(t, err, storeErr)
	assert.Zero(t, removed)
}
