package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"
	mockRepo "authsvc/internal/mocks/repository"
	"authsvc/internal/usecase"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	accountRepo *mockRepo.MockAccountRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewProfileService(ProfileServiceParams{
		AccountRepo: accountRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	expected := newSeedAccount()

	fx.accountRepo.EXPECT().FindByID(mock.Anything, expected.ID).Return(expected, nil)

	account, err := fx.service.GetProfile(ctx, expected.ID.String())

	require.NoError(t, err)
	assert.Equal(t, expected, account)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(mock.Anything, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.GetProfile(ctx, accountID.String())

	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Contains(t, err.Error(), "User not found")
}

func TestProfileService_GetProfile_MalformedID(t *testing.T) {
	fx := createTestProfileService(t)

	for _, id := range []string{"", "42", "not-a-uuid"} {
		_, err := fx.service.GetProfile(context.Background(), id)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound, id)
	}
}

func TestProfileService_GetProfile_StorageFault(t *testing.T) {
	fx := createTestProfileService(t)
	accountID := uuid.New()
	storeErr := domainerrors.NewStorageError(errors.New("syntax error"), "find account by id")

	fx.accountRepo.EXPECT().FindByID(mock.Anything, accountID).Return(nil, storeErr).Once()

	_, err := fx.service.GetProfile(context.Background(), accountID.String())

	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, domainerrors.KindStorage, domainerrors.KindOf(err))
}
