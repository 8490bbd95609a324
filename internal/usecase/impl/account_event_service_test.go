package impl

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
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	mockRepo "authsvc/internal/mocks/repository"
	"authsvc/internal/usecase"
)

type accountEventServiceFixtures struct {
	service   usecase.AccountEventUsecase
	eventRepo *mockRepo.MockAccountEventRepository
}

func createTestAccountEventService(t *testing.T) accountEventServiceFixtures {
	eventRepo := mockRepo.NewMockAccountEventRepository(t)
	service := NewAccountEventService(AccountEventServiceParams{
		EventRepo: eventRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return accountEventServiceFixtures{
		service:   service,
		eventRepo: eventRepo,
	}
}

func newEventMessage() *service.AccountEventMessage {
	return &service.AccountEventMessage{
		EventID:    uuid.NewString(),
		Type:       string(entity.AccountEventLoggedIn),
		AccountID:  uuid.NewString(),
		Email:      "test@example.com",
		RequestID:  "req-7",
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600)),
	}
}

func TestAccountEventService_RecordAccountEvent_Success(t *testing.T) {
	fx := createTestAccountEventService(t)
	msg := newEventMessage()

	fx.eventRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AccountEvent")).
		Run(func(_ context.Context, event *entity.AccountEvent) {
			assert.Equal(t, msg.EventID, event.ID.String())
			assert.Equal(t, entity.AccountEventLoggedIn, event.Type)
			assert.Equal(t, msg.AccountID, event.AccountID.String())
			assert.Equal(t, "req-7", event.RequestID)
			assert.Equal(t, time.UTC, event.OccurredAt.Location())
			assert.False(t, event.ReceivedAt.IsZero())
		}).
		Return(nil)

	recorded, err := fx.service.RecordAccountEvent(context.Background(), msg)

	require.NoError(t, err)
	assert.True(t, recorded)
}

func TestAccountEventService_RecordAccountEvent_DuplicateIsAcknowledged(t *testing.T) {
	fx := createTestAccountEventService(t)

	fx.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrAccountEventDuplicate)

	recorded, err := fx.service.RecordAccountEvent(context.Background(), newEventMessage())

	require.NoError(t, err)
	assert.False(t, recorded)
}

func TestAccountEventService_RecordAccountEvent_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(msg *service.AccountEventMessage)
	}{
		{name: "malformed event id", mutate: func(msg *service.AccountEventMessage) { msg.EventID = "x" }},
		{name: "malformed account id", mutate: func(msg *service.AccountEventMessage) { msg.AccountID = "" }},
		{name: "unknown type", mutate: func(msg *service.AccountEventMessage) { msg.Type = "account.deleted" }},
		{name: "missing occurred_at", mutate: func(msg *service.AccountEventMessage) { msg.OccurredAt = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountEventService(t)
			msg := newEventMessage()
			tt.mutate(msg)

			recorded, err := fx.service.RecordAccountEvent(context.Background(), msg)

			assert.False(t, recorded)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestAccountEventService_RecordAccountEvent_StorageFault(t *testing.T) {
	fx := createTestAccountEventService(t)
	storeErr := domainerrors.NewTransientStorageError(errors.New("bad conn"), "create account event")

	// Writes are not retried, even on transient faults.
	fx.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(storeErr).Once()

	_, err := fx.service.RecordAccountEvent(context.Background(), newEventMessage())

	assert.ErrorIs(t, err, storeErr)
}

func TestAccountEventService_ListAccountEvents(t *testing.T) {
	accountID := uuid.New()
	events := []*entity.AccountEvent{{ID: uuid.New(), AccountID: accountID, Type: entity.AccountEventSignedUp}}

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "explicit limit", limit: 10, wantLimit: 10},
		{name: "zero uses default", limit: 0, wantLimit: defaultEventListLimit},
		{name: "negative uses default", limit: -3, wantLimit: defaultEventListLimit},
		{name: "maximum is kept", limit: maxEventListLimit, wantLimit: maxEventListLimit},
		{name: "over maximum is clamped", limit: 5000, wantLimit: maxEventListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountEventService(t)
			fx.eventRepo.EXPECT().ListByAccount(mock.Anything, accountID, tt.wantLimit).Return(events, nil)

			got, err := fx.service.ListAccountEvents(context.Background(), accountID.String(), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, events, got)
		})
	}
}

func TestAccountEventService_ListAccountEvents_MalformedID(t *testing.T) {
	fx := createTestAccountEventService(t)

	_, err := fx.service.ListAccountEvents(context.Background(), "nope", 10)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
