package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"authsvc/config"
	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"
)

const (
	defaultEventListLimit = 50
	maxEventListLimit     = 200
)

type accountEventService struct {
	eventRepo repository.AccountEventRepository
	guard     storeGuard
	logger    *slog.Logger
	now       func() time.Time
}

// AccountEventServiceParams holds dependencies for AccountEventService, injected by Fx.
type AccountEventServiceParams struct {
	fx.In

	EventRepo repository.AccountEventRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountEventService is the constructor for accountEventService.
func NewAccountEventService(params AccountEventServiceParams) usecase.AccountEventUsecase {
	return &accountEventService{
		eventRepo: params.EventRepo,
		guard:     newStoreGuard(params.Config),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *accountEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountEventService) RecordAccountEvent(ctx context.Context, msg *service.AccountEventMessage) (bool, error) {
	event, err := toAccountEvent(msg)
	if err != nil {
		return false, err
	}
	event.ReceivedAt = srv.now().UTC()

	err = srv.guard.write(ctx, func(ctx context.Context) error {
		return srv.eventRepo.Create(ctx, event)
	})
	if errors.Is(err, repository.ErrAccountEventDuplicate) {
		srv.log(ctx).Debug("Duplicate account event ignored", slog.String("eventID", msg.EventID))

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to record account event")
	}

	srv.log(ctx).Info("Account event recorded",
		slog.String("eventID", msg.EventID),
		slog.String("eventType", msg.Type),
		slog.String("accountID", msg.AccountID),
	)

	return true, nil
}

func (srv *accountEventService) ListAccountEvents(ctx context.Context, accountID string, limit int) ([]*entity.AccountEvent, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, domainerrors.ErrUserNotFound
	}
	switch {
	case limit <= 0:
		limit = defaultEventListLimit
	case limit > maxEventListLimit:
		limit = maxEventListLimit
	}

	events, err := guardedRead(ctx, srv.guard, func(ctx context.Context) ([]*entity.AccountEvent, error) {
		return srv.eventRepo.ListByAccount(ctx, id, limit)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list account events")
	}

	return events, nil
}

func toAccountEvent(msg *service.AccountEventMessage) (*entity.AccountEvent, error) {
	eventID, err := uuid.Parse(msg.EventID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("malformed event id")
	}
	accountID, err := uuid.Parse(msg.AccountID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("malformed account id")
	}
	eventType := entity.AccountEventType(msg.Type)
	if !eventType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("unknown event type")
	}
	if msg.OccurredAt.IsZero() {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("missing occurred_at")
	}

	return &entity.AccountEvent{
		ID:         eventID,
		Type:       eventType,
		AccountID:  accountID,
		Email:      msg.Email,
		RequestID:  msg.RequestID,
		OccurredAt: msg.OccurredAt.UTC(),
	}, nil
}
