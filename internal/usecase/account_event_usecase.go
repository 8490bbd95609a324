package usecase

import (
	"context"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/service"
)

// AccountEventUsecase records account events delivered to the worker.
type AccountEventUsecase interface {
	// RecordAccountEvent stores msg. It reports false when the event was already recorded.
	RecordAccountEvent(ctx context.Context, msg *service.AccountEventMessage) (bool, error)

	// ListAccountEvents returns the most recent events of an account, newest first.
	ListAccountEvents(ctx context.Context, accountID string, limit int) ([]*entity.AccountEvent, error)
}
