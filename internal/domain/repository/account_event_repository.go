package repository

import (
	"context"
	"errors"

	"authsvc/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountEventDuplicate is returned when an event with the same ID was already recorded.
var ErrAccountEventDuplicate = errors.New("account event already recorded")

// AccountEventRepository stores the account audit trail.
type AccountEventRepository interface {
	// Create records an event. Re-delivery of the same event ID yields ErrAccountEventDuplicate.
	Create(ctx context.Context, event *entity.AccountEvent) error

	// ListByAccount returns the most recent events of an account, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.AccountEvent, error)
}
