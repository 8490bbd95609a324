package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/repository"
	"authsvc/internal/infra/persistence/model"
)

const defaultEventListLimit = 50

// accountEventRepository implements repository.AccountEventRepository using GORM.
type accountEventRepository struct {
	db *gorm.DB
}

// NewAccountEventRepository is the constructor for accountEventRepository.
func NewAccountEventRepository(db *gorm.DB) repository.AccountEventRepository {
	return &accountEventRepository{db: db}
}

func (repo *accountEventRepository) Create(ctx context.Context, event *entity.AccountEvent) error {
	m := &model.AccountEventModel{
		ID:         event.ID,
		Type:       string(event.Type),
		AccountID:  event.AccountID,
		Email:      event.Email,
		RequestID:  event.RequestID,
		OccurredAt: event.OccurredAt.UTC(),
		ReceivedAt: event.ReceivedAt.UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountEventDuplicate
		}

		return storageError(err, "create account event")
	}

	return nil
}

func (repo *accountEventRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.AccountEvent, error) {
	if limit <= 0 {
		limit = defaultEventListLimit
	}

	var models []model.AccountEventModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, storageError(err, "list account events")
	}

	events := make([]*entity.AccountEvent, 0, len(models))
	for i := range models {
		m := &models[i]
		events = append(events, &entity.AccountEvent{
			ID:         m.ID,
			Type:       entity.AccountEventType(m.Type),
			AccountID:  m.AccountID,
			Email:      m.Email,
			RequestID:  m.RequestID,
			OccurredAt: m.OccurredAt.UTC(),
			ReceivedAt: m.ReceivedAt.UTC(),
		})
	}

	return events, nil
}
