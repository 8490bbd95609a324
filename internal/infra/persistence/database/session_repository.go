package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"
	"authsvc/internal/infra/persistence/model"
)

// sessionRepository implements repository.SessionRepository using GORM.
type sessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db, now: time.Now}
}

// Upsert inserts the session or refreshes the row already holding the same token hash.
func (repo *sessionRepository) Upsert(ctx context.Context, session *entity.Session) error {
	m := &model.SessionModel{
		TokenHash: session.TokenHash,
		AccountID: session.AccountID,
		IssuedAt:  session.IssuedAt.UTC(),
		ExpiresAt: session.ExpiresAt.UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"account_id", "issued_at", "expires_at"}),
		}).
		Create(m).Error
	if err != nil {
		return storageError(err, "upsert session")
	}

	return nil
}

func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var m model.SessionModel
	err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, storageError(err, "find session")
	}

	session := &entity.Session{
		TokenHash: m.TokenHash,
		AccountID: m.AccountID,
		IssuedAt:  m.IssuedAt.UTC(),
		ExpiresAt: m.ExpiresAt.UTC(),
	}
	if session.ExpiredAt(repo.now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.SessionModel{})
	if result.Error != nil {
		return storageError(result.Error, "delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, storageError(result.Error, "delete expired sessions")
	}

	return result.RowsAffected, nil
}
