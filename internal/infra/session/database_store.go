package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/util"
)

// databaseStore keeps sessions in the credential store's sessions table.
type databaseStore struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// NewDatabaseStore is the constructor for databaseStore.
func NewDatabaseStore(repo repository.SessionRepository) service.SessionStore {
	return &databaseStore{repo: repo, now: time.Now}
}

func (s *databaseStore) Register(ctx context.Context, token string, accountID uuid.UUID, ttl time.Duration) (*entity.Session, error) {
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	session := &entity.Session{
		TokenHash: util.SHA256Hex(token),
		AccountID: accountID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	if err := s.repo.Upsert(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Resolve treats expired rows as absent and removes them on the way.
func (s *databaseStore) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	tokenHash := util.SHA256Hex(token)

	session, err := s.repo.FindByTokenHash(ctx, tokenHash)
	if errors.Is(err, repository.ErrSessionExpired) {
		_ = s.repo.DeleteByTokenHash(ctx, tokenHash)

		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *databaseStore) Revoke(ctx context.Context, token string) error {
	return s.repo.DeleteByTokenHash(ctx, util.SHA256Hex(token))
}
