package session

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/util"
)

const defaultKeyPrefix = "authsvc"

// redisRecord is the JSON value stored under a session key.
type redisRecord struct {
	AccountID uuid.UUID `json:"account_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// redisStore keeps sessions as expiring Redis keys, so expiry needs no sweeper.
type redisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(client *redis.Client, keyPrefix string) service.SessionStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &redisStore{client: client, prefix: keyPrefix, now: time.Now}
}

func (s *redisStore) key(token string) string {
	return s.prefix + ":session:" + util.SHA256Hex(token)
}

func (s *redisStore) Register(ctx context.Context, token string, accountID uuid.UUID, ttl time.Duration) (*entity.Session, error) {
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	now := s.now().UTC()
	session := &entity.Session{
		TokenHash: util.SHA256Hex(token),
		AccountID: accountID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(redisRecord{
		AccountID: session.AccountID,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal session")
	}

	if err := s.client.Set(ctx, s.key(token), data, ttl).Err(); err != nil {
		return nil, redisError(err, "register session")
	}

	return session, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, redisError(err, "resolve session")
	}

	var record redisRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, domainerrors.NewStorageError(err, "decode session")
	}

	session := &entity.Session{
		TokenHash: util.SHA256Hex(token),
		AccountID: record.AccountID,
		IssuedAt:  record.IssuedAt,
		ExpiresAt: record.ExpiresAt,
	}
	// Redis expiry has millisecond resolution; the record is authoritative.
	if session.ExpiredAt(s.now()) {
		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

func (s *redisStore) Revoke(ctx context.Context, token string) error {
	removed, err := s.client.Del(ctx, s.key(token)).Result()
	if err != nil {
		return redisError(err, "revoke session")
	}
	if removed == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// redisError classifies connection-level failures as transient.
func redisError(err error, operation string) error {
	var netErr net.Error
	if errors.Is(err, io.EOF) || errors.Is(err, redis.ErrPoolTimeout) || errors.As(err, &netErr) {
		return domainerrors.NewTransientStorageError(err, operation)
	}

	return domainerrors.NewStorageError(err, operation)
}
