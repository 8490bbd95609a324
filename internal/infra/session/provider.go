package session

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"authsvc/config"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
)

// Params defines the dependencies of the session store provider.
type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	SessionRepo repository.SessionRepository
	Redis       *redis.Client
}

// NewSessionStore builds the SessionStore selected by session.store.
func NewSessionStore(params Params) (service.SessionStore, error) {
	switch params.Config.Session.Store {
	case config.SessionStoreDatabase, "":
		params.Logger.Info("Using database session store")

		return NewDatabaseStore(params.SessionRepo), nil
	case config.SessionStoreRedis:
		if params.Redis == nil {
			return nil, errors.New("redis.addr is required for the redis session store")
		}
		params.Logger.Info("Using redis session store")

		prefix := ""
		if params.Config.Redis != nil {
			prefix = params.Config.Redis.KeyPrefix
		}

		return NewRedisStore(params.Redis, prefix), nil
	default:
		return nil, errors.Errorf("unknown session store: %s", params.Config.Session.Store)
	}
}
