package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"authsvc/config"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"
)

type sessionMaintenanceService struct {
	sessionRepo repository.SessionRepository
	guard       storeGuard
	logger      *slog.Logger
	now         func() time.Time
}

// SessionMaintenanceServiceParams holds dependencies for SessionMaintenanceService, injected by Fx.
type SessionMaintenanceServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionMaintenanceService is the constructor for sessionMaintenanceService.
func NewSessionMaintenanceService(params SessionMaintenanceServiceParams) usecase.SessionMaintenanceUsecase {
	return &sessionMaintenanceService{
		sessionRepo: params.SessionRepo,
		guard:       newStoreGuard(params.Config),
		logger:      params.Logger,
		now:         time.Now,
	}
}

// PurgeExpiredSessions is safe to repeat, so it is retried like a read.
func (srv *sessionMaintenanceService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	now := srv.now()

	removed, err := guardedRead(ctx, srv.guard, func(ctx context.Context) (int64, error) {
		return srv.sessionRepo.DeleteExpired(ctx, now)
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	if removed > 0 {
		srv.logger.Info("Expired sessions purged", slog.Int64("removed", removed))
	}

	return removed, nil
}
