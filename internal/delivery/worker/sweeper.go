package worker

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"authsvc/config"
	"authsvc/internal/delivery"
	"authsvc/internal/usecase"
)

// sessionSweeper periodically deletes expired rows from the session table.
type sessionSweeper struct {
	enabled     bool
	interval    time.Duration
	maintenance usecase.SessionMaintenanceUsecase
	logger      *slog.Logger
	stopCh      chan struct{}
}

// SweeperParams holds dependencies for the session sweeper.
type SweeperParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Maintenance usecase.SessionMaintenanceUsecase
}

// NewSessionSweeper creates the sweeper delivery. Redis sessions expire on
// their own, so the sweeper only runs for the database session store.
func NewSessionSweeper(params SweeperParams) delivery.Delivery {
	sweeper := &sessionSweeper{
		enabled:     params.Cfg.Session.Store != config.SessionStoreRedis && params.Cfg.Session.SweepInterval > 0,
		interval:    params.Cfg.Session.SweepInterval,
		maintenance: params.Maintenance,
		logger:      params.Logger,
		stopCh:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(sweeper.stopCh)

			return nil
		},
	})

	return sweeper
}

// Serve blocks until ctx is done or the app stops.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Session sweeper disabled")

		return nil
	}

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	if _, err := s.maintenance.PurgeExpiredSessions(ctx); err != nil {
		s.logger.Warn("Session sweep failed", slog.Any("error", err))
	}
}
