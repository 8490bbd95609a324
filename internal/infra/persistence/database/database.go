// Package database contains the relational persistence layer built on GORM.
// PostgreSQL, MySQL and SQLite are supported behind the same repositories.
package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"authsvc/config"
	"authsvc/internal/domain/lifecycle"
	"authsvc/internal/errors"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store selected by store.driver and binds it to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	driver := params.Config.Store.Driver

	db, err := open(params.Config)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s store", driver)
	}
	// Every dialector maps its unique violation onto gorm.ErrDuplicatedKey.
	db.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s sql.DB", driver)
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	logger := params.Logger.With(slog.String("driver", driver))

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s store", driver)
			}
			logger.Info("Credential store connected")

			go monitorDBPool(monitorCtx, logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		return openPostgres(cfg)
	case config.DriverMySQL:
		return openMySQL(cfg)
	case config.DriverSQLite, "":
		return openSQLite(cfg)
	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Store pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Store pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
