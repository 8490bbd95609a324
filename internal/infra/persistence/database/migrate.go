package database

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"authsvc/config"
	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/lifecycle"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"
	"authsvc/internal/infra/persistence/model"
)

// Seed account shipped with development configs. The digest is the unsalted
// SHA-256 of "password", which every configured hasher still verifies.
const (
	seedAccountName   = "Test User"
	seedAccountEmail  = "test@example.com"
	seedAccountDigest = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	seedAccountAge    = 25
)

// MigrateParams defines the dependencies of the schema bootstrap.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	DB        *gorm.DB
	TxManager repository.TransactionManager
}

// RegisterMigrations creates the schema and the seed account on start when enabled.
// It must be invoked after New so the connection is verified first.
func RegisterMigrations(params MigrateParams) {
	storeCfg := params.Config.Store
	if !storeCfg.AutoMigrate && !storeCfg.SeedTestAccount {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if storeCfg.AutoMigrate {
				if err := AutoMigrate(ctx, params.DB); err != nil {
					return err
				}
				params.Logger.Info("Store schema migrated")
			}

			if storeCfg.SeedTestAccount {
				created, err := SeedTestAccount(ctx, params.TxManager)
				if err != nil {
					return err
				}
				if created {
					params.Logger.Info("Seed account created", slog.String("email", seedAccountEmail))
				}
			}

			return nil
		},
	})
}

// AutoMigrate creates or updates the tables used by the service.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.AccountModel{},
		&model.SessionModel{},
		&model.AccountEventModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate store schema")
	}

	return nil
}

// SeedTestAccount inserts the seed account unless its email is already taken.
func SeedTestAccount(ctx context.Context, txManager repository.TransactionManager) (bool, error) {
	created := false
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		accounts := factory.AccountRepo()

		_, err := accounts.FindByEmail(ctx, seedAccountEmail)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return err
		}

		age := seedAccountAge
		if err := accounts.Insert(ctx, &entity.Account{
			Name:         seedAccountName,
			Email:        seedAccountEmail,
			PasswordHash: seedAccountDigest,
			Age:          &age,
		}); err != nil {
			return err
		}
		created = true

		return nil
	})
	if errors.Is(err, repository.ErrAccountAlreadyExists) {
		// Another instance seeded concurrently.
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to seed test account")
	}

	return created, nil
}
