package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"authsvc/config"
	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"
)

type profileService struct {
	accountRepo repository.AccountRepository
	guard       storeGuard
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		accountRepo: params.AccountRepo,
		guard:       newStoreGuard(params.Config),
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, accountID string) (*entity.Account, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		srv.log(ctx).Debug("Profile lookup with malformed id", slog.String("accountID", accountID))

		return nil, domainerrors.ErrUserNotFound
	}

	account, err := guardedRead(ctx, srv.guard, func(ctx context.Context) (*entity.Account, error) {
		return srv.accountRepo.FindByID(ctx, id)
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return account, nil
}
