package usecase

import (
	"context"

	"authsvc/internal/domain/entity"
)

// ProfileUsecase defines read access to account profiles.
type ProfileUsecase interface {
	// GetProfile returns the account with the given identifier.
	// A malformed identifier is reported the same way as an unknown one.
	GetProfile(ctx context.Context, accountID string) (*entity.Account, error)
}
