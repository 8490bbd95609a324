// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authsvc/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
// Name and email are checked for emptiness after trimming but stored as given.
type SignupInput struct {
	Name     string `validate:"max=100"`
	Email    string `validate:"max=255"`
	Password string
	Age      *int `validate:"omitempty,min=0,max=150"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by signup and login.
type AuthOutput struct {
	Account *entity.Account
	Token   string
}

// AccountUsecase defines the credential and session-token lifecycle.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// ValidateToken resolves a bearer token to the identity it was issued for.
	ValidateToken(ctx context.Context, token string) (*entity.Identity, error)
	// Logout revokes the session behind token.
	Logout(ctx context.Context, token string) error
}
