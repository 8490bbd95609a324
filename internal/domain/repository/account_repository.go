// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authsvc/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists is returned when an insert violates the unique email index.
	ErrAccountAlreadyExists = errors.New("account already exists")
)

// AccountRepository is the credential store contract.
// Implementations must enforce email uniqueness with a unique index and report
// violations as ErrAccountAlreadyExists.
type AccountRepository interface {
	// FindByEmail retrieves an account by its exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID retrieves an account by its identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Insert persists a new account. ID and CreatedAt are assigned by the store.
	Insert(ctx context.Context, account *entity.Account) error
}
