// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a stored user record: identity, credential digest and profile fields.
type Account struct {
	ID           uuid.UUID // Assigned by the store at insert time.
	Name         string    // Display name, never empty.
	Email        string    // Unique across all accounts, case-sensitive as stored.
	PasswordHash string    // Digest produced by the configured PasswordHasher.
	Age          *int      // Optional, non-negative.
	CreatedAt    time.Time // Set once, at insert.
}

// Identity is the subset of an account that a bearer token proves.
type Identity struct {
	AccountID uuid.UUID
	Email     string
	Name      string
}

// Identity returns the public identity of the account.
func (a *Account) Identity() Identity {
	return Identity{
		AccountID: a.ID,
		Email:     a.Email,
		Name:      a.Name,
	}
}
