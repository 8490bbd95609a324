// Package model holds the GORM persistence models. They are mapped to domain entities by the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'users' table. IDs are UUIDv7 generated by the application
// so the same schema works on every supported driver.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Age          *int
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the identifier and creation time when the caller left them empty.
func (m *AccountModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = Now()
	}

	return nil
}

// Now returns the current UTC time at millisecond precision, the finest every driver keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
