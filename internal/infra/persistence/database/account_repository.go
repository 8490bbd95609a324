package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/repository"
	"authsvc/internal/errors"
	"authsvc/internal/infra/persistence/model"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail looks an account up by its exact, case-sensitive email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var m model.AccountModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, storageError(err, "find account by email")
	}

	return toAccountDomain(&m), nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var m model.AccountModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, storageError(err, "find account by id")
	}

	return toAccountDomain(&m), nil
}

// Insert persists account and copies the generated ID and creation time back onto it.
func (repo *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	m := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountAlreadyExists
		}

		return storageError(err, "insert account")
	}

	account.ID = m.ID
	account.CreatedAt = m.CreatedAt

	return nil
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Age:          m.Age,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Age:          a.Age,
		CreatedAt:    a.CreatedAt,
	}
}
