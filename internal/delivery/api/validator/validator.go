// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "authsvc/internal/domain/errors"
)

// CustomValidator reports every failed rule as an invalid-input error.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with required-struct checks enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	return nil
}
