package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "authsvc/internal/domain/errors"
)

type pageQuery struct {
	Limit int `validate:"gte=0,lte=200"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	assert.NoError(t, cv.Validate(&pageQuery{Limit: 10}))
	assert.NoError(t, cv.Validate(&pageQuery{}))

	err := cv.Validate(&pageQuery{Limit: -1})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}
