package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"authsvc/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: ErrMissingFields, want: KindValidation},
		{name: "wrapped conflict", err: errors.Wrap(ErrUserAlreadyExists, "signup"), want: KindConflict},
		{name: "authentication", err: ErrInvalidCredentials.WrapMessage("login"), want: KindAuthentication},
		{name: "not found", err: ErrUserNotFound, want: KindNotFound},
		{name: "storage", err: NewStorageError(stderrors.New("boom"), "insert account"), want: KindStorage},
		{name: "unclassified", err: stderrors.New("unknown"), want: KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestStorageError_HidesCause(t *testing.T) {
	cause := stderrors.New("dial tcp 10.0.0.1:5432: connection refused")
	err := NewTransientStorageError(cause, "find account by email")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "An error occurred", err.Message())
	assert.NotContains(t, err.Message(), "10.0.0.1")
	assert.Contains(t, err.Error(), "find account by email")
	assert.True(t, errors.Is(err, cause))
	assert.True(t, err.Transient())
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(errors.Wrap(NewTransientStorageError(stderrors.New("reset"), "read"), "ctx")))
	assert.False(t, IsTransient(NewStorageError(stderrors.New("syntax"), "read")))
	assert.False(t, IsTransient(ErrUserNotFound))
	assert.False(t, IsTransient(nil))
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrInvalidToken.WrapMessage("session lookup")

	require.True(t, errors.Is(wrapped, ErrInvalidToken))

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "Invalid token", appErr.Message())
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
