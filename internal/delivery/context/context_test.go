package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authsvc/internal/domain/entity"
)

func newEchoContext(ctx context.Context) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		c := newEchoContext(context.Background())

		assert.Empty(t, GetRequestID(c))
		assert.Empty(t, GetRequestIDFromContext(context.Background()))
	})

	t.Run("set on echo context", func(t *testing.T) {
		c := newEchoContext(context.Background())
		SetRequestID(c, "req-1")

		assert.Equal(t, "req-1", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		c := newEchoContext(WithRequestID(context.Background(), "req-2"))

		assert.Equal(t, "req-2", GetRequestID(c))
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestIdentity(t *testing.T) {
	c := newEchoContext(context.Background())

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	identity := &entity.Identity{AccountID: uuid.New(), Email: "test@example.com", Name: "Test User"}
	SetIdentity(c, identity)

	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}
