package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"authsvc/config"
	"authsvc/internal/domain/constants"
	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/infra/pubsub"
	mockUC "authsvc/internal/mocks/usecase"
)

func newGoogleConfig(env string) *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = env

	return cfg
}

func newPushRequest(t *testing.T, authorization string) *http.Request {
	event := &service.AccountEventMessage{
		EventID:    uuid.NewString(),
		Type:       string(entity.AccountEventLoggedOut),
		AccountID:  uuid.NewString(),
		OccurredAt: time.Now().UTC(),
	}
	msg, err := pubsub.NewPushMessage(event, time.Now())
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return req
}

func TestNewPushHandler_VerifyPushAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		cfg  *config.Config
		want bool
	}{
		{name: "google in production", cfg: newGoogleConfig(constants.EnvProduction), want: true},
		{name: "google locally", cfg: newGoogleConfig(constants.EnvLocal), want: false},
		{name: "google in develop", cfg: newGoogleConfig(constants.EnvDevelop), want: false},
		{name: "local provider", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}, want: false},
		{name: "not configured", cfg: &config.Config{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPushHandler(PushHandlerParams{Config: tt.cfg, Logger: logger})
			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		wantStatus    int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authorization: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "rejected by google", authorization: "Bearer abc", validateErr: errors.New("bad signature"), wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", authorization: "Bearer abc", payload: &idtoken.Payload{Issuer: "evil.example.com"}, wantStatus: http.StatusUnauthorized},
		{name: "unverified email", authorization: "Bearer abc", payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, wantStatus: http.StatusUnauthorized},
		{name: "valid", authorization: "Bearer abc", payload: &idtoken.Payload{Issuer: "https://accounts.google.com"}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventUC := mockUC.NewMockAccountEventUsecase(t)
			h := NewPushHandler(PushHandlerParams{
				Config:  newGoogleConfig(constants.EnvProduction),
				Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
				EventUC: eventUC,
			})
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "abc", token)
				assert.Equal(t, "http://example.com/push", audience)

				return tt.payload, tt.validateErr
			}
			if tt.wantStatus == http.StatusOK {
				eventUC.EXPECT().RecordAccountEvent(mock.Anything, mock.Anything).Return(true, nil)
			}

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(newPushRequest(t, tt.authorization), rec)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
