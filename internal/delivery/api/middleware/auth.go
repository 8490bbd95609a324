package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "authsvc/internal/delivery/context"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer credential of a request to an account.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate validates the bearer token and stores the caller's identity on the context.
// Any authentication failure is reported as rejection, so each route can keep its own message.
func (m *AuthMiddleware) Authenticate(rejection *domainerrors.BaseError) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return rejection
			}

			identity, err := m.accountUC.ValidateToken(c.Request().Context(), token)
			if err != nil {
				if domainerrors.KindOf(err) == domainerrors.KindAuthentication {
					return rejection
				}

				return errors.WithStack(err)
			}

			deliverycontext.SetIdentity(c, identity)

			return next(c)
		}
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", false
	}

	return token, true
}
