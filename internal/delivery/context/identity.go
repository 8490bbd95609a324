package context

import (
	"github.com/labstack/echo/v4"

	"authsvc/internal/domain/constants"
	"authsvc/internal/domain/entity"
)

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(constants.ContextKeyIdentity, identity)
}

// GetIdentity returns the authenticated caller set by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(constants.ContextKeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}
