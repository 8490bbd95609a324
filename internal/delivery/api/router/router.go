// Package router wires the account API routes onto echo.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"authsvc/internal/delivery/api/middleware"
	"authsvc/internal/delivery/api/router/handler"
	domainerrors "authsvc/internal/domain/errors"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.Signup)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/signin", r.accountHandler.Login)
		authGroup.GET("/validate", r.accountHandler.Validate, r.authMiddleware.Authenticate(domainerrors.ErrInvalidToken))
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate(domainerrors.ErrUnauthorized))
	{
		usersGroup.GET("/:id", r.profileHandler.GetProfile)
	}
}
