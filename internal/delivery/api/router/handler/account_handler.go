// Package handler contains the HTTP handlers for the account API.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"authsvc/internal/delivery/api/middleware"
	"authsvc/internal/delivery/api/response"
	deliverycontext "authsvc/internal/delivery/context"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountHandler serves signup, login, token validation and logout.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Signup handles account registration.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("malformed signup body")
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusCreated, "User created successfully", output)
}

// Login handles credential sign-in. It also serves the /signin alias.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("malformed login body")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, "Signed in successfully", output)
}

// Validate returns the caller resolved by the auth middleware.
func (h *AccountHandler) Validate(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	return response.Identity(c, identity)
}

// Logout revokes the session behind the bearer token.
func (h *AccountHandler) Logout(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Signed out successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
