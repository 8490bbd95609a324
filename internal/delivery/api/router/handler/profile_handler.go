package handler

import (
	"github.com/labstack/echo/v4"

	"authsvc/internal/delivery/api/response"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"
)

// ProfileHandler serves account profiles.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile returns the profile of the account named in the path.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	account, err := h.uc.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Profile(c, account)
}
