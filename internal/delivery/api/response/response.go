// Package response builds the JSON bodies returned by the account API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	"authsvc/internal/usecase"
	"authsvc/internal/util"
)

// ErrorResponse is the body of every failed request. Message is user-facing
// and never carries internal detail.
type ErrorResponse struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// MessageResponse carries only a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Token   string `json:"token"`
}

// IdentityResponse is returned by token validation.
type IdentityResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ProfileResponse is the public view of an account.
type ProfileResponse struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       *int   `json:"age"`
	CreatedAt string `json:"created_at"`
}

// Error writes an error body tagged with the current request ID.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// Message returns a body with a single message field.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Auth returns the signup/login body.
func Auth(c echo.Context, statusCode int, message string, output *usecase.AuthOutput) error {
	return c.JSON(statusCode, AuthResponse{
		Message: message,
		UID:     output.Account.ID.String(),
		Email:   output.Account.Email,
		Name:    output.Account.Name,
		Token:   output.Token,
	})
}

// Identity returns the validated caller.
func Identity(c echo.Context, identity *entity.Identity) error {
	return c.JSON(http.StatusOK, IdentityResponse{
		UID:   identity.AccountID.String(),
		Email: identity.Email,
		Name:  identity.Name,
	})
}

// Profile returns an account profile with created_at in RFC 3339 UTC.
func Profile(c echo.Context, account *entity.Account) error {
	return c.JSON(http.StatusOK, ProfileResponse{
		UID:       account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Age:       account.Age,
		CreatedAt: util.FormatTimestamp(account.CreatedAt),
	})
}
