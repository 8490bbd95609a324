package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"authsvc/internal/delivery/api/response"
	deliverycontext "authsvc/internal/delivery/context"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind() == domainerrors.KindStorage {
			logger.Error("Store fault",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			notFound := domainerrors.ErrRouteNotFound
			_ = response.Error(c, notFound.HTTPCode(), notFound.ErrorCode(), notFound.Message())

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message)

		return
	}

	// Unknown failures are reported like store faults; the detail stays in the log.
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	storageErr := domainerrors.NewStorageError(err, "unhandled")
	_ = response.InternalServerError(c, storageErr.ErrorCode(), storageErr.Message())
}
