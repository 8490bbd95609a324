// Package context carries request-scoped values between the echo middleware
// chain and the layers below it.
package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from the request and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context store key; unexported so handlers go through the accessors.
const echoRequestIDKey = "request_id"

// SetRequestID records the request ID on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the ID set by the request ID middleware, or "" when
// the request never passed through it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}
