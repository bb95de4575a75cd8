// Package context carries request-scoped values between echo handlers and the layers below them.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyUserID    ContextKey = "user_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// QueryRequestID lets WebSocket clients, which cannot set headers, pass a request ID.
	QueryRequestID = "request_id"
)

// GetRequestID returns the request ID stored on c, or a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no request ID is set.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// SetUserID records the authenticated caller on both the echo context and the request context.
func SetUserID(c echo.Context, userID string) {
	c.Set(string(KeyUserID), userID)
	c.SetRequest(c.Request().WithContext(WithUserID(c.Request().Context(), userID)))
}

// GetUserID returns the authenticated caller, if any.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(string(KeyUserID)).(string)

	return userID, ok && userID != ""
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserIDFromContext returns "" outside authenticated requests.
func GetUserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyUserID).(string); ok {
		return id
	}

	return ""
}

// GetLogger returns nil when no request-scoped logger is set.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
