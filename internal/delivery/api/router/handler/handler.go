// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"smokebreak/internal/delivery/api/middleware"
	"smokebreak/internal/delivery/api/response"
	domainerrors "smokebreak/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageResponse acknowledges operations that return no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func currentUser(c echo.Context) (string, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return "", domainerrors.ErrUnauthenticated.WrapMessage("no authenticated user")
	}

	return userID, nil
}

// bind decodes and validates a request body. Validation errors are rendered by the error middleware.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return errors.WithStack(c.Validate(req))
}

// timeRange parses the RFC 3339 `from` and `to` query parameters.
func timeRange(c echo.Context) (from, to time.Time, err error) {
	from, err = time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, domainerrors.ErrValidationFailed.WithDetails("from must be an RFC 3339 timestamp")
	}
	to, err = time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, domainerrors.ErrValidationFailed.WithDetails("to must be an RFC 3339 timestamp")
	}

	return from, to, nil
}

func ok(c echo.Context, data any) error {
	return response.Success(c, http.StatusOK, data)
}

func created(c echo.Context, data any) error {
	return response.Success(c, http.StatusCreated, data)
}

func done(c echo.Context, message string) error {
	return response.Success(c, http.StatusOK, MessageResponse{Message: message})
}
