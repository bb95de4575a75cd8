// Package response writes the JSON envelopes every API route returns.
package response

import (
	"net/http"

	deliverycontext "smokebreak/internal/delivery/context"
	domainerrors "smokebreak/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps a payload as {data, meta}.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure as {error, meta}.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data with the given status.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details never leave the server on 401, 403 or 5xx.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError writes a domain error using its own status, code and details.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// ValidationFailed writes a 400 listing the offending request fields.
func ValidationFailed(c echo.Context, fields any) error {
	return Error(c, http.StatusBadRequest,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		fields,
	)
}

// InternalError hides the cause behind a generic 500.
func InternalError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}
