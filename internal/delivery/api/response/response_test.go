package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "smokebreak/internal/delivery/context"
	domainerrors "smokebreak/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestSuccess_WrapsDataAndRequestID(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "g1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"g1"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestAppError_KeepsDetailsOnClientErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, AppError(c, domainerrors.ErrValidationFailed.WithDetails("duration out of range")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), body.Error.Code)
	assert.Equal(t, "duration out of range", body.Error.Details)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestAppError_DropsDetailsOnForbidden(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, AppError(c, domainerrors.ErrForbidden.WithDetails("user u2 is not an admin")))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decodeError(t, rec).Error.Details)
}

func TestValidationFailed_ListsFields(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, ValidationFailed(c, map[string]string{"name": "required"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"name": "required"}, decodeError(t, rec).Error.Details)
}

func TestInternalError_IsGeneric(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, InternalError(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}
