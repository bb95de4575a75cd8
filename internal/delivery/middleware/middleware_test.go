package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"smokebreak/config"
	deliverycontext "smokebreak/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestID_HeaderThenQueryThenGenerated(t *testing.T) {
	e := newEcho(&bytes.Buffer{}, false)
	e.GET("/echo", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/echo?request_id=from-query", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "from-header")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "from-header", rec.Body.String())
	assert.Equal(t, "from-header", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo?request_id=from-query", nil))
	assert.Equal(t, "from-query", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo", nil))
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLogger_DebugLogsRequestsWithUser(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf, true)
	e.GET("/me", func(c echo.Context) error {
		deliverycontext.SetUserID(c, "alice")

		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me?access_token=secret", nil))

	out := buf.String()
	assert.Contains(t, out, `"user_id":"alice"`)
	assert.Contains(t, out, "access_token=REDACTED")
	assert.NotContains(t, out, "secret")
}

func TestLogger_QuietOutsideDebugExceptServerErrors(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf, false)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), `"status":502`)
}

func TestLogger_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf, true)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, buf.String())
}
