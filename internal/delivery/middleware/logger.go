package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smokebreak/config"
	deliverycontext "smokebreak/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const healthPath = "/health"

// LoggerMiddleware logs every request in debug mode and only server errors otherwise.
// Health probes are never logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().URL.Path == healthPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil {
		// The centralized error handler has not written the response yet
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		} else if status < 400 {
			status = 500
		}
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}
	if !m.debug && level < slog.LevelError {
		return
	}

	msg := "HTTP Request"
	if isUpgrade(req.Header.Get(echo.HeaderUpgrade)) {
		msg = "Stream closed"
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		fields = append(fields, slog.String("user_id", userID))
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", redactQuery(req.URL.Query())))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	m.logger.LogAttrs(context.Background(), level, msg, fields...)
}

func isUpgrade(header string) bool {
	return strings.EqualFold(header, "websocket")
}

// redactQuery drops access tokens passed on stream URLs.
func redactQuery(values map[string][]string) string {
	var b strings.Builder
	for key, vals := range values {
		for _, v := range vals {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			if key == "access_token" {
				v = "REDACTED"
			}
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(v)
		}
	}

	return b.String()
}
