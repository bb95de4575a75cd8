package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "smokebreak/internal/delivery/context"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyToken = "token"

	// Browsers cannot set headers on WebSocket upgrades, so streams may pass the token as a query parameter.
	queryAccessToken = "access_token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves bearer tokens through the identity provider.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Authenticate rejects requests without a valid token and stores the caller's user ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := BearerToken(c)
		if token == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("missing bearer token")
		}

		ctx := c.Request().Context()
		userID, err := m.userUC.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

			return err
		}

		c.Set(contextKeyToken, token)
		deliverycontext.SetUserID(c, userID)

		// Scope the request logger to the caller
		ctx = c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", userID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// BearerToken reads the token from the Authorization header or the access_token query parameter.
func BearerToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return ""
		}

		return strings.TrimSpace(token)
	}

	return c.QueryParam(queryAccessToken)
}

// GetUserID returns the authenticated caller's ID.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}

// GetToken returns the bearer token the caller authenticated with.
func GetToken(c echo.Context) string {
	token, _ := c.Get(contextKeyToken).(string)

	return token
}
