package handler

import (
	"log/slog"

	"smokebreak/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves sign-up, sign-in and sign-out.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"max=100"`
	Department  string `json:"department" validate:"max=100"`
	FCMToken    string `json:"fcmToken"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FCMToken string `json:"fcmToken"`
}

type GoogleSignInRequest struct {
	IDToken  string `json:"idToken" validate:"required"`
	FCMToken string `json:"fcmToken"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Department:  req.Department,
		FCMToken:    req.FCMToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, toAuthResponse(out))
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
		FCMToken: req.FCMToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toAuthResponse(out))
}

func (h *AuthHandler) SignInWithGoogle(c echo.Context) error {
	var req GoogleSignInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.SignInWithGoogle(c.Request().Context(), &usecase.GoogleSignInInput{
		IDToken:  req.IDToken,
		FCMToken: req.FCMToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toAuthResponse(out))
}

func (h *AuthHandler) SendPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.userUC.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Password reset email sent")
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userUC.SignOut(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Signed out")
}
