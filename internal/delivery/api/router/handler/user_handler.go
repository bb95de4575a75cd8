package handler

import (
	"log/slog"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for profile-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=100"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatarUrl" validate:"omitempty,url"`
}

type WorkingHoursRequest struct {
	StartTime   string `json:"startTime" validate:"required,clock"`
	EndTime     string `json:"endTime" validate:"required,clock"`
	WorkingDays []int  `json:"workingDays" validate:"dive,min=1,max=7"`
}

type UpdatePreferencesRequest struct {
	EnableNotifications bool                `json:"enableNotifications"`
	EnableVibration     bool                `json:"enableVibration"`
	EnableSound         bool                `json:"enableSound"`
	WorkingHours        WorkingHoursRequest `json:"workingHours"`
	MaxBreaksPerDay     int                 `json:"maxBreaksPerDay" validate:"min=0"`
}

type UpdateOnlineStatusRequest struct {
	IsOnline bool `json:"isOnline"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcmToken"`
}

// GetMe returns the caller's profile, refreshed from the remote store.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	return h.getUser(c, userID)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	return h.getUser(c, c.Param("id"))
}

func (h *UserHandler) getUser(c echo.Context, userID string) error {
	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Department:  req.Department,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToUserResponse(user))
}

func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdatePreferencesRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdatePreferences(c.Request().Context(), userID, entity.UserPreferences{
		EnableNotifications: req.EnableNotifications,
		EnableVibration:     req.EnableVibration,
		EnableSound:         req.EnableSound,
		WorkingHours: entity.WorkingHours{
			StartTime:   req.WorkingHours.StartTime,
			EndTime:     req.WorkingHours.EndTime,
			WorkingDays: req.WorkingHours.WorkingDays,
		},
		MaxBreaksPerDay: req.MaxBreaksPerDay,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToUserResponse(user))
}

func (h *UserHandler) UpdateOnlineStatus(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateOnlineStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.userUC.UpdateOnlineStatus(c.Request().Context(), userID, req.IsOnline); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Online status updated")
}

// UpdateFCMToken stores the device push token; an empty token stops notifications.
func (h *UserHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.userUC.UpdateFCMToken(c.Request().Context(), userID, req.FCMToken); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Push token updated")
}

func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Account deleted")
}

// ListUsers lists users of a department when `department` is given, online users otherwise.
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		users []*entity.User
		err   error
	)
	if department := c.QueryParam("department"); department != "" {
		users, err = h.userUC.UsersByDepartment(ctx, department)
	} else {
		users, err = h.userUC.OnlineUsers(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}

	return ok(c, out)
}

func (h *UserHandler) Departments(c echo.Context) error {
	departments, err := h.userUC.Departments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, departments)
}

func (h *UserHandler) CountUsers(c echo.Context) error {
	count, err := h.userUC.CountUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, map[string]int64{"count": count})
}
