package handler

import (
	"log/slog"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves break history and analytics.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

type UpdateDurationRequest struct {
	Minutes int `json:"minutes" validate:"required,min=1,max=1440"`
}

type RateSessionRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback" validate:"max=1000"`
}

// MySessions lists the caller's sessions, limited to [from, to) when both are given.
func (h *SessionHandler) MySessions(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var sessions []*entity.BreakSession
	if c.QueryParam("from") != "" || c.QueryParam("to") != "" {
		from, to, rangeErr := timeRange(c)
		if rangeErr != nil {
			return rangeErr
		}
		sessions, err = h.sessionUC.InDateRange(ctx, userID, from, to)
	} else {
		sessions, err = h.sessionUC.ForUser(ctx, userID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toSessionList(sessions))
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	session, err := h.sessionUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toSessionResponse(session))
}

func (h *SessionHandler) ByInvitation(c echo.Context) error {
	session, err := h.sessionUC.ByInvitation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toSessionResponse(session))
}

func (h *SessionHandler) ForGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	sessions, err := h.sessionUC.ForGroup(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toSessionList(sessions))
}

func (h *SessionHandler) UpdateDuration(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateDurationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.sessionUC.UpdateDuration(c.Request().Context(), userID, c.Param("id"), req.Minutes)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toSessionResponse(session))
}

func (h *SessionHandler) Rate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req RateSessionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.sessionUC.Rate(c.Request().Context(), userID, c.Param("id"), req.Rating, req.Feedback)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toSessionResponse(session))
}

func (h *SessionHandler) Analytics(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	analytics, err := h.sessionUC.Analytics(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toAnalyticsResponse(analytics))
}
