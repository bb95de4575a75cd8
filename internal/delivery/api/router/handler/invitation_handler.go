package handler

import (
	"context"
	"log/slog"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InvitationHandlerParams holds dependencies for InvitationHandler, injected by Fx.
type InvitationHandlerParams struct {
	fx.In

	InvitationUC usecase.InvitationUsecase
	Logger       *slog.Logger
}

// InvitationHandler serves the break invitation lifecycle.
type InvitationHandler struct {
	invitationUC usecase.InvitationUsecase
	logger       *slog.Logger
}

// NewInvitationHandler is the constructor for InvitationHandler
func NewInvitationHandler(params InvitationHandlerParams) *InvitationHandler {
	return &InvitationHandler{
		invitationUC: params.InvitationUC,
		logger:       params.Logger,
	}
}

type CreateInvitationRequest struct {
	GroupID         string `json:"groupId" validate:"required"`
	Message         string `json:"message" validate:"max=500"`
	Location        string `json:"location" validate:"max=200"`
	PlannedDuration int    `json:"plannedDuration" validate:"min=0,max=240"`
}

type RespondRequest struct {
	Response      string `json:"response" validate:"required,oneof=ACCEPTED DECLINED MAYBE"`
	Reason        string `json:"reason" validate:"omitempty,oneof=BUSY WILL_GO_LATER NOT_INTERESTED IN_MEETING CUSTOM"`
	CustomMessage string `json:"customMessage" validate:"max=500"`
}

type CompleteRequest struct {
	ActualDuration int `json:"actualDuration" validate:"min=0,max=1440"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func (h *InvitationHandler) CreateInvitation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateInvitationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	invitation, err := h.invitationUC.Create(c.Request().Context(), userID, &usecase.CreateInvitationInput{
		GroupID:         req.GroupID,
		Message:         req.Message,
		Location:        req.Location,
		PlannedDuration: req.PlannedDuration,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, ToInvitationResponse(invitation))
}

func (h *InvitationHandler) GetInvitation(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	invitation, err := h.invitationUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationResponse(invitation))
}

func (h *InvitationHandler) Respond(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req RespondRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	invitation, err := h.invitationUC.Respond(c.Request().Context(), userID, &usecase.RespondInput{
		InvitationID:  c.Param("id"),
		Response:      entity.ResponseType(req.Response),
		Reason:        entity.DeclineReason(req.Reason),
		CustomMessage: req.CustomMessage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationResponse(invitation))
}

func (h *InvitationHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.invitationUC.Cancel)
}

func (h *InvitationHandler) Start(c echo.Context) error {
	return h.transition(c, h.invitationUC.Start)
}

func (h *InvitationHandler) transition(
	c echo.Context,
	fn func(ctx context.Context, userID, invitationID string) (*entity.BreakInvitation, error),
) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invitation, err := fn(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationResponse(invitation))
}

// Complete closes the invitation and returns the recorded session.
func (h *InvitationHandler) Complete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CompleteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	session, err := h.invitationUC.Complete(c.Request().Context(), userID, c.Param("id"), req.ActualDuration)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toSessionResponse(session))
}

// ExpireSweep runs the expiry sweep on demand.
func (h *InvitationHandler) ExpireSweep(c echo.Context) error {
	expired, err := h.invitationUC.ExpireSweep(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, map[string]int64{"expired": expired})
}

func (h *InvitationHandler) Active(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invitations, err := h.invitationUC.Active(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationList(invitations))
}

func (h *InvitationHandler) Mine(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invitations, err := h.invitationUC.ByInitiator(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationList(invitations))
}

func (h *InvitationHandler) ByStatus(c echo.Context) error {
	invitations, err := h.invitationUC.ByStatus(c.Request().Context(), entity.BreakInvitationStatus(c.Param("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationList(invitations))
}

func (h *InvitationHandler) InDateRange(c echo.Context) error {
	from, to, err := timeRange(c)
	if err != nil {
		return err
	}

	invitations, err := h.invitationUC.InDateRange(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationList(invitations))
}

func (h *InvitationHandler) CountToday(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	count, err := h.invitationUC.CountToday(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, CountResponse{Count: count})
}

func (h *InvitationHandler) ForGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invitations, err := h.invitationUC.ForGroup(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationList(invitations))
}

func (h *InvitationHandler) ActiveForGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	invitations, err := h.invitationUC.ActiveForGroup(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToInvitationList(invitations))
}

func (h *InvitationHandler) CountTodayForGroup(c echo.Context) error {
	count, err := h.invitationUC.CountTodayForGroup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, CountResponse{Count: count})
}

// SyncGroup replaces the cached invitations of a group with the remote ones.
func (h *InvitationHandler) SyncGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.invitationUC.SyncGroup(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Group invitations synced")
}
