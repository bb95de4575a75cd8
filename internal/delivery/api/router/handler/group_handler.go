package handler

import (
	"log/slog"
	"net/http"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler serves group and membership routes.
type GroupHandler struct {
	groupUC usecase.GroupUsecase
	logger  *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		groupUC: params.GroupUC,
		logger:  params.Logger,
	}
}

type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsPublic    bool   `json:"isPublic"`
	MaxMembers  int    `json:"maxMembers" validate:"min=0,max=500"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsPublic    *bool   `json:"isPublic"`
	MaxMembers  *int    `json:"maxMembers" validate:"omitempty,min=1,max=500"`
}

// JoinGroupRequest carries either a typed invite code or scanned QR content.
type JoinGroupRequest struct {
	InviteCode string `json:"inviteCode" validate:"required_without=QRData"`
	QRData     string `json:"qrData"`
}

type SetMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN MEMBER"`
}

// MyGroups serves cached groups; `refresh=true` waits for the remote refresh first.
func (h *GroupHandler) MyGroups(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var groups []*entity.GroupWithMembers
	if c.QueryParam("refresh") == "true" {
		if err := h.groupUC.RefreshMyGroups(ctx, userID); err != nil {
			return errors.WithStack(err)
		}
		groups, err = h.groupUC.CachedGroups(ctx, userID)
	} else {
		groups, err = h.groupUC.MyGroups(ctx, userID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToGroupWithMembersList(groups))
}

func (h *GroupHandler) CreateGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateGroupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	group, err := h.groupUC.Create(c.Request().Context(), userID, &usecase.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		MaxMembers:  req.MaxMembers,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return created(c, ToGroupWithMembersResponse(group))
}

func (h *GroupHandler) GetGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	group, err := h.groupUC.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToGroupWithMembersResponse(group))
}

func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateGroupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	group, err := h.groupUC.Update(c.Request().Context(), userID, c.Param("id"), &usecase.UpdateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		MaxMembers:  req.MaxMembers,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToGroupWithMembersResponse(group))
}

func (h *GroupHandler) DeactivateGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.groupUC.Deactivate(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Group deactivated")
}

func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.groupUC.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Group deleted")
}

func (h *GroupHandler) JoinGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req JoinGroupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var group *entity.GroupWithMembers
	if req.InviteCode != "" {
		group, err = h.groupUC.JoinByInviteCode(ctx, userID, req.InviteCode)
	} else {
		group, err = h.groupUC.JoinByQRCode(ctx, userID, req.QRData)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, ToGroupWithMembersResponse(group))
}

func (h *GroupHandler) LeaveGroup(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.groupUC.Leave(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Left group")
}

func (h *GroupHandler) SetMemberRole(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req SetMemberRoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err = h.groupUC.SetMemberRole(c.Request().Context(), userID, c.Param("id"), c.Param("userId"), entity.GroupRole(req.Role))
	if err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Member role updated")
}

func (h *GroupHandler) RemoveMember(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.groupUC.RemoveMember(c.Request().Context(), userID, c.Param("id"), c.Param("userId")); err != nil {
		return errors.WithStack(err)
	}

	return done(c, "Member removed")
}

// InviteQRCode returns the invite code as a PNG image.
func (h *GroupHandler) InviteQRCode(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	png, err := h.groupUC.InviteQRCode(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *GroupHandler) PublicGroups(c echo.Context) error {
	groups, err := h.groupUC.PublicGroups(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toGroupList(groups))
}

func (h *GroupHandler) SearchGroups(c echo.Context) error {
	groups, err := h.groupUC.SearchGroups(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, toGroupList(groups))
}

func (h *GroupHandler) CreatedGroups(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	groups, err := h.groupUC.GroupsCreatedBy(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g, true))
	}

	return ok(c, out)
}

func (h *GroupHandler) CountActiveGroups(c echo.Context) error {
	count, err := h.groupUC.CountActiveGroups(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return ok(c, map[string]int64{"count": count})
}
