package usecase

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"
)

// CreateInvitationInput defines the data required to broadcast a break invitation.
type CreateInvitationInput struct {
	GroupID         string
	Message         string
	Location        string
	PlannedDuration int // Minutes, 0 selects entity.DefaultPlannedDuration
}

// RespondInput is a participant's answer to an invitation.
type RespondInput struct {
	InvitationID  string
	Response      entity.ResponseType
	Reason        entity.DeclineReason
	CustomMessage string
}

// InvitationUsecase drives the break invitation lifecycle.
type InvitationUsecase interface {
	Create(ctx context.Context, userID string, input *CreateInvitationInput) (*entity.BreakInvitation, error)

	// Respond records or replaces the caller's answer.
	Respond(ctx context.Context, userID string, input *RespondInput) (*entity.BreakInvitation, error)

	Cancel(ctx context.Context, userID, invitationID string) (*entity.BreakInvitation, error)
	Start(ctx context.Context, userID, invitationID string) (*entity.BreakInvitation, error)

	// Complete closes the invitation and records the break session. actualDuration 0 uses the planned duration.
	Complete(ctx context.Context, userID, invitationID string, actualDuration int) (*entity.BreakSession, error)

	// ExpireSweep moves PENDING invitations past their expiry to EXPIRED in both stores.
	ExpireSweep(ctx context.Context) (int64, error)

	// GetByID reads through the remote store into the local cache.
	GetByID(ctx context.Context, invitationID string) (*entity.BreakInvitation, error)

	// SyncGroup replaces the cached invitations of a group with the remote ones. Members only.
	SyncGroup(ctx context.Context, userID, groupID string) error

	ForGroup(ctx context.Context, userID, groupID string) ([]*entity.BreakInvitation, error)
	ByInitiator(ctx context.Context, userID string) ([]*entity.BreakInvitation, error)
	ByStatus(ctx context.Context, status entity.BreakInvitationStatus) ([]*entity.BreakInvitation, error)

	// Active lists open invitations in the user's groups.
	Active(ctx context.Context, userID string) ([]*entity.BreakInvitation, error)
	ActiveForGroup(ctx context.Context, userID, groupID string) ([]*entity.BreakInvitation, error)

	InDateRange(ctx context.Context, from, to time.Time) ([]*entity.BreakInvitation, error)

	// CountToday counts invitations the user created since local midnight.
	CountToday(ctx context.Context, userID string) (int64, error)
	CountTodayForGroup(ctx context.Context, groupID string) (int64, error)
}
