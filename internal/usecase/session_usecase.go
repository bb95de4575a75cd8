package usecase

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"
)

// SessionUsecase exposes break history and analytics. Sessions only live in the local cache.
type SessionUsecase interface {
	Get(ctx context.Context, sessionID string) (*entity.BreakSession, error)
	ByInvitation(ctx context.Context, invitationID string) (*entity.BreakSession, error)

	// ForGroup lists a group's sessions. Members only.
	ForGroup(ctx context.Context, userID, groupID string) ([]*entity.BreakSession, error)
	ForUser(ctx context.Context, userID string) ([]*entity.BreakSession, error)
	InDateRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.BreakSession, error)

	// UpdateDuration corrects the recorded length. Participants only.
	UpdateDuration(ctx context.Context, userID, sessionID string, minutes int) (*entity.BreakSession, error)

	// Rate stores a 1..5 rating with optional feedback. Participants only.
	Rate(ctx context.Context, userID, sessionID string, rating int, feedback string) (*entity.BreakSession, error)

	Analytics(ctx context.Context, userID string) (*entity.UserAnalytics, error)

	// Prune deletes invitations and sessions created more than retention ago.
	Prune(ctx context.Context, retention time.Duration) (invitations, sessions int64, err error)
}
