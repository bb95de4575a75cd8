package repository

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvitationNotFound is returned when a break invitation is not found.
var ErrInvitationNotFound = errors.New("break invitation not found")

// InvitationRepository defines the local cache operations for break invitations.
// Lists are ordered newest first.
type InvitationRepository interface {
	FindByID(ctx context.Context, id string) (*entity.BreakInvitation, error)
	FindByGroup(ctx context.Context, groupID string) ([]*entity.BreakInvitation, error)
	FindByInitiator(ctx context.Context, userID string) ([]*entity.BreakInvitation, error)
	FindByStatus(ctx context.Context, status entity.BreakInvitationStatus) ([]*entity.BreakInvitation, error)

	// FindActive lists PENDING invitations that expire after now.
	FindActive(ctx context.Context, now time.Time) ([]*entity.BreakInvitation, error)

	// FindActiveForGroups is FindActive restricted to the given groups.
	FindActiveForGroups(ctx context.Context, groupIDs []string, now time.Time) ([]*entity.BreakInvitation, error)

	// FindInRange lists invitations created within [from, to].
	FindInRange(ctx context.Context, from, to time.Time) ([]*entity.BreakInvitation, error)

	// FindByInitiatorInRange lists the user's invitations created within [from, to].
	FindByInitiatorInRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.BreakInvitation, error)

	// Upsert inserts or replaces the whole invitation.
	Upsert(ctx context.Context, invitation *entity.BreakInvitation) error

	// UpsertMany replaces a batch of invitations.
	UpsertMany(ctx context.Context, invitations []*entity.BreakInvitation) error

	// UpdateStatus overwrites the status field.
	UpdateStatus(ctx context.Context, id string, status entity.BreakInvitationStatus, at time.Time) error

	// ExpirePending flips PENDING invitations with expiresAt <= now to EXPIRED and returns how many changed.
	ExpirePending(ctx context.Context, now time.Time) (int64, error)

	Delete(ctx context.Context, id string) error

	// DeleteOlderThan removes invitations created before cutoff, except those with a session
	// recorded at or after cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// CountByInitiatorInRange counts invitations the user created within [from, to).
	CountByInitiatorInRange(ctx context.Context, userID string, from, to time.Time) (int64, error)

	// CountByGroupInRange counts invitations of a group created within [from, to).
	CountByGroupInRange(ctx context.Context, groupID string, from, to time.Time) (int64, error)
}
