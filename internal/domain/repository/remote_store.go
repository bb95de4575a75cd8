package repository

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"

	"github.com/pkg/errors"
)

// RemoteBatchLimit is the largest number of IDs the remote store accepts in one batched read.
const RemoteBatchLimit = 10

var (
	// ErrRemoteNotFound is returned when a remote document does not exist.
	ErrRemoteNotFound = errors.New("remote document not found")
	// ErrRemoteUnavailable wraps transport failures of the remote store.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// RemoteUserStore is the authoritative `users` collection.
type RemoteUserStore interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	// GetMany fetches at most RemoteBatchLimit users; missing documents are skipped.
	GetMany(ctx context.Context, ids []string) ([]*entity.User, error)
	Put(ctx context.Context, user *entity.User) error
	UpdateOnline(ctx context.Context, id string, online bool, at time.Time) error
	UpdateFCMToken(ctx context.Context, id, token string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

// RemoteGroupStore is the authoritative `groups` collection.
type RemoteGroupStore interface {
	Get(ctx context.Context, id string) (*entity.Group, error)
	// GetMany fetches at most RemoteBatchLimit groups; missing documents are skipped.
	GetMany(ctx context.Context, ids []string) ([]*entity.Group, error)
	// FindByInviteCode returns the group holding code, including deactivated groups.
	FindByInviteCode(ctx context.Context, code string) (*entity.Group, error)
	Put(ctx context.Context, group *entity.Group) error
	UpdateActive(ctx context.Context, id string, active bool, at time.Time) error
	Delete(ctx context.Context, id string) error
}

// RemoteMemberStore is the authoritative `members` collection, keyed by group and user.
type RemoteMemberStore interface {
	Get(ctx context.Context, groupID, userID string) (*entity.Member, error)
	FindByUser(ctx context.Context, userID string) ([]*entity.Member, error)
	FindByGroup(ctx context.Context, groupID string) ([]*entity.Member, error)
	// FindByGroups fetches memberships of at most RemoteBatchLimit groups.
	FindByGroups(ctx context.Context, groupIDs []string) ([]*entity.Member, error)
	Put(ctx context.Context, member *entity.Member) error
	UpdateRole(ctx context.Context, groupID, userID string, role entity.GroupRole) error
	UpdateActive(ctx context.Context, groupID, userID string, active bool) error
	Delete(ctx context.Context, groupID, userID string) error
}

// RemoteInvitationStore is the authoritative `break_invitations` collection.
type RemoteInvitationStore interface {
	Get(ctx context.Context, id string) (*entity.BreakInvitation, error)
	FindByGroup(ctx context.Context, groupID string) ([]*entity.BreakInvitation, error)
	// FindExpiredPending lists PENDING invitations whose expiresAt is at or before now.
	FindExpiredPending(ctx context.Context, now time.Time) ([]*entity.BreakInvitation, error)
	Put(ctx context.Context, invitation *entity.BreakInvitation) error
	UpdateStatus(ctx context.Context, id string, status entity.BreakInvitationStatus, at time.Time) error
	Delete(ctx context.Context, id string) error
}
