package usecase

import (
	"context"

	"smokebreak/internal/domain/entity"
)

// CreateGroupInput defines the data required to create a group.
type CreateGroupInput struct {
	Name        string
	Description string
	IsPublic    bool
	MaxMembers  int // 0 selects entity.DefaultMaxMembers
}

// UpdateGroupInput holds the group fields to change; nil fields are left untouched.
type UpdateGroupInput struct {
	Name        *string
	Description *string
	IsPublic    *bool
	MaxMembers  *int
}

// GroupUsecase defines group and membership operations. Every mutation writes the remote store
// first and then the local cache.
type GroupUsecase interface {
	// Create makes the caller the first ADMIN member of a new group.
	Create(ctx context.Context, userID string, input *CreateGroupInput) (*entity.GroupWithMembers, error)
	Update(ctx context.Context, userID, groupID string, input *UpdateGroupInput) (*entity.GroupWithMembers, error)

	// Deactivate clears the active flag; the group and its members are kept.
	Deactivate(ctx context.Context, userID, groupID string) error

	// Delete removes the group and all its memberships. Creator only.
	Delete(ctx context.Context, userID, groupID string) error

	JoinByInviteCode(ctx context.Context, userID, code string) (*entity.GroupWithMembers, error)

	// JoinByQRCode joins with the invite code carried by scanned QR content.
	JoinByQRCode(ctx context.Context, userID, qrData string) (*entity.GroupWithMembers, error)

	Leave(ctx context.Context, userID, groupID string) error
	SetMemberRole(ctx context.Context, userID, groupID, memberID string, role entity.GroupRole) error
	RemoveMember(ctx context.Context, userID, groupID, memberID string) error

	// InviteQRCode renders the group's invite code as a PNG. Members only.
	InviteQRCode(ctx context.Context, userID, groupID string) ([]byte, error)

	// Get reads one group with its members through the remote store. Members only.
	Get(ctx context.Context, userID, groupID string) (*entity.GroupWithMembers, error)

	// MyGroups returns the cached groups at once and refreshes them from the remote store in the background.
	MyGroups(ctx context.Context, userID string) ([]*entity.GroupWithMembers, error)

	// CachedGroups lists the user's cached groups without touching the remote store.
	CachedGroups(ctx context.Context, userID string) ([]*entity.GroupWithMembers, error)

	// RefreshMyGroups pulls the user's memberships and groups from the remote store in chunks.
	RefreshMyGroups(ctx context.Context, userID string) error

	PublicGroups(ctx context.Context) ([]*entity.Group, error)
	SearchGroups(ctx context.Context, query string) ([]*entity.Group, error)
	GroupsCreatedBy(ctx context.Context, userID string) ([]*entity.Group, error)
	CountActiveGroups(ctx context.Context) (int64, error)
}
