package repository

import (
	"context"

	"smokebreak/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrDuplicateInviteCode is returned when an invite code is already taken.
	ErrDuplicateInviteCode = errors.New("invite code already in use")
)

// GroupRepository defines the local cache operations for groups.
type GroupRepository interface {
	// FindWithMembersForUser lists groups the user is an active member of, with all member rows.
	FindWithMembersForUser(ctx context.Context, userID string) ([]*entity.GroupWithMembers, error)

	// FindWithMembersByID retrieves one group with its member rows.
	FindWithMembersByID(ctx context.Context, id string) (*entity.GroupWithMembers, error)

	// UpsertWithMembers writes the group and replaces its member set.
	UpsertWithMembers(ctx context.Context, group *entity.GroupWithMembers) error

	// Upsert writes the group row only.
	Upsert(ctx context.Context, group *entity.Group) error

	// FindByID retrieves a single group.
	FindByID(ctx context.Context, id string) (*entity.Group, error)

	// FindActive lists groups with the active flag set.
	FindActive(ctx context.Context) ([]*entity.Group, error)

	// FindPublic lists public active groups.
	FindPublic(ctx context.Context) ([]*entity.Group, error)

	// FindCreatedBy lists active groups created by userID.
	FindCreatedBy(ctx context.Context, userID string) ([]*entity.Group, error)

	// FindByInviteCode retrieves an active group by its invite code.
	FindByInviteCode(ctx context.Context, code string) (*entity.Group, error)

	// SearchByName lists active groups whose name contains query.
	SearchByName(ctx context.Context, query string) ([]*entity.Group, error)

	// Deactivate clears the active flag without deleting the row.
	Deactivate(ctx context.Context, id string) error

	// Delete removes the group; member rows go with it.
	Delete(ctx context.Context, id string) error

	// CountActive counts active groups.
	CountActive(ctx context.Context) (int64, error)
}
