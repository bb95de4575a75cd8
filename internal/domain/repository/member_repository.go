package repository

import (
	"context"

	"smokebreak/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrMemberNotFound is returned when a membership row is not found.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberReferenceMissing is returned when the user or group of a member row is not cached.
	ErrMemberReferenceMissing = errors.New("member references an unknown user or group")
)

// MemberRepository defines the local cache operations for memberships.
type MemberRepository interface {
	// FindByUser lists the user's memberships.
	FindByUser(ctx context.Context, userID string) ([]*entity.Member, error)

	// FindByGroup lists the group's memberships.
	FindByGroup(ctx context.Context, groupID string) ([]*entity.Member, error)

	// Find retrieves one membership.
	Find(ctx context.Context, userID, groupID string) (*entity.Member, error)

	// Upsert inserts or replaces the membership.
	Upsert(ctx context.Context, member *entity.Member) error

	// Update modifies role and active flag of an existing membership.
	Update(ctx context.Context, member *entity.Member) error

	// Delete removes one membership.
	Delete(ctx context.Context, userID, groupID string) error

	// DeleteByUser removes all memberships of a user.
	DeleteByUser(ctx context.Context, userID string) error

	// CountActiveByGroup counts active members of a group.
	CountActiveByGroup(ctx context.Context, groupID string) (int64, error)
}
