package sqlite

import (
	"context"
	"testing"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepository_UpdateAndDelete(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()
	repo := NewMemberRepository(db)

	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seedGroup(t, db, "g1", "u1", "u1", "u2")

	member, err := repo.Find(ctx, "u2", "g1")
	require.NoError(t, err)
	assert.Equal(t, entity.GroupRoleMember, member.Role)

	member.Role = entity.GroupRoleAdmin
	member.IsActive = false
	require.NoError(t, repo.Update(ctx, member))

	updated, err := repo.Find(ctx, "u2", "g1")
	require.NoError(t, err)
	assert.Equal(t, entity.GroupRoleAdmin, updated.Role)
	assert.False(t, updated.IsActive)

	count, err := repo.CountActiveByGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, "u2", "g1"))
	_, err = repo.Find(ctx, "u2", "g1")
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "u2", "g1"), repository.ErrMemberNotFound)
}

func TestMemberRepository_UpsertInactiveMember(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()
	repo := NewMemberRepository(db)

	seedUser(t, db, "u1")
	seedGroup(t, db, "g1", "u1")

	require.NoError(t, repo.Upsert(ctx, &entity.Member{
		UserID: "u1", GroupID: "g1", Role: entity.GroupRoleMember, JoinedAt: baseTime, IsActive: false,
	}))

	member, err := repo.Find(ctx, "u1", "g1")
	require.NoError(t, err)
	assert.False(t, member.IsActive)

	require.NoError(t, repo.DeleteByUser(ctx, "u1"))
	members, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestMemberRepository_UpsertRequiresUserAndGroup(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "u1")

	err := NewMemberRepository(db).Upsert(ctx, &entity.Member{
		UserID: "u1", GroupID: "nope", Role: entity.GroupRoleMember, JoinedAt: baseTime, IsActive: true,
	})
	assert.ErrorIs(t, err, repository.ErrMemberReferenceMissing)
}
