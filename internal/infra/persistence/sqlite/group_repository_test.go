package sqlite

import (
	"context"
	"testing"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_RoundTripWithMembers(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seeded := seedGroup(t, db, "g1", "u1", "u1", "u2")

	found, err := NewGroupRepository(db).FindWithMembersByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, seeded.Group.Name, found.Group.Name)
	assert.Equal(t, []string{"u1", "u2"}, found.MemberIDs())
	assert.Equal(t, []string{"u1"}, found.AdminIDs())

	forUser, err := NewGroupRepository(db).FindWithMembersForUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, forUser, 1)
	assert.Equal(t, "g1", forUser[0].Group.ID)
	assert.Len(t, forUser[0].Members, 2)
}

func TestGroupRepository_UpsertWithMembersReplacesMemberSet(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()
	repo := NewGroupRepository(db)

	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seedUser(t, db, "u3")
	group := seedGroup(t, db, "g1", "u1", "u1", "u2")

	group.Members = []entity.Member{
		group.Members[0],
		{UserID: "u3", GroupID: "g1", Role: entity.GroupRoleMember, JoinedAt: baseTime, IsActive: true},
	}
	require.NoError(t, repo.UpsertWithMembers(ctx, group))

	found, err := repo.FindWithMembersByID(ctx, "g1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u1", "u3"}, found.MemberIDs())
}

func TestGroupRepository_UpsertWithUnknownMember(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "u1")
	group := &entity.GroupWithMembers{
		Group: entity.Group{ID: "g1", Name: "G", CreatedBy: "u1", InviteCode: "X", MaxMembers: 5, IsActive: true},
		Members: []entity.Member{
			{UserID: "ghost", GroupID: "g1", Role: entity.GroupRoleMember, JoinedAt: baseTime, IsActive: true},
		},
	}

	err := NewGroupRepository(db).UpsertWithMembers(ctx, group)
	assert.ErrorIs(t, err, repository.ErrMemberReferenceMissing)
}

func TestGroupRepository_InviteCodeIsUnique(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()
	repo := NewGroupRepository(db)

	seedUser(t, db, "u1")
	seedGroup(t, db, "g1", "u1", "u1")

	err := repo.Upsert(ctx, &entity.Group{
		ID: "g2", Name: "Other", CreatedBy: "u1", InviteCode: "CODEg1",
		MaxMembers: 5, IsActive: true, CreatedAt: baseTime, UpdatedAt: baseTime,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateInviteCode)

	// Re-writing the same group with its own code is not a conflict
	found, err := repo.FindByID(ctx, "g1")
	require.NoError(t, err)
	found.Name = "Renamed"
	require.NoError(t, repo.Upsert(ctx, found))
}

func TestGroupRepository_DeactivateKeepsMembers(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()
	repo := NewGroupRepository(db)

	seedUser(t, db, "u1")
	seedGroup(t, db, "g1", "u1", "u1")

	require.NoError(t, repo.Deactivate(ctx, "g1"))

	group, err := repo.FindByID(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, group.IsActive)

	active, err := repo.FindActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	forUser, err := repo.FindWithMembersForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, forUser)

	count, err := NewMemberRepository(db).CountActiveByGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGroupRepository_DeleteCascadesMembers(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "u1")
	seedGroup(t, db, "g1", "u1", "u1")

	require.NoError(t, NewGroupRepository(db).Delete(ctx, "g1"))

	members, err := NewMemberRepository(db).FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, members)

	_, err = NewGroupRepository(db).FindByID(ctx, "g1")
	assert.ErrorIs(t, err, repository.ErrGroupNotFound)
}

func TestGroupRepository_Queries(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()
	repo := NewGroupRepository(db)

	seedUser(t, db, "u1")
	seedGroup(t, db, "g1", "u1", "u1")
	public := seedGroup(t, db, "g2", "u1", "u1")
	public.Group.IsPublic = true
	public.Group.Name = "100% smokers"
	require.NoError(t, repo.Upsert(ctx, &public.Group))

	byCode, err := repo.FindByInviteCode(ctx, "CODEg1")
	require.NoError(t, err)
	assert.Equal(t, "g1", byCode.ID)

	publicGroups, err := repo.FindPublic(ctx)
	require.NoError(t, err)
	require.Len(t, publicGroups, 1)
	assert.Equal(t, "g2", publicGroups[0].ID)

	created, err := repo.FindCreatedBy(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, created, 2)

	matches, err := repo.SearchByName(ctx, "0%")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "g2", matches[0].ID)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
