package impl

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupService_Create(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")

	group, err := f.groups.Create(f.ctx, "owner", &usecase.CreateGroupInput{Name: "  Rooftop  ", IsPublic: true})
	require.NoError(t, err)
	assert.Equal(t, "Rooftop", group.Group.Name)
	assert.Equal(t, entity.DefaultMaxMembers, group.Group.MaxMembers)
	assert.Len(t, group.Group.InviteCode, inviteCodeLength)
	assert.Equal(t, []string{"owner"}, group.AdminIDs())

	remoteGroup, err := f.remoteGroups.Get(f.ctx, group.Group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.Group.InviteCode, remoteGroup.InviteCode)

	member, err := f.remoteMembers.Get(f.ctx, group.Group.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, entity.GroupRoleAdmin, member.Role)

	cached, err := f.groupRepo.FindWithMembersByID(f.ctx, group.Group.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner"}, cached.MemberIDs())

	public, err := f.groups.PublicGroups(f.ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
}

func TestGroupService_Create_Validation(t *testing.T) {
	f := newServiceFixtures(t)

	_, err := f.groups.Create(f.ctx, "owner", &usecase.CreateGroupInput{Name: " "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.groups.Create(f.ctx, "owner", &usecase.CreateGroupInput{Name: "x", MaxMembers: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGroupService_JoinByInviteCode(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	f.seedUser(t, "u1", "Uma")
	group := f.seedGroup(t, "owner")

	joined, err := f.groups.JoinByInviteCode(f.ctx, "u1", " "+group.Group.InviteCode+" ")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"owner", "u1"}, joined.MemberIDs())

	member, err := f.memberRepo.Find(f.ctx, "u1", group.Group.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GroupRoleMember, member.Role)

	_, err = f.groups.JoinByInviteCode(f.ctx, "u1", group.Group.InviteCode)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyGroupMember)

	_, err = f.groups.JoinByInviteCode(f.ctx, "u1", "ZZZZZZ")
	assert.ErrorIs(t, err, domainerrors.ErrInviteCodeInvalid)
}

func TestGroupService_JoinFullGroup(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	f.seedUser(t, "u1", "Uma")
	f.seedUser(t, "u2", "Vic")

	group, err := f.groups.Create(f.ctx, "owner", &usecase.CreateGroupInput{Name: "Tiny", MaxMembers: 2})
	require.NoError(t, err)

	_, err = f.groups.JoinByInviteCode(f.ctx, "u1", group.Group.InviteCode)
	require.NoError(t, err)

	_, err = f.groups.JoinByInviteCode(f.ctx, "u2", group.Group.InviteCode)
	assert.ErrorIs(t, err, domainerrors.ErrGroupFull)
}

func TestGroupService_JoinInactiveGroup(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	f.seedUser(t, "u1", "Uma")
	group := f.seedGroup(t, "owner")

	require.NoError(t, f.groups.Deactivate(f.ctx, "owner", group.Group.ID))

	_, err := f.groups.JoinByInviteCode(f.ctx, "u1", group.Group.InviteCode)
	assert.ErrorIs(t, err, domainerrors.ErrGroupInactive)

	cached, err := f.groupRepo.FindByID(f.ctx, group.Group.ID)
	require.NoError(t, err)
	assert.False(t, cached.IsActive)
}

func TestGroupService_JoinByQRCode(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	f.seedUser(t, "u1", "Uma")
	group := f.seedGroup(t, "owner")

	png, err := f.groups.InviteQRCode(f.ctx, "owner", group.Group.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = f.groups.InviteQRCode(f.ctx, "u1", group.Group.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)

	link := "https://smokebreak.example/join?code=" + group.Group.InviteCode
	joined, err := f.groups.JoinByQRCode(f.ctx, "u1", link)
	require.NoError(t, err)
	assert.Contains(t, joined.MemberIDs(), "u1")

	_, err = f.groups.JoinByQRCode(f.ctx, "u1", "not a qr payload")
	assert.ErrorIs(t, err, domainerrors.ErrInviteCodeInvalid)
}

func TestGroupService_LeaveAndLastAdmin(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	f.seedUser(t, "u1", "Uma")
	group := f.seedGroup(t, "owner", "u1")

	err := f.groups.Leave(f.ctx, "owner", group.Group.ID)
	assert.ErrorIs(t, err, domainerrors.ErrLastAdmin)

	require.NoError(t, f.groups.SetMemberRole(f.ctx, "owner", group.Group.ID, "u1", entity.GroupRoleAdmin))
	require.NoError(t, f.groups.Leave(f.ctx, "owner", group.Group.ID))

	_, err = f.remoteMembers.Get(f.ctx, group.Group.ID, "owner")
	assert.ErrorIs(t, err, repository.ErrRemoteNotFound)
	_, err = f.memberRepo.Find(f.ctx, "owner", group.Group.ID)
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)

	err = f.groups.Leave(f.ctx, "owner", group.Group.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)
}

func TestGroupService_MemberManagementRequiresAdmin(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	f.seedUser(t, "u1", "Uma")
	f.seedUser(t, "u2", "Vic")
	group := f.seedGroup(t, "owner", "u1", "u2")

	err := f.groups.RemoveMember(f.ctx, "u1", group.Group.ID, "u2")
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupAdmin)

	err = f.groups.SetMemberRole(f.ctx, "u1", group.Group.ID, "u1", entity.GroupRoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupAdmin)

	err = f.groups.SetMemberRole(f.ctx, "owner", group.Group.ID, "u1", entity.GroupRole("OWNER"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = f.groups.SetMemberRole(f.ctx, "owner", group.Group.ID, "owner", entity.GroupRoleMember)
	assert.ErrorIs(t, err, domainerrors.ErrLastAdmin)

	require.NoError(t, f.groups.RemoveMember(f.ctx, "owner", group.Group.ID, "u2"))

	count, err := f.memberRepo.CountActiveByGroup(f.ctx, group.Group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGroupService_UpdateAndDelete(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	f.seedUser(t, "u1", "Uma")
	group := f.seedGroup(t, "owner", "u1")

	name := "Back Door"
	_, err := f.groups.Update(f.ctx, "u1", group.Group.ID, &usecase.UpdateGroupInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupAdmin)

	tooSmall := 1
	_, err = f.groups.Update(f.ctx, "owner", group.Group.ID, &usecase.UpdateGroupInput{MaxMembers: &tooSmall})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	updated, err := f.groups.Update(f.ctx, "owner", group.Group.ID, &usecase.UpdateGroupInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Back Door", updated.Group.Name)

	found, err := f.groups.SearchGroups(f.ctx, "back")
	require.NoError(t, err)
	require.Len(t, found, 1)

	err = f.groups.Delete(f.ctx, "u1", group.Group.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupCreator)

	require.NoError(t, f.groups.Delete(f.ctx, "owner", group.Group.ID))

	_, err = f.remoteGroups.Get(f.ctx, group.Group.ID)
	assert.ErrorIs(t, err, repository.ErrRemoteNotFound)
	members, err := f.remoteMembers.FindByGroup(f.ctx, group.Group.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
	_, err = f.groupRepo.FindByID(f.ctx, group.Group.ID)
	assert.ErrorIs(t, err, repository.ErrGroupNotFound)
}

// seedRemoteGroups writes groups straight to the remote store, bypassing the cache.
func seedRemoteGroups(t *testing.T, f *serviceFixtures, userID string, n int) []string {
	t.Helper()

	ids := make([]string, 0, n)
	for i := range n {
		id := fmt.Sprintf("remote-group-%02d", i)
		require.NoError(t, f.remoteGroups.Put(f.ctx, &entity.Group{
			ID:         id,
			Name:       fmt.Sprintf("Remote %02d", i),
			CreatedBy:  "someone",
			InviteCode: fmt.Sprintf("RG%04d", i),
			MaxMembers: entity.DefaultMaxMembers,
			IsActive:   true,
			CreatedAt:  fixtureNow,
			UpdatedAt:  fixtureNow,
		}))
		require.NoError(t, f.remoteMembers.Put(f.ctx, &entity.Member{
			UserID:   userID,
			GroupID:  id,
			Role:     entity.GroupRoleMember,
			JoinedAt: fixtureNow,
			IsActive: true,
		}))
		ids = append(ids, id)
	}

	return ids
}

func TestGroupService_RefreshMyGroups_Chunked(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u1", "Uma")
	require.NoError(t, f.remoteUsers.Put(f.ctx, &entity.User{ID: "someone", DisplayName: "Someone"}))

	ids := seedRemoteGroups(t, f, "u1", 23)

	require.NoError(t, f.groups.RefreshMyGroups(f.ctx, "u1"))

	groups, err := f.groupRepo.FindWithMembersForUser(f.ctx, "u1")
	require.NoError(t, err)
	require.Len(t, groups, len(ids))
	for _, g := range groups {
		assert.Equal(t, []string{"u1"}, g.MemberIDs())
	}

	require.NoError(t, f.remoteMembers.Delete(f.ctx, ids[0], "u1"))
	require.NoError(t, f.groups.RefreshMyGroups(f.ctx, "u1"))

	groups, err = f.groupRepo.FindWithMembersForUser(f.ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, groups, len(ids)-1)
}

func TestGroupService_MyGroups_ServesCacheThenRefreshes(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u1", "Uma")
	seedRemoteGroups(t, f, "u1", 3)

	groups, err := f.groups.MyGroups(f.ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, groups, "nothing is cached before the first refresh")

	f.groups.waitRefreshes()

	assert.Eventually(t, func() bool {
		cached, err := f.groupRepo.FindWithMembersForUser(f.ctx, "u1")

		return err == nil && len(cached) == 3
	}, time.Second, 10*time.Millisecond)

	groups, err = f.groups.MyGroups(f.ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, groups, 3)
}

func TestGroupService_Get_FallsBackToCache(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	group := f.seedGroup(t, "owner")

	require.NoError(t, f.remote.Close())

	got, err := f.groups.Get(f.ctx, "owner", group.Group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.Group.Name, got.Group.Name)
}

func TestGroupService_CachedGroups_SkipsRemote(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Olga")
	f.seedGroup(t, "owner")
	seedRemoteGroups(t, f, "owner", 2)

	groups, err := f.groups.CachedGroups(f.ctx, "owner")
	require.NoError(t, err)
	assert.Len(t, groups, 1, "remote-only groups stay out until a refresh")
}
