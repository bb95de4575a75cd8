package sqlite

import (
	"context"
	"testing"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UpsertAndFind(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "u1")
	user.Preferences.WorkingHours.WorkingDays = []int{1, 3, 5}
	user.Preferences.MaxBreaksPerDay = 3

	require.NoError(t, repo.Upsert(ctx, user))

	found, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", found.Email)
	assert.Equal(t, []int{1, 3, 5}, found.Preferences.WorkingHours.WorkingDays)
	assert.Equal(t, 3, found.Preferences.MaxBreaksPerDay)
	assert.True(t, found.CreatedAt.Equal(baseTime))

	byEmail, err := repo.FindByEmail(ctx, "u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_NotFound(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.ErrorIs(t, repo.SetOnline(ctx, "missing", true), repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), repository.ErrUserNotFound)
}

func TestUserRepository_OnlineAndDepartments(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u1")
	u2 := seedUser(t, db, "u2")
	u2.Department = "Design"
	require.NoError(t, repo.Upsert(ctx, u2))
	u3 := seedUser(t, db, "u3")
	u3.Department = ""
	require.NoError(t, repo.Upsert(ctx, u3))

	require.NoError(t, repo.SetOnline(ctx, "u2", true))
	require.NoError(t, repo.SetFCMToken(ctx, "u2", "token-2"))

	online, err := repo.FindOnline(ctx)
	require.NoError(t, err)
	require.Len(t, online, 1)
	assert.Equal(t, "u2", online[0].ID)
	assert.Equal(t, "token-2", online[0].FCMToken)

	departments, err := repo.Departments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Design", "Engineering"}, departments)

	engineers, err := repo.FindByDepartment(ctx, "Engineering")
	require.NoError(t, err)
	require.Len(t, engineers, 1)
	assert.Equal(t, "u1", engineers[0].ID)

	users, err := repo.FindByIDs(ctx, []string{"u1", "u3", "nope"})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepository_UpsertKeepsMemberships(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "u1")
	seedGroup(t, db, "g1", "u1", "u1")

	user.DisplayName = "Renamed"
	require.NoError(t, NewUserRepository(db).Upsert(ctx, user))

	members, err := NewMemberRepository(db).FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestUserRepository_DeleteCascadesMembers(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seedGroup(t, db, "g1", "u1", "u1", "u2")

	require.NoError(t, NewUserRepository(db).Delete(ctx, "u2"))

	members, err := NewMemberRepository(db).FindByGroup(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "u1", members[0].UserID)
	assert.Equal(t, entity.GroupRoleAdmin, members[0].Role)
}
