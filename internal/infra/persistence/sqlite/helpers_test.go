package sqlite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"smokebreak/config"
	"smokebreak/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDB opens a private in-memory database with migrations applied.
func newTestDB(t *testing.T) (*gorm.DB, *ChangeFeed) {
	t.Helper()

	feed := NewChangeFeed()
	cfg := &config.SQLiteConfig{
		Path:        fmt.Sprintf("file:smokebreak_test_%d?mode=memory&cache=shared", testDBSeq.Add(1)),
		BusyTimeout: time.Second,
	}

	db, err := Open(cfg, newDiscardLogger(), false, feed)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db, feed
}

var baseTime = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, db *gorm.DB, id string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: "User " + id,
		Department:  "Engineering",
		Preferences: entity.DefaultUserPreferences(),
		CreatedAt:   baseTime,
		UpdatedAt:   baseTime,
	}
	require.NoError(t, NewUserRepository(db).Upsert(context.Background(), user))

	return user
}

func seedGroup(t *testing.T, db *gorm.DB, id, creator string, memberIDs ...string) *entity.GroupWithMembers {
	t.Helper()

	group := &entity.GroupWithMembers{
		Group: entity.Group{
			ID:         id,
			Name:       "Group " + id,
			CreatedBy:  creator,
			InviteCode: "CODE" + id,
			MaxMembers: entity.DefaultMaxMembers,
			IsActive:   true,
			CreatedAt:  baseTime,
			UpdatedAt:  baseTime,
		},
	}
	for i, uid := range memberIDs {
		role := entity.GroupRoleMember
		if uid == creator {
			role = entity.GroupRoleAdmin
		}
		group.Members = append(group.Members, entity.Member{
			UserID:   uid,
			GroupID:  id,
			Role:     role,
			JoinedAt: baseTime.Add(time.Duration(i) * time.Minute),
			IsActive: true,
		})
	}
	require.NoError(t, NewGroupRepository(db).UpsertWithMembers(context.Background(), group))

	return group
}

func newInvitation(id, groupID, initiator string, createdAt time.Time) *entity.BreakInvitation {
	return &entity.BreakInvitation{
		ID:              id,
		GroupID:         groupID,
		InitiatorUserID: initiator,
		InitiatorName:   "User " + initiator,
		Message:         "Coffee?",
		Location:        "Roof",
		PlannedDuration: entity.DefaultPlannedDuration,
		Responses:       []entity.BreakResponse{},
		Status:          entity.InvitationPending,
		ExpiresAt:       createdAt.Add(10 * time.Minute),
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}
