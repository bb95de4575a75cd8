package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"smokebreak/config"
	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/infra/persistence/remote"
	"smokebreak/internal/infra/persistence/sqlite"
	"smokebreak/internal/infra/persistence/sqlite/sqlitetest"
	"smokebreak/internal/infra/qrcode"
	mockService "smokebreak/internal/mocks/service"
	"smokebreak/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixtureNow is a Tuesday.
var fixtureNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// serviceFixtures wires every service to an in-memory cache and an in-memory remote store.
type serviceFixtures struct {
	ctx    context.Context
	clock  *fakeClock
	remote *remote.Collections

	remoteUsers       repository.RemoteUserStore
	remoteGroups      repository.RemoteGroupStore
	remoteMembers     repository.RemoteMemberStore
	remoteInvitations repository.RemoteInvitationStore

	userRepo       repository.UserRepository
	groupRepo      repository.GroupRepository
	memberRepo     repository.MemberRepository
	invitationRepo repository.InvitationRepository
	sessionRepo    repository.SessionRepository

	identity  *mockService.MockIdentityProvider
	publisher *mockService.MockEventPublisher

	users       *userService
	groups      *groupService
	invitations *invitationService
	sessions    *sessionService
}

func newServiceFixtures(t *testing.T) *serviceFixtures {
	t.Helper()

	ctx := context.Background()
	db, feed := sqlitetest.NewDB(t)

	collections, err := remote.Open(ctx, &config.RemoteStoreConfig{Driver: "mem"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = collections.Close() })

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Invitation.Timezone = "UTC"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := &fakeClock{now: fixtureNow}

	f := &serviceFixtures{
		ctx:               ctx,
		clock:             clock,
		remote:            collections,
		remoteUsers:       remote.NewUserStore(collections),
		remoteGroups:      remote.NewGroupStore(collections),
		remoteMembers:     remote.NewMemberStore(collections),
		remoteInvitations: remote.NewInvitationStore(collections),
		userRepo:          sqlite.NewUserRepository(db),
		groupRepo:         sqlite.NewGroupRepository(db),
		memberRepo:        sqlite.NewMemberRepository(db),
		invitationRepo:    sqlite.NewInvitationRepository(db),
		sessionRepo:       sqlite.NewSessionRepository(db),
		identity:          mockService.NewMockIdentityProvider(t),
		publisher:         mockService.NewMockEventPublisher(t),
	}
	txManager := sqlite.NewTransactionManager(db, feed)

	f.users = NewUserService(UserServiceParams{
		Identity:      f.identity,
		UserRepo:      f.userRepo,
		RemoteUsers:   f.remoteUsers,
		RemoteMembers: f.remoteMembers,
		Clock:         clock,
		Logger:        logger,
	}).(*userService)

	f.groups = newGroupService(GroupServiceParams{
		TxManager:     txManager,
		GroupRepo:     f.groupRepo,
		MemberRepo:    f.memberRepo,
		UserRepo:      f.userRepo,
		RemoteGroups:  f.remoteGroups,
		RemoteMembers: f.remoteMembers,
		RemoteUsers:   f.remoteUsers,
		QRCodes:       qrcode.NewQRCodeService(128, "M", "https://smokebreak.example"),
		Clock:         clock,
		Logger:        logger,
	})
	t.Cleanup(f.groups.waitRefreshes)

	f.invitations = NewInvitationService(InvitationServiceParams{
		Config:            cfg,
		TxManager:         txManager,
		InvitationRepo:    f.invitationRepo,
		GroupRepo:         f.groupRepo,
		MemberRepo:        f.memberRepo,
		UserRepo:          f.userRepo,
		RemoteInvitations: f.remoteInvitations,
		RemoteGroups:      f.remoteGroups,
		RemoteMembers:     f.remoteMembers,
		RemoteUsers:       f.remoteUsers,
		Publisher:         f.publisher,
		Clock:             clock,
		Logger:            logger,
	}).(*invitationService)

	f.sessions = NewSessionService(SessionServiceParams{
		Config:         cfg,
		TxManager:      txManager,
		SessionRepo:    f.sessionRepo,
		InvitationRepo: f.invitationRepo,
		UserRepo:       f.userRepo,
		MemberRepo:     f.memberRepo,
		RemoteMembers:  f.remoteMembers,
		Clock:          clock,
		Logger:         logger,
	}).(*sessionService)

	return f
}

// seedUser stores a profile in both stores.
func (f *serviceFixtures) seedUser(t *testing.T, id, name string, mutate ...func(*entity.User)) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: name,
		FCMToken:    "token-" + id,
		Preferences: entity.DefaultUserPreferences(),
		CreatedAt:   fixtureNow,
		UpdatedAt:   fixtureNow,
	}
	for _, fn := range mutate {
		fn(user)
	}

	require.NoError(t, f.remoteUsers.Put(f.ctx, user))
	require.NoError(t, f.userRepo.Upsert(f.ctx, user))

	return user
}

// seedGroup creates a group owned by creatorID and joins the other users to it.
func (f *serviceFixtures) seedGroup(t *testing.T, creatorID string, memberIDs ...string) *entity.GroupWithMembers {
	t.Helper()

	group, err := f.groups.Create(f.ctx, creatorID, &usecase.CreateGroupInput{Name: "Smoking Corner"})
	require.NoError(t, err)

	for _, id := range memberIDs {
		group, err = f.groups.JoinByInviteCode(f.ctx, id, group.Group.InviteCode)
		require.NoError(t, err)
	}

	return group
}

// allowEvents accepts any published event and records it.
func (f *serviceFixtures) allowEvents() *[]*service.InvitationEvent {
	var (
		mu     sync.Mutex
		events []*service.InvitationEvent
	)

	f.publisher.EXPECT().
		PublishInvitationEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.InvitationEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
		}).
		Return(nil).
		Maybe()

	return &events
}
