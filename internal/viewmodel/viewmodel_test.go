package viewmodel

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/infra/persistence/sqlite"
	mockUsecase "smokebreak/internal/mocks/usecase"
	"smokebreak/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

var discard = slog.New(slog.DiscardHandler)

func TestAuthViewModel_RestoresSession(t *testing.T) {
	users := mockUsecase.NewMockUserUsecase(t)
	feed := sqlite.NewChangeFeed()

	user := &entity.User{ID: "u1", DisplayName: "Uma"}
	users.EXPECT().VerifyToken(mock.Anything, "token").Return("u1", nil)
	users.EXPECT().GetUser(mock.Anything, "u1").Return(user, nil)

	vm := NewAuthViewModel(context.Background(), users, feed, discard, "token")
	t.Cleanup(vm.Close)

	state := vm.State()
	assert.False(t, state.IsLoading)
	assert.True(t, state.IsLoggedIn)
	assert.Equal(t, user, state.CurrentUser)
	assert.Equal(t, "u1", vm.UserID())
}

func TestAuthViewModel_InvalidTokenStartsSignedOut(t *testing.T) {
	users := mockUsecase.NewMockUserUsecase(t)
	users.EXPECT().VerifyToken(mock.Anything, "stale").Return("", domainerrors.ErrTokenInvalid)

	vm := NewAuthViewModel(context.Background(), users, sqlite.NewChangeFeed(), discard, "stale")
	t.Cleanup(vm.Close)

	assert.Equal(t, AuthState{}, vm.State())
	assert.Empty(t, vm.UserID())
}

func TestAuthViewModel_SignInAndOut(t *testing.T) {
	users := mockUsecase.NewMockUserUsecase(t)
	vm := NewAuthViewModel(context.Background(), users, sqlite.NewChangeFeed(), discard, "")
	t.Cleanup(vm.Close)

	user := &entity.User{ID: "u1", DisplayName: "Uma"}
	input := &usecase.SignInInput{Email: "uma@example.com", Password: "pw"}
	users.EXPECT().SignIn(mock.Anything, input).Return(&usecase.AuthOutput{User: user, Token: "t"}, nil)

	res := vm.SignIn(context.Background(), input)
	require.True(t, res.IsSuccess())
	assert.Equal(t, "t", res.Data.Token)
	assert.True(t, vm.State().IsLoggedIn)
	assert.Equal(t, "u1", vm.UserID())

	users.EXPECT().SignOut(mock.Anything, "u1").Return(nil)

	res2 := vm.SignOut(context.Background())
	assert.True(t, res2.IsSuccess())
	assert.Equal(t, AuthState{}, vm.State())
	assert.Empty(t, vm.UserID())
}

func TestAuthViewModel_SignInFailureSetsError(t *testing.T) {
	users := mockUsecase.NewMockUserUsecase(t)
	vm := NewAuthViewModel(context.Background(), users, sqlite.NewChangeFeed(), discard, "")
	t.Cleanup(vm.Close)

	users.EXPECT().SignIn(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign in"))

	res := vm.SignIn(context.Background(), &usecase.SignInInput{Email: "x@example.com"})
	require.True(t, res.IsError())
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), res.Message)

	state := vm.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsLoggedIn)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), state.AuthError)

	vm.ClearError()
	assert.Empty(t, vm.State().AuthError)
}

func TestAuthViewModel_ReloadsProfileOnUserWrites(t *testing.T) {
	users := mockUsecase.NewMockUserUsecase(t)
	feed := sqlite.NewChangeFeed()

	users.EXPECT().VerifyToken(mock.Anything, "token").Return("u1", nil)
	users.EXPECT().GetUser(mock.Anything, "u1").Return(&entity.User{ID: "u1", DisplayName: "Uma"}, nil)
	users.EXPECT().CachedUser(mock.Anything, "u1").Return(&entity.User{ID: "u1", DisplayName: "Uma B."}, nil)

	vm := NewAuthViewModel(context.Background(), users, feed, discard, "token")
	t.Cleanup(vm.Close)

	feed.Publish(repository.TableUsers)

	assert.Eventually(t, func() bool {
		return vm.State().CurrentUser.DisplayName == "Uma B."
	}, waitFor, tick)
}

func TestAuthViewModel_UpdateOnlineStatusSkipsSignedOut(t *testing.T) {
	users := mockUsecase.NewMockUserUsecase(t)
	vm := NewAuthViewModel(context.Background(), users, sqlite.NewChangeFeed(), discard, "")
	t.Cleanup(vm.Close)

	vm.UpdateOnlineStatus(context.Background(), true)

	users.AssertNotCalled(t, "UpdateOnlineStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGroupViewModel_LoadsAndFollowsCache(t *testing.T) {
	groups := mockUsecase.NewMockGroupUsecase(t)
	feed := sqlite.NewChangeFeed()

	first := []*entity.GroupWithMembers{{Group: entity.Group{ID: "g1"}}}
	second := append(first, &entity.GroupWithMembers{Group: entity.Group{ID: "g2"}})

	groups.EXPECT().MyGroups(mock.Anything, "u1").Return(first, nil)
	groups.EXPECT().CachedGroups(mock.Anything, "u1").Return(second, nil)

	vm := NewGroupViewModel(context.Background(), groups, feed, discard, "u1")
	t.Cleanup(vm.Close)

	assert.Equal(t, first, vm.State().UserGroups)

	feed.Publish(repository.TableMembers)

	assert.Eventually(t, func() bool {
		return len(vm.State().UserGroups) == 2
	}, waitFor, tick)
}

func TestGroupViewModel_RequiresUser(t *testing.T) {
	groups := mockUsecase.NewMockGroupUsecase(t)

	vm := NewGroupViewModel(context.Background(), groups, sqlite.NewChangeFeed(), discard, "")
	t.Cleanup(vm.Close)

	assert.Equal(t, errNotLoggedIn, vm.State().GroupError)

	res := vm.CreateGroup(context.Background(), &usecase.CreateGroupInput{Name: "x"})
	assert.True(t, res.IsError())
	assert.Equal(t, errNotLoggedIn, res.Message)
}

func TestGroupViewModel_JoinFailureKeepsGroups(t *testing.T) {
	groups := mockUsecase.NewMockGroupUsecase(t)
	cached := []*entity.GroupWithMembers{{Group: entity.Group{ID: "g1"}}}

	groups.EXPECT().MyGroups(mock.Anything, "u1").Return(cached, nil)
	groups.EXPECT().JoinByInviteCode(mock.Anything, "u1", "ABC123").
		Return(nil, domainerrors.ErrGroupFull.WrapMessage("join"))

	vm := NewGroupViewModel(context.Background(), groups, sqlite.NewChangeFeed(), discard, "u1")
	t.Cleanup(vm.Close)

	res := vm.JoinGroup(context.Background(), "ABC123")
	require.True(t, res.IsError())

	state := vm.State()
	assert.Equal(t, domainerrors.ErrGroupFull.Message(), state.GroupError)
	assert.Equal(t, cached, state.UserGroups)
	assert.False(t, state.IsLoading)
}

func TestGroupViewModel_LoadErrorClearsList(t *testing.T) {
	groups := mockUsecase.NewMockGroupUsecase(t)
	groups.EXPECT().MyGroups(mock.Anything, "u1").Return(nil, domainerrors.ErrRemoteStoreFailed)

	vm := NewGroupViewModel(context.Background(), groups, sqlite.NewChangeFeed(), discard, "u1")
	t.Cleanup(vm.Close)

	state := vm.State()
	assert.Nil(t, state.UserGroups)
	assert.Equal(t, domainerrors.ErrRemoteStoreFailed.Message(), state.GroupError)
}

func TestGroupViewModel_Refresh(t *testing.T) {
	groups := mockUsecase.NewMockGroupUsecase(t)
	refreshed := []*entity.GroupWithMembers{{Group: entity.Group{ID: "g1"}}}

	groups.EXPECT().MyGroups(mock.Anything, "u1").Return(nil, nil)
	groups.EXPECT().RefreshMyGroups(mock.Anything, "u1").Return(nil)
	groups.EXPECT().CachedGroups(mock.Anything, "u1").Return(refreshed, nil)

	vm := NewGroupViewModel(context.Background(), groups, sqlite.NewChangeFeed(), discard, "u1")
	t.Cleanup(vm.Close)

	res := vm.Refresh(context.Background())
	require.True(t, res.IsSuccess())
	assert.Equal(t, refreshed, vm.State().UserGroups)
}

func expectInvitationReload(m *mockUsecase.MockInvitationUsecase, active, mine []*entity.BreakInvitation, count int64) {
	m.EXPECT().Active(mock.Anything, "u1").Return(active, nil)
	m.EXPECT().ByInitiator(mock.Anything, "u1").Return(mine, nil)
	m.EXPECT().CountToday(mock.Anything, "u1").Return(count, nil)
}

func TestBreakInvitationViewModel_InitialLoad(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	active := []*entity.BreakInvitation{{ID: "i1", Status: entity.InvitationPending}}
	expectInvitationReload(invitations, active, nil, 2)

	vm := NewBreakInvitationViewModel(context.Background(), invitations, sqlite.NewChangeFeed(), discard, "u1")
	t.Cleanup(vm.Close)

	state := vm.State()
	assert.Equal(t, active, state.ActiveInvitations)
	assert.Empty(t, state.UserInvitations)
	assert.EqualValues(t, 2, state.TodayInvitationCount)
	assert.Empty(t, state.Error)
}

func TestBreakInvitationViewModel_CreateSetsSuccessFlag(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	expectInvitationReload(invitations, nil, nil, 0)

	input := &usecase.CreateInvitationInput{GroupID: "g1", Message: "Break?"}
	created := &entity.BreakInvitation{ID: "i1", GroupID: "g1"}
	invitations.EXPECT().Create(mock.Anything, "u1", input).Return(created, nil)

	vm := NewBreakInvitationViewModel(context.Background(), invitations, sqlite.NewChangeFeed(), discard, "u1")
	t.Cleanup(vm.Close)

	res := vm.CreateInvitation(context.Background(), input)
	require.True(t, res.IsSuccess())
	assert.Equal(t, created, res.Data)
	assert.True(t, vm.State().CreateInvitationSuccess)

	vm.ClearCreateSuccess()
	assert.False(t, vm.State().CreateInvitationSuccess)
}

func TestBreakInvitationViewModel_CreateOverLimit(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	expectInvitationReload(invitations, nil, nil, 5)
	invitations.EXPECT().Create(mock.Anything, "u1", mock.Anything).
		Return(nil, domainerrors.ErrDailyBreakLimit.WithDetails("5 of 5"))

	vm := NewBreakInvitationViewModel(context.Background(), invitations, sqlite.NewChangeFeed(), discard, "u1")
	t.Cleanup(vm.Close)

	res := vm.CreateInvitation(context.Background(), &usecase.CreateInvitationInput{GroupID: "g1"})
	require.True(t, res.IsError())

	state := vm.State()
	assert.False(t, state.CreateInvitationSuccess)
	assert.Equal(t, domainerrors.ErrDailyBreakLimit.Message(), state.Error)
}

func TestBreakInvitationViewModel_QuickResponses(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	expectInvitationReload(invitations, nil, nil, 0)

	answered := &entity.BreakInvitation{ID: "i1"}
	invitations.EXPECT().
		Respond(mock.Anything, "u1", &usecase.RespondInput{InvitationID: "i1", Response: entity.ResponseAccepted}).
		Return(answered, nil)
	invitations.EXPECT().
		Respond(mock.Anything, "u1", &usecase.RespondInput{
			InvitationID: "i1",
			Response:     entity.ResponseDeclined,
			Reason:       entity.DeclineBusy,
		}).
		Return(answered, nil)
	invitations.EXPECT().
		Respond(mock.Anything, "u1", &usecase.RespondInput{
			InvitationID:  "i1",
			Response:      entity.ResponseMaybe,
			CustomMessage: "after lunch",
		}).
		Return(answered, nil)

	vm := NewBreakInvitationViewModel(context.Background(), invitations, sqlite.NewChangeFeed(), discard, "u1")
	t.Cleanup(vm.Close)

	ctx := context.Background()
	assert.True(t, vm.Accept(ctx, "i1").IsSuccess())
	assert.True(t, vm.Decline(ctx, "i1", "", "").IsSuccess())
	assert.True(t, vm.Maybe(ctx, "i1", "after lunch").IsSuccess())
}

func TestBreakInvitationViewModel_CancelClosedInvitation(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	expectInvitationReload(invitations, nil, nil, 0)
	invitations.EXPECT().Cancel(mock.Anything, "u1", "i1").
		Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("COMPLETED -> CANCELLED"))

	vm := NewBreakInvitationViewModel(context.Background(), invitations, sqlite.NewChangeFeed(), discard, "u1")
	t.Cleanup(vm.Close)

	res := vm.Cancel(context.Background(), "i1")
	require.True(t, res.IsError())
	assert.Equal(t, domainerrors.ErrInvalidStatusTransition.Message(), vm.State().Error)

	vm.ClearError()
	assert.Empty(t, vm.State().Error)
}

func TestBreakInvitationViewModel_ExpireAndFollowFeed(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	feed := sqlite.NewChangeFeed()

	open := []*entity.BreakInvitation{{ID: "i1", Status: entity.InvitationPending}}
	invitations.EXPECT().Active(mock.Anything, "u1").Return(open, nil).Once()
	invitations.EXPECT().Active(mock.Anything, "u1").Return(nil, nil)
	invitations.EXPECT().ByInitiator(mock.Anything, "u1").Return(nil, nil)
	invitations.EXPECT().CountToday(mock.Anything, "u1").Return(int64(1), nil)
	invitations.EXPECT().ExpireSweep(mock.Anything).Return(int64(1), nil)

	vm := NewBreakInvitationViewModel(context.Background(), invitations, feed, discard, "u1")
	t.Cleanup(vm.Close)
	require.Len(t, vm.State().ActiveInvitations, 1)

	res := vm.ExpireOldInvitations(context.Background())
	require.True(t, res.IsSuccess())
	assert.EqualValues(t, 1, res.Data)
	assert.Empty(t, vm.State().ActiveInvitations)

	feed.Publish(repository.TableBreakInvitations)
	assert.Eventually(t, func() bool {
		return len(vm.State().ActiveInvitations) == 0
	}, waitFor, tick)
}
