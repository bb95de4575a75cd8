package impl

import (
	"context"
	"testing"
	"time"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_SignUp_CreatesProfileInBothStores(t *testing.T) {
	f := newServiceFixtures(t)

	f.identity.EXPECT().
		SignUp(mock.Anything, "alice@example.com", "s3cret-pass", "Alice").
		Return(&service.SignInResult{
			UID:         "u-alice",
			Email:       "alice@example.com",
			DisplayName: "Alice",
			Token:       "token-1",
			ExpiresAt:   fixtureNow.Add(time.Hour),
			IsNewUser:   true,
		}, nil)

	out, err := f.users.SignUp(f.ctx, &usecase.SignUpInput{
		Email:       "alice@example.com",
		Password:    "s3cret-pass",
		DisplayName: "Alice",
		Department:  "Platform",
		FCMToken:    "fcm-1",
	})
	require.NoError(t, err)
	assert.True(t, out.IsNewUser)
	assert.Equal(t, "token-1", out.Token)

	remoteUser, err := f.remoteUsers.Get(f.ctx, "u-alice")
	require.NoError(t, err)
	assert.True(t, remoteUser.IsOnline)
	assert.Equal(t, "fcm-1", remoteUser.FCMToken)
	assert.Equal(t, "Platform", remoteUser.Department)
	assert.Equal(t, entity.DefaultUserPreferences(), remoteUser.Preferences)

	cached, err := f.userRepo.FindByID(f.ctx, "u-alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", cached.DisplayName)
	assert.True(t, cached.IsOnline)
}

func TestUserService_SignIn_KeepsExistingPreferences(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u-bob", "Bob", func(u *entity.User) {
		u.Preferences.MaxBreaksPerDay = 2
		u.IsOnline = false
	})

	f.identity.EXPECT().
		SignIn(mock.Anything, "u-bob@example.com", "pw").
		Return(&service.SignInResult{UID: "u-bob", Email: "u-bob@example.com", Token: "t"}, nil)

	out, err := f.users.SignIn(f.ctx, &usecase.SignInInput{Email: "u-bob@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.User.Preferences.MaxBreaksPerDay)
	assert.Equal(t, "Bob", out.User.DisplayName)
	assert.True(t, out.User.IsOnline)
	assert.Equal(t, "token-u-bob", out.User.FCMToken, "empty push token leaves the stored one")
}

func TestUserService_SignIn_NameFallsBackToEmailLocalPart(t *testing.T) {
	f := newServiceFixtures(t)

	f.identity.EXPECT().
		SignIn(mock.Anything, "carol@example.com", "pw").
		Return(&service.SignInResult{UID: "u-carol", Email: "carol@example.com"}, nil)

	out, err := f.users.SignIn(f.ctx, &usecase.SignInInput{Email: "carol@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "carol", out.User.DisplayName)
}

func TestUserService_IdentityErrorsAreMapped(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "invalid credentials", err: service.ErrInvalidCredentials, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "email taken", err: service.ErrEmailAlreadyExists, wantErr: domainerrors.ErrEmailAlreadyExists},
		{name: "unknown failure", err: errors.New("boom"), wantErr: domainerrors.ErrIdentityProviderFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixtures(t)
			f.identity.EXPECT().SignIn(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := f.users.SignIn(f.ctx, &usecase.SignInInput{Email: "x@example.com", Password: "pw"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_SignInWithGoogle_RejectedToken(t *testing.T) {
	f := newServiceFixtures(t)
	f.identity.EXPECT().SignInWithGoogle(mock.Anything, "bad").Return(nil, service.ErrInvalidToken)

	_, err := f.users.SignInWithGoogle(f.ctx, &usecase.GoogleSignInInput{IDToken: "bad"})
	assert.ErrorIs(t, err, domainerrors.ErrGoogleSignInFailed)
}

func TestUserService_SignOut_MarksOffline(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u1", "Dana", func(u *entity.User) { u.IsOnline = true })
	f.identity.EXPECT().SignOut(mock.Anything, "u1").Return(nil)

	require.NoError(t, f.users.SignOut(f.ctx, "u1"))

	remoteUser, err := f.remoteUsers.Get(f.ctx, "u1")
	require.NoError(t, err)
	assert.False(t, remoteUser.IsOnline)

	cached, err := f.userRepo.FindByID(f.ctx, "u1")
	require.NoError(t, err)
	assert.False(t, cached.IsOnline)
}

func TestUserService_DeleteAccount_RemovesEverything(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "owner", "Owner")
	f.seedUser(t, "u1", "Eve")
	group := f.seedGroup(t, "owner", "u1")
	f.identity.EXPECT().DeleteAccount(mock.Anything, "u1").Return(nil)

	require.NoError(t, f.users.DeleteAccount(f.ctx, "u1"))

	_, err := f.remoteUsers.Get(f.ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrRemoteNotFound)
	_, err = f.remoteMembers.Get(f.ctx, group.Group.ID, "u1")
	assert.ErrorIs(t, err, repository.ErrRemoteNotFound)
	_, err = f.userRepo.FindByID(f.ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = f.memberRepo.Find(f.ctx, "u1", group.Group.ID)
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
}

func TestUserService_GetUser_ReadThrough(t *testing.T) {
	f := newServiceFixtures(t)
	require.NoError(t, f.remoteUsers.Put(f.ctx, &entity.User{
		ID:          "remote-only",
		Email:       "r@example.com",
		DisplayName: "Remote",
		Preferences: entity.DefaultUserPreferences(),
	}))

	user, err := f.users.GetUser(f.ctx, "remote-only")
	require.NoError(t, err)
	assert.Equal(t, "Remote", user.DisplayName)

	cached, err := f.userRepo.FindByID(f.ctx, "remote-only")
	require.NoError(t, err)
	assert.Equal(t, "Remote", cached.DisplayName)

	_, err = f.users.GetUser(f.ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetUser_FallsBackToCacheWhenRemoteDown(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u1", "Frank")
	require.NoError(t, f.remote.Close())

	user, err := f.users.GetUser(f.ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Frank", user.DisplayName)

	_, err = f.users.GetUser(f.ctx, "uncached")
	assert.ErrorIs(t, err, domainerrors.ErrRemoteStoreFailed)
}

func TestUserService_UpdatePreferences(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u1", "Gina")

	_, err := f.users.UpdatePreferences(f.ctx, "u1", entity.UserPreferences{
		WorkingHours: entity.WorkingHours{StartTime: "9am", EndTime: "17:00"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	prefs := entity.DefaultUserPreferences()
	prefs.MaxBreaksPerDay = 0
	prefs.WorkingHours = entity.WorkingHours{StartTime: "22:00", EndTime: "06:00", WorkingDays: []int{6, 7}}

	updated, err := f.users.UpdatePreferences(f.ctx, "u1", prefs)
	require.NoError(t, err)
	assert.Equal(t, prefs, updated.Preferences)

	cached, err := f.userRepo.FindByID(f.ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, prefs, cached.Preferences)
}

func TestUserService_UpdateProfile(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u1", "Hank")

	blank := "   "
	_, err := f.users.UpdateProfile(f.ctx, "u1", &usecase.UpdateProfileInput{DisplayName: &blank})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	name, dept := "Henry", "Sales"
	user, err := f.users.UpdateProfile(f.ctx, "u1", &usecase.UpdateProfileInput{DisplayName: &name, Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Henry", user.DisplayName)

	departments, err := f.users.Departments(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sales"}, departments)

	_, err = f.users.UpdateProfile(context.Background(), "ghost", &usecase.UpdateProfileInput{DisplayName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_VerifyToken(t *testing.T) {
	f := newServiceFixtures(t)
	f.identity.EXPECT().VerifyToken(mock.Anything, "good").Return("u1", nil)
	f.identity.EXPECT().VerifyToken(mock.Anything, "bad").Return("", service.ErrInvalidToken)

	uid, err := f.users.VerifyToken(f.ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)

	_, err = f.users.VerifyToken(f.ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestUserService_UpdateFCMTokenAndOnlineUsers(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u1", "Ivy")

	require.NoError(t, f.users.UpdateFCMToken(f.ctx, "u1", "new-token"))
	require.NoError(t, f.users.UpdateOnlineStatus(f.ctx, "u1", true))

	online, err := f.users.OnlineUsers(f.ctx)
	require.NoError(t, err)
	require.Len(t, online, 1)
	assert.Equal(t, "new-token", online[0].FCMToken)

	assert.ErrorIs(t, f.users.UpdateOnlineStatus(f.ctx, "ghost", true), domainerrors.ErrUserNotFound)
}

func TestUserService_CachedUser(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "u-dana", "Dana")

	user, err := f.users.CachedUser(f.ctx, "u-dana")
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.DisplayName)

	_, err = f.users.CachedUser(f.ctx, "u-nobody")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
