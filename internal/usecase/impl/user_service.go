// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "smokebreak/internal/delivery/context"
	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	identity    service.IdentityProvider
	userRepo    repository.UserRepository
	remoteUsers repository.RemoteUserStore
	remoteMems  repository.RemoteMemberStore
	clock       service.Clock
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Identity      service.IdentityProvider
	UserRepo      repository.UserRepository
	RemoteUsers   repository.RemoteUserStore
	RemoteMembers repository.RemoteMemberStore
	Clock         service.Clock
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		identity:    params.Identity,
		userRepo:    params.UserRepo,
		remoteUsers: params.RemoteUsers,
		remoteMems:  params.RemoteMembers,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	result, err := srv.identity.SignUp(ctx, input.Email, input.Password, input.DisplayName)
	if err != nil {
		return nil, identityError(err, "sign-up failed")
	}

	return srv.establishSession(ctx, result, input.FCMToken, func(user *entity.User) {
		if input.Department != "" {
			user.Department = input.Department
		}
	})
}

func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	result, err := srv.identity.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, identityError(err, "sign-in failed")
	}

	return srv.establishSession(ctx, result, input.FCMToken, nil)
}

func (srv *userService) SignInWithGoogle(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.AuthOutput, error) {
	result, err := srv.identity.SignInWithGoogle(ctx, input.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return nil, domainerrors.ErrGoogleSignInFailed
		}

		return nil, identityError(err, "google sign-in failed")
	}

	return srv.establishSession(ctx, result, input.FCMToken, nil)
}

// establishSession creates or refreshes the profile document, marks the user online and
// stores the push token, remote first and then local.
func (srv *userService) establishSession(
	ctx context.Context,
	result *service.SignInResult,
	fcmToken string,
	customize func(*entity.User),
) (*usecase.AuthOutput, error) {
	now := srv.clock.Now()

	user, err := srv.remoteUsers.Get(ctx, result.UID)
	switch {
	case errors.Is(err, repository.ErrRemoteNotFound):
		user = newUserProfile(result)
		user.CreatedAt = now
	case err != nil:
		return nil, remoteError(err, nil, "failed to load profile")
	}

	if user.Email == "" {
		user.Email = result.Email
	}
	if user.DisplayName == "" {
		user.DisplayName = result.DisplayName
	}
	if user.AvatarURL == "" {
		user.AvatarURL = result.PhotoURL
	}
	if customize != nil {
		customize(user)
	}
	user.IsOnline = true
	if fcmToken != "" {
		user.FCMToken = fcmToken
	}
	user.UpdatedAt = now

	if err := srv.remoteUsers.Put(ctx, user); err != nil {
		return nil, remoteError(err, nil, "failed to save profile")
	}
	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to cache profile")
	}

	srv.log(ctx).Info("User signed in",
		slog.String("user_id", user.ID),
		slog.Bool("new_user", result.IsNewUser),
	)

	return &usecase.AuthOutput{
		User:      user,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		IsNewUser: result.IsNewUser,
	}, nil
}

func newUserProfile(result *service.SignInResult) *entity.User {
	displayName := result.DisplayName
	if displayName == "" {
		displayName, _, _ = strings.Cut(result.Email, "@")
	}

	return &entity.User{
		ID:          result.UID,
		Email:       result.Email,
		DisplayName: displayName,
		AvatarURL:   result.PhotoURL,
		Preferences: entity.DefaultUserPreferences(),
	}
}

func (srv *userService) SendPasswordReset(ctx context.Context, email string) error {
	if err := srv.identity.SendPasswordReset(ctx, email); err != nil {
		return identityError(err, "password reset failed")
	}

	return nil
}

func (srv *userService) SignOut(ctx context.Context, userID string) error {
	if err := srv.UpdateOnlineStatus(ctx, userID, false); err != nil && !errors.Is(err, domainerrors.ErrUserNotFound) {
		return err
	}

	if err := srv.identity.SignOut(ctx, userID); err != nil {
		return identityError(err, "sign-out failed")
	}

	srv.log(ctx).Info("User signed out", slog.String("user_id", userID))

	return nil
}

// DeleteAccount removes remote memberships and the profile, then the local row (its member rows
// cascade), then the identity account.
func (srv *userService) DeleteAccount(ctx context.Context, userID string) error {
	memberships, err := srv.remoteMems.FindByUser(ctx, userID)
	if err != nil {
		return remoteError(err, nil, "failed to list memberships")
	}

	for _, m := range memberships {
		if err := srv.remoteMems.Delete(ctx, m.GroupID, m.UserID); err != nil {
			return remoteError(err, nil, "failed to delete membership")
		}
	}

	if err := srv.remoteUsers.Delete(ctx, userID); err != nil {
		return remoteError(err, nil, "failed to delete profile")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to delete cached profile")
	}

	if err := srv.identity.DeleteAccount(ctx, userID); err != nil && !errors.Is(err, service.ErrAccountNotFound) {
		return identityError(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted",
		slog.String("user_id", userID),
		slog.Int("memberships", len(memberships)),
	)

	return nil
}

func (srv *userService) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, err := srv.identity.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return "", domainerrors.ErrTokenInvalid
		}

		return "", identityError(err, "token verification failed")
	}

	return uid, nil
}

// GetUser fetches the remote document and caches it. When the remote store is unreachable the cached
// copy is returned.
func (srv *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.remoteUsers.Get(ctx, userID)
	if err == nil {
		if err := srv.userRepo.Upsert(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to cache user")
		}

		return user, nil
	}

	if !isRemoteUnavailable(err) {
		return nil, remoteError(err, domainerrors.ErrUserNotFound, "user not found")
	}

	srv.log(ctx).Warn("Remote store unavailable, serving cached user",
		slog.String("user_id", userID),
		slog.Any("error", err),
	)

	cached, localErr := srv.userRepo.FindByID(ctx, userID)
	if localErr != nil {
		return nil, remoteError(err, nil, "failed to fetch user")
	}

	return cached, nil
}

func (srv *userService) CachedUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user not cached")
	}

	return user, errors.Wrap(err, "failed to read cached user")
}

func (srv *userService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	return srv.update(ctx, userID, func(user *entity.User) error {
		if input.DisplayName != nil {
			name := strings.TrimSpace(*input.DisplayName)
			if name == "" {
				return domainerrors.ErrValidationFailed.WrapMessage("display name cannot be empty")
			}
			user.DisplayName = name
		}
		if input.Department != nil {
			user.Department = strings.TrimSpace(*input.Department)
		}
		if input.AvatarURL != nil {
			user.AvatarURL = *input.AvatarURL
		}

		return nil
	})
}

func (srv *userService) UpdatePreferences(ctx context.Context, userID string, prefs entity.UserPreferences) (*entity.User, error) {
	if !prefs.WorkingHours.Validate() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("working hours must be HH:mm with weekdays 1-7")
	}
	if prefs.MaxBreaksPerDay < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("max breaks per day cannot be negative")
	}

	return srv.update(ctx, userID, func(user *entity.User) error {
		user.Preferences = prefs

		return nil
	})
}

// update applies mutate to the current remote document and writes it back to both stores.
func (srv *userService) update(ctx context.Context, userID string, mutate func(*entity.User) error) (*entity.User, error) {
	user, err := srv.remoteUsers.Get(ctx, userID)
	if err != nil {
		return nil, remoteError(err, domainerrors.ErrUserNotFound, "failed to load user")
	}

	if err := mutate(user); err != nil {
		return nil, err
	}
	user.UpdatedAt = srv.clock.Now()

	if err := srv.remoteUsers.Put(ctx, user); err != nil {
		return nil, remoteError(err, nil, "failed to save user")
	}
	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to cache user")
	}

	return user, nil
}

func (srv *userService) UpdateOnlineStatus(ctx context.Context, userID string, online bool) error {
	if err := srv.remoteUsers.UpdateOnline(ctx, userID, online, srv.clock.Now()); err != nil {
		return remoteError(err, domainerrors.ErrUserNotFound, "failed to update online status")
	}

	if err := srv.userRepo.SetOnline(ctx, userID, online); err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to cache online status")
	}

	return nil
}

func (srv *userService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	if err := srv.remoteUsers.UpdateFCMToken(ctx, userID, token, srv.clock.Now()); err != nil {
		return remoteError(err, domainerrors.ErrUserNotFound, "failed to update push token")
	}

	if err := srv.userRepo.SetFCMToken(ctx, userID, token); err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to cache push token")
	}

	return nil
}

func (srv *userService) OnlineUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindOnline(ctx)

	return users, errors.Wrap(err, "failed to list online users")
}

func (srv *userService) UsersByDepartment(ctx context.Context, department string) ([]*entity.User, error) {
	users, err := srv.userRepo.FindByDepartment(ctx, department)

	return users, errors.Wrap(err, "failed to list users by department")
}

func (srv *userService) Departments(ctx context.Context) ([]string, error) {
	departments, err := srv.userRepo.Departments(ctx)

	return departments, errors.Wrap(err, "failed to list departments")
}

func (srv *userService) CountUsers(ctx context.Context) (int64, error) {
	count, err := srv.userRepo.Count(ctx)

	return count, errors.Wrap(err, "failed to count users")
}

// identityError maps identity provider sentinels onto AppErrors.
func identityError(err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return domainerrors.ErrInvalidCredentials
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return domainerrors.ErrEmailAlreadyExists
	case errors.Is(err, service.ErrInvalidToken):
		return domainerrors.ErrTokenInvalid
	case errors.Is(err, service.ErrAccountNotFound):
		return domainerrors.ErrUserNotFound
	default:
		return errors.Wrap(domainerrors.ErrIdentityProviderFailed.WithDetails(err.Error()), msg)
	}
}
