package viewmodel

import (
	"context"
	"log/slog"
	"sync"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/usecase"
)

// AuthState is the observable state of an AuthViewModel.
type AuthState struct {
	IsLoading   bool
	IsLoggedIn  bool
	AuthError   string
	CurrentUser *entity.User
}

// AuthViewModel tracks one client's sign-in state and its cached profile.
type AuthViewModel struct {
	*watcher
	users usecase.UserUsecase
	state *Observable[AuthState]

	mu     sync.RWMutex
	userID string
}

// NewAuthViewModel restores the session carried by token, if any.
func NewAuthViewModel(
	ctx context.Context,
	users usecase.UserUsecase,
	feed repository.ChangeFeed,
	logger *slog.Logger,
	token string,
) *AuthViewModel {
	vm := &AuthViewModel{
		watcher: newWatcher(ctx, feed, logger),
		users:   users,
		state:   NewObservable(AuthState{IsLoading: true}),
	}

	vm.restore(vm.ctx, token)
	vm.watch(vm.reloadUser, repository.TableUsers)

	return vm
}

func (vm *AuthViewModel) State() AuthState {
	return vm.state.Get()
}

func (vm *AuthViewModel) Subscribe() (<-chan AuthState, func()) {
	return vm.state.Subscribe()
}

// UserID returns the signed-in user's ID, empty when signed out.
func (vm *AuthViewModel) UserID() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	return vm.userID
}

func (vm *AuthViewModel) restore(ctx context.Context, token string) {
	if token == "" {
		vm.state.Set(AuthState{})

		return
	}

	userID, err := vm.users.VerifyToken(ctx, token)
	if err != nil {
		vm.logger.Debug("Stored session is no longer valid", slog.Any("error", err))
		vm.state.Set(AuthState{})

		return
	}

	user, err := vm.users.GetUser(ctx, userID)
	if err != nil {
		vm.state.Set(AuthState{AuthError: ErrorMessage(err)})

		return
	}

	vm.setUserID(userID)
	vm.state.Set(AuthState{IsLoggedIn: true, CurrentUser: user})
}

func (vm *AuthViewModel) SignIn(ctx context.Context, input *usecase.SignInInput) Resource[*usecase.AuthOutput] {
	return vm.authenticate(ctx, func(ctx context.Context) (*usecase.AuthOutput, error) {
		return vm.users.SignIn(ctx, input)
	})
}

func (vm *AuthViewModel) SignUp(ctx context.Context, input *usecase.SignUpInput) Resource[*usecase.AuthOutput] {
	return vm.authenticate(ctx, func(ctx context.Context) (*usecase.AuthOutput, error) {
		return vm.users.SignUp(ctx, input)
	})
}

func (vm *AuthViewModel) SignInWithGoogle(ctx context.Context, input *usecase.GoogleSignInInput) Resource[*usecase.AuthOutput] {
	return vm.authenticate(ctx, func(ctx context.Context) (*usecase.AuthOutput, error) {
		return vm.users.SignInWithGoogle(ctx, input)
	})
}

func (vm *AuthViewModel) authenticate(
	ctx context.Context,
	fn func(ctx context.Context) (*usecase.AuthOutput, error),
) Resource[*usecase.AuthOutput] {
	vm.begin()

	out, err := fn(ctx)
	if err != nil {
		vm.fail(err)

		return Failure[*usecase.AuthOutput](err)
	}

	vm.setUserID(out.User.ID)
	vm.state.Set(AuthState{IsLoggedIn: true, CurrentUser: out.User})

	return Success(out)
}

func (vm *AuthViewModel) SignOut(ctx context.Context) Resource[struct{}] {
	userID := vm.UserID()
	if userID == "" {
		return Success(struct{}{})
	}

	vm.begin()
	if err := vm.users.SignOut(ctx, userID); err != nil {
		vm.fail(err)

		return Failure[struct{}](err)
	}

	vm.setUserID("")
	vm.state.Set(AuthState{})

	return Success(struct{}{})
}

func (vm *AuthViewModel) ResetPassword(ctx context.Context, email string) Resource[struct{}] {
	vm.begin()
	if err := vm.users.SendPasswordReset(ctx, email); err != nil {
		vm.fail(err)

		return Failure[struct{}](err)
	}

	vm.state.Update(func(s AuthState) AuthState {
		s.IsLoading = false

		return s
	})

	return Success(struct{}{})
}

// UpdateOnlineStatus is a no-op when signed out. Failures are logged, not surfaced.
func (vm *AuthViewModel) UpdateOnlineStatus(ctx context.Context, online bool) {
	userID := vm.UserID()
	if userID == "" {
		return
	}

	if err := vm.users.UpdateOnlineStatus(ctx, userID, online); err != nil {
		vm.logger.Warn("Failed to update online status",
			slog.String("user_id", userID),
			slog.Bool("online", online),
			slog.Any("error", err),
		)
	}
}

func (vm *AuthViewModel) ClearError() {
	vm.state.Update(func(s AuthState) AuthState {
		s.AuthError = ""

		return s
	})
}

func (vm *AuthViewModel) reloadUser(ctx context.Context) {
	userID := vm.UserID()
	if userID == "" {
		return
	}

	user, err := vm.users.CachedUser(ctx, userID)
	if err != nil {
		vm.logger.Debug("Cached profile unavailable", slog.String("user_id", userID), slog.Any("error", err))

		return
	}

	vm.state.Update(func(s AuthState) AuthState {
		if s.IsLoggedIn {
			s.CurrentUser = user
		}

		return s
	})
}

func (vm *AuthViewModel) setUserID(userID string) {
	vm.mu.Lock()
	vm.userID = userID
	vm.mu.Unlock()
}

func (vm *AuthViewModel) begin() {
	vm.state.Update(func(s AuthState) AuthState {
		s.IsLoading = true
		s.AuthError = ""

		return s
	})
}

func (vm *AuthViewModel) fail(err error) {
	vm.state.Update(func(s AuthState) AuthState {
		s.IsLoading = false
		s.AuthError = ErrorMessage(err)

		return s
	})
}
