package viewmodel

import (
	"context"
	"log/slog"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/usecase"
)

const errNotLoggedIn = "User not logged in."

// GroupState is the observable state of a GroupViewModel.
type GroupState struct {
	IsLoading  bool
	GroupError string
	UserGroups []*entity.GroupWithMembers
}

// GroupViewModel exposes the groups of one user and the group operations they can run.
type GroupViewModel struct {
	*watcher
	groups usecase.GroupUsecase
	userID string
	state  *Observable[GroupState]
}

// NewGroupViewModel serves the cached groups at once and starts a background refresh.
func NewGroupViewModel(
	ctx context.Context,
	groups usecase.GroupUsecase,
	feed repository.ChangeFeed,
	logger *slog.Logger,
	userID string,
) *GroupViewModel {
	vm := &GroupViewModel{
		watcher: newWatcher(ctx, feed, logger.With(slog.String("user_id", userID))),
		groups:  groups,
		userID:  userID,
		state:   NewObservable(GroupState{}),
	}

	vm.load(vm.ctx)
	vm.watch(vm.reload, repository.TableGroups, repository.TableMembers)

	return vm
}

func (vm *GroupViewModel) State() GroupState {
	return vm.state.Get()
}

func (vm *GroupViewModel) Subscribe() (<-chan GroupState, func()) {
	return vm.state.Subscribe()
}

func (vm *GroupViewModel) load(ctx context.Context) {
	if vm.userID == "" {
		vm.state.Set(GroupState{GroupError: errNotLoggedIn})

		return
	}

	vm.begin()
	groups, err := vm.groups.MyGroups(ctx, vm.userID)
	vm.setGroups(groups, err)
}

func (vm *GroupViewModel) reload(ctx context.Context) {
	if vm.userID == "" {
		return
	}

	groups, err := vm.groups.CachedGroups(ctx, vm.userID)
	vm.setGroups(groups, err)
}

// setGroups clears the list on error.
func (vm *GroupViewModel) setGroups(groups []*entity.GroupWithMembers, err error) {
	vm.state.Update(func(s GroupState) GroupState {
		s.IsLoading = false
		if err != nil {
			s.GroupError = ErrorMessage(err)
			s.UserGroups = nil

			return s
		}
		s.UserGroups = groups

		return s
	})
}

func (vm *GroupViewModel) CreateGroup(ctx context.Context, input *usecase.CreateGroupInput) Resource[*entity.GroupWithMembers] {
	return vm.mutate(ctx, func(ctx context.Context) (*entity.GroupWithMembers, error) {
		return vm.groups.Create(ctx, vm.userID, input)
	})
}

func (vm *GroupViewModel) UpdateGroup(ctx context.Context, groupID string, input *usecase.UpdateGroupInput) Resource[*entity.GroupWithMembers] {
	return vm.mutate(ctx, func(ctx context.Context) (*entity.GroupWithMembers, error) {
		return vm.groups.Update(ctx, vm.userID, groupID, input)
	})
}

func (vm *GroupViewModel) JoinGroup(ctx context.Context, inviteCode string) Resource[*entity.GroupWithMembers] {
	return vm.mutate(ctx, func(ctx context.Context) (*entity.GroupWithMembers, error) {
		return vm.groups.JoinByInviteCode(ctx, vm.userID, inviteCode)
	})
}

func (vm *GroupViewModel) LeaveGroup(ctx context.Context, groupID string) Resource[struct{}] {
	return vm.mutate0(ctx, func(ctx context.Context) error {
		return vm.groups.Leave(ctx, vm.userID, groupID)
	})
}

// Refresh pulls the user's groups from the remote store and waits for the result.
func (vm *GroupViewModel) Refresh(ctx context.Context) Resource[struct{}] {
	res := vm.mutate0(ctx, func(ctx context.Context) error {
		return vm.groups.RefreshMyGroups(ctx, vm.userID)
	})
	if res.IsSuccess() {
		vm.reload(ctx)
	}

	return res
}

func (vm *GroupViewModel) ClearError() {
	vm.state.Update(func(s GroupState) GroupState {
		s.GroupError = ""

		return s
	})
}

func (vm *GroupViewModel) mutate(
	ctx context.Context,
	fn func(ctx context.Context) (*entity.GroupWithMembers, error),
) Resource[*entity.GroupWithMembers] {
	if vm.userID == "" {
		vm.state.Update(func(s GroupState) GroupState {
			s.GroupError = errNotLoggedIn

			return s
		})

		return Resource[*entity.GroupWithMembers]{Status: StatusError, Message: errNotLoggedIn}
	}

	vm.begin()
	group, err := fn(ctx)
	vm.end(err)
	if err != nil {
		return Failure[*entity.GroupWithMembers](err)
	}

	return Success(group)
}

func (vm *GroupViewModel) mutate0(ctx context.Context, fn func(ctx context.Context) error) Resource[struct{}] {
	res := vm.mutate(ctx, func(ctx context.Context) (*entity.GroupWithMembers, error) {
		return nil, fn(ctx)
	})

	return Resource[struct{}]{Status: res.Status, Message: res.Message}
}

func (vm *GroupViewModel) begin() {
	vm.state.Update(func(s GroupState) GroupState {
		s.IsLoading = true
		s.GroupError = ""

		return s
	})
}

func (vm *GroupViewModel) end(err error) {
	vm.state.Update(func(s GroupState) GroupState {
		s.IsLoading = false
		if err != nil {
			s.GroupError = ErrorMessage(err)
		}

		return s
	})
}
