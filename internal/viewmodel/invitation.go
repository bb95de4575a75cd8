package viewmodel

import (
	"context"
	"log/slog"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/usecase"
)

// InvitationState is the observable state of a BreakInvitationViewModel.
type InvitationState struct {
	IsLoading               bool
	Error                   string
	ActiveInvitations       []*entity.BreakInvitation // Open invitations in the user's groups.
	UserInvitations         []*entity.BreakInvitation // Invitations the user started.
	TodayInvitationCount    int64
	CreateInvitationSuccess bool
}

// BreakInvitationViewModel exposes one user's invitations and the lifecycle actions on them.
type BreakInvitationViewModel struct {
	*watcher
	invitations usecase.InvitationUsecase
	userID      string
	state       *Observable[InvitationState]
}

func NewBreakInvitationViewModel(
	ctx context.Context,
	invitations usecase.InvitationUsecase,
	feed repository.ChangeFeed,
	logger *slog.Logger,
	userID string,
) *BreakInvitationViewModel {
	vm := &BreakInvitationViewModel{
		watcher:     newWatcher(ctx, feed, logger.With(slog.String("user_id", userID))),
		invitations: invitations,
		userID:      userID,
		state:       NewObservable(InvitationState{}),
	}

	vm.reload(vm.ctx)
	vm.watch(vm.reload, repository.TableBreakInvitations, repository.TableMembers)

	return vm
}

func (vm *BreakInvitationViewModel) State() InvitationState {
	return vm.state.Get()
}

func (vm *BreakInvitationViewModel) Subscribe() (<-chan InvitationState, func()) {
	return vm.state.Subscribe()
}

// reload re-reads all three collections from the local cache. The first failure is
// kept as the error; the other collections still refresh.
func (vm *BreakInvitationViewModel) reload(ctx context.Context) {
	active, activeErr := vm.invitations.Active(ctx, vm.userID)
	mine, mineErr := vm.invitations.ByInitiator(ctx, vm.userID)
	count, countErr := vm.invitations.CountToday(ctx, vm.userID)

	vm.state.Update(func(s InvitationState) InvitationState {
		if activeErr == nil {
			s.ActiveInvitations = active
		}
		if mineErr == nil {
			s.UserInvitations = mine
		}
		if countErr == nil {
			s.TodayInvitationCount = count
		}
		for _, err := range []error{activeErr, mineErr, countErr} {
			if err != nil {
				s.Error = ErrorMessage(err)

				break
			}
		}

		return s
	})
}

func (vm *BreakInvitationViewModel) CreateInvitation(
	ctx context.Context,
	input *usecase.CreateInvitationInput,
) Resource[*entity.BreakInvitation] {
	vm.state.Update(func(s InvitationState) InvitationState {
		s.IsLoading = true
		s.Error = ""
		s.CreateInvitationSuccess = false

		return s
	})

	invitation, err := vm.invitations.Create(ctx, vm.userID, input)
	if err != nil {
		vm.end(err)

		return Failure[*entity.BreakInvitation](err)
	}

	vm.reload(ctx)
	vm.state.Update(func(s InvitationState) InvitationState {
		s.IsLoading = false
		s.CreateInvitationSuccess = true

		return s
	})

	return Success(invitation)
}

func (vm *BreakInvitationViewModel) Respond(ctx context.Context, input *usecase.RespondInput) Resource[*entity.BreakInvitation] {
	return vm.run(ctx, func(ctx context.Context) (*entity.BreakInvitation, error) {
		return vm.invitations.Respond(ctx, vm.userID, input)
	})
}

func (vm *BreakInvitationViewModel) Accept(ctx context.Context, invitationID string) Resource[*entity.BreakInvitation] {
	return vm.Respond(ctx, &usecase.RespondInput{
		InvitationID: invitationID,
		Response:     entity.ResponseAccepted,
	})
}

// Decline answers with reason, BUSY when none is given.
func (vm *BreakInvitationViewModel) Decline(
	ctx context.Context,
	invitationID string,
	reason entity.DeclineReason,
	customMessage string,
) Resource[*entity.BreakInvitation] {
	if reason == "" {
		reason = entity.DeclineBusy
	}

	return vm.Respond(ctx, &usecase.RespondInput{
		InvitationID:  invitationID,
		Response:      entity.ResponseDeclined,
		Reason:        reason,
		CustomMessage: customMessage,
	})
}

func (vm *BreakInvitationViewModel) Maybe(ctx context.Context, invitationID, message string) Resource[*entity.BreakInvitation] {
	return vm.Respond(ctx, &usecase.RespondInput{
		InvitationID:  invitationID,
		Response:      entity.ResponseMaybe,
		CustomMessage: message,
	})
}

func (vm *BreakInvitationViewModel) Cancel(ctx context.Context, invitationID string) Resource[*entity.BreakInvitation] {
	return vm.run(ctx, func(ctx context.Context) (*entity.BreakInvitation, error) {
		return vm.invitations.Cancel(ctx, vm.userID, invitationID)
	})
}

// ExpireOldInvitations runs the expiry sweep and returns how many invitations expired.
func (vm *BreakInvitationViewModel) ExpireOldInvitations(ctx context.Context) Resource[int64] {
	expired, err := vm.invitations.ExpireSweep(ctx)
	vm.reload(ctx)
	if err != nil {
		vm.logger.Warn("Expiry sweep failed", slog.Any("error", err))

		return Failure[int64](err)
	}

	return Success(expired)
}

// Refresh expires stale invitations, then re-reads every collection.
func (vm *BreakInvitationViewModel) Refresh(ctx context.Context) {
	if _, err := vm.invitations.ExpireSweep(ctx); err != nil {
		vm.logger.Warn("Expiry sweep failed", slog.Any("error", err))
	}
	vm.reload(ctx)
}

func (vm *BreakInvitationViewModel) ClearError() {
	vm.state.Update(func(s InvitationState) InvitationState {
		s.Error = ""

		return s
	})
}

func (vm *BreakInvitationViewModel) ClearCreateSuccess() {
	vm.state.Update(func(s InvitationState) InvitationState {
		s.CreateInvitationSuccess = false

		return s
	})
}

func (vm *BreakInvitationViewModel) run(
	ctx context.Context,
	fn func(ctx context.Context) (*entity.BreakInvitation, error),
) Resource[*entity.BreakInvitation] {
	vm.state.Update(func(s InvitationState) InvitationState {
		s.IsLoading = true
		s.Error = ""

		return s
	})

	invitation, err := fn(ctx)
	if err == nil {
		vm.reload(ctx)
	}
	vm.end(err)
	if err != nil {
		return Failure[*entity.BreakInvitation](err)
	}

	return Success(invitation)
}

func (vm *BreakInvitationViewModel) end(err error) {
	vm.state.Update(func(s InvitationState) InvitationState {
		s.IsLoading = false
		if err != nil {
			s.Error = ErrorMessage(err)
		}

		return s
	})
}
