package viewmodel

import (
	"context"
	"log/slog"

	"smokebreak/internal/domain/repository"
	"smokebreak/internal/usecase"

	"go.uber.org/fx"
)

// FactoryParams holds dependencies for Factory, injected by Fx.
type FactoryParams struct {
	fx.In

	Users       usecase.UserUsecase
	Groups      usecase.GroupUsecase
	Invitations usecase.InvitationUsecase
	Feed        repository.ChangeFeed
	Logger      *slog.Logger
}

// Factory builds view-models bound to a client connection. Callers Close them when the
// connection ends.
type Factory struct {
	users       usecase.UserUsecase
	groups      usecase.GroupUsecase
	invitations usecase.InvitationUsecase
	feed        repository.ChangeFeed
	logger      *slog.Logger
}

func NewFactory(params FactoryParams) *Factory {
	return &Factory{
		users:       params.Users,
		groups:      params.Groups,
		invitations: params.Invitations,
		feed:        params.Feed,
		logger:      params.Logger.With(slog.String("component", "viewmodel")),
	}
}

func (f *Factory) Auth(ctx context.Context, token string) *AuthViewModel {
	return NewAuthViewModel(ctx, f.users, f.feed, f.logger, token)
}

func (f *Factory) Groups(ctx context.Context, userID string) *GroupViewModel {
	return NewGroupViewModel(ctx, f.groups, f.feed, f.logger, userID)
}

func (f *Factory) Invitations(ctx context.Context, userID string) *BreakInvitationViewModel {
	return NewBreakInvitationViewModel(ctx, f.invitations, f.feed, f.logger, userID)
}
