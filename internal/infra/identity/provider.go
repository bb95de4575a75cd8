package identity

import (
	"context"
	"log/slog"

	"smokebreak/config"
	"smokebreak/internal/domain/constants"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params collects the dependencies of both providers. App is nil unless firebase is configured.
type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Credentials repository.CredentialRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Google      service.GoogleTokenVerifier
	App         *firebase.App `optional:"true"`
}

// NewIdentityProvider creates the identity provider named by identity.provider.
func NewIdentityProvider(ctx context.Context, params Params) (service.IdentityProvider, error) {
	providerType := constants.IdentityProviderLocal
	if params.Config.Identity != nil && params.Config.Identity.Provider != "" {
		providerType = params.Config.Identity.Provider
	}

	switch providerType {
	case constants.IdentityProviderLocal:
		params.Logger.Info("Using local identity provider")

		return NewLocalProvider(params.Credentials, params.Hasher, params.Tokens, params.Google, params.Logger), nil

	case constants.IdentityProviderFirebase:
		if params.App == nil {
			return nil, errors.New("firebase app is required for the firebase identity provider")
		}

		client, err := params.App.Auth(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get firebase auth client")
		}

		rest, err := newIdentityToolkitClient(ctx, params.Config.Identity.APIKey)
		if err != nil {
			return nil, err
		}

		params.Logger.Info("Using firebase identity provider")

		return newFirebaseProvider(client, rest, params.Logger), nil

	default:
		return nil, errors.Errorf("unsupported identity provider: %s", providerType)
	}
}
