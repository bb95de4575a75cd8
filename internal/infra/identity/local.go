// Package identity implements the identity providers that own accounts and tokens.
package identity

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localProvider keeps credentials in the local cache store and issues its own JWTs.
// It is meant for development and offline deployments.
type localProvider struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	google      service.GoogleTokenVerifier
	logger      *slog.Logger
	now         func() time.Time
}

// NewLocalProvider creates the local identity provider.
func NewLocalProvider(
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	google service.GoogleTokenVerifier,
	logger *slog.Logger,
) service.IdentityProvider {
	return &localProvider{
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		google:      google,
		logger:      logger.With(slog.String("provider", "local")),
		now:         time.Now,
	}
}

func (p *localProvider) SignUp(ctx context.Context, email, password, displayName string) (*service.SignInResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := p.credentials.FindByEmail(ctx, email); err == nil {
		return nil, service.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, errors.Wrap(err, "failed to look up credential")
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := p.now()
	credential := &entity.Credential{
		UserID:       uuid.NewString(),
		Email:        email,
		Provider:     entity.CredentialProviderEmail,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := p.credentials.Create(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) {
			return nil, service.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create credential")
	}

	p.logger.Info("Account created", slog.String("uid", credential.UserID))

	return p.issue(credential, displayName, "", true)
}

func (p *localProvider) SignIn(ctx context.Context, email, password string) (*service.SignInResult, error) {
	credential, err := p.credentials.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, service.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up credential")
	}

	// Google-only accounts have no password.
	if credential.PasswordHash == "" || !p.hasher.Check(password, credential.PasswordHash) {
		return nil, service.ErrInvalidCredentials
	}

	return p.issue(credential, "", "", false)
}

// SignInWithGoogle signs into the account bound to the Google subject. An existing account with the
// same verified email is reused; otherwise a new google credential is created.
func (p *localProvider) SignInWithGoogle(ctx context.Context, googleIDToken string) (*service.SignInResult, error) {
	identity, err := p.google.VerifyIDToken(ctx, googleIDToken)
	if err != nil {
		p.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, service.ErrInvalidToken
	}

	credential, err := p.credentials.FindByProviderUserID(ctx, entity.CredentialProviderGoogle, identity.Subject)
	if err == nil {
		return p.issue(credential, identity.Name, identity.Picture, false)
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, errors.Wrap(err, "failed to look up google credential")
	}

	credential, err = p.credentials.FindByEmail(ctx, identity.Email)
	if err == nil {
		return p.issue(credential, identity.Name, identity.Picture, false)
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, errors.Wrap(err, "failed to look up credential")
	}

	now := p.now()
	credential = &entity.Credential{
		UserID:         uuid.NewString(),
		Email:          identity.Email,
		Provider:       entity.CredentialProviderGoogle,
		ProviderUserID: identity.Subject,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := p.credentials.Create(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) {
			return nil, service.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create google credential")
	}

	p.logger.Info("Account created from Google sign-in", slog.String("uid", credential.UserID))

	return p.issue(credential, identity.Name, identity.Picture, true)
}

// SendPasswordReset only checks the account exists; the local provider has no mail transport.
func (p *localProvider) SendPasswordReset(ctx context.Context, email string) error {
	credential, err := p.credentials.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return service.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to look up credential")
	}

	p.logger.Info("Password reset requested, no mail transport configured",
		slog.String("uid", credential.UserID))

	return nil
}

func (p *localProvider) SignOut(ctx context.Context, uid string) error {
	if _, err := p.credentials.BumpTokenVersion(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return service.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to revoke tokens")
	}

	return nil
}

func (p *localProvider) DeleteAccount(ctx context.Context, uid string) error {
	if err := p.credentials.Delete(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return service.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to delete credential")
	}

	p.logger.Info("Account deleted", slog.String("uid", uid))

	return nil
}

// VerifyToken rejects tokens issued before the user's last sign-out.
func (p *localProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	claims, err := p.tokens.Validate(token)
	if err != nil {
		return "", service.ErrInvalidToken
	}

	credential, err := p.credentials.FindByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", service.ErrInvalidToken
		}

		return "", errors.Wrap(err, "failed to look up credential")
	}

	if claims.Version != credential.TokenVersion {
		return "", service.ErrInvalidToken
	}

	return claims.UserID, nil
}

func (p *localProvider) issue(credential *entity.Credential, displayName, photoURL string, isNew bool) (*service.SignInResult, error) {
	token, expiresAt, err := p.tokens.Generate(credential.UserID, credential.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &service.SignInResult{
		UID:         credential.UserID,
		Email:       credential.Email,
		DisplayName: displayName,
		PhotoURL:    photoURL,
		Token:       token,
		ExpiresAt:   expiresAt,
		IsNewUser:   isNew,
	}, nil
}
