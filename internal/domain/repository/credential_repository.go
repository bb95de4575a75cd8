package repository

import (
	"context"
	"errors"

	"smokebreak/internal/domain/entity"
)

var (
	// ErrCredentialNotFound is returned when no credential matches the lookup.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrDuplicateCredential is returned when the email or provider subject is already registered.
	ErrDuplicateCredential = errors.New("credential already exists")
)

// CredentialRepository stores sign-in methods for the local identity provider.
type CredentialRepository interface {
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	FindByUserID(ctx context.Context, userID string) (*entity.Credential, error)

	// FindByProviderUserID looks a credential up by the provider's subject, e.g. the Google 'sub' claim.
	FindByProviderUserID(ctx context.Context, provider, providerUserID string) (*entity.Credential, error)

	UpdatePasswordHash(ctx context.Context, userID, hash string) error

	// BumpTokenVersion invalidates every token issued so far and returns the new version.
	BumpTokenVersion(ctx context.Context, userID string) (int, error)

	Delete(ctx context.Context, userID string) error
}
