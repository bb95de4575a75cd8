package sqlite

import (
	"context"
	"testing"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_CreateAndFind(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()
	repo := NewCredentialRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.Credential{
		UserID:       "u1",
		Email:        "Alice@Example.com",
		Provider:     entity.CredentialProviderEmail,
		PasswordHash: "hash",
		CreatedAt:    baseTime,
		UpdatedAt:    baseTime,
	}))

	found, err := repo.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.UserID)
	assert.Equal(t, "alice@example.com", found.Email)

	err = repo.Create(ctx, &entity.Credential{
		UserID:   "u2",
		Email:    "alice@example.com",
		Provider: entity.CredentialProviderEmail,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateCredential)

	_, err = repo.FindByUserID(ctx, "u2")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestCredentialRepository_TokenVersionAndPassword(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()
	repo := NewCredentialRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.Credential{
		UserID:         "u1",
		Email:          "bob@example.com",
		Provider:       entity.CredentialProviderGoogle,
		ProviderUserID: "google-sub-1",
	}))

	version, err := repo.BumpTokenVersion(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	version, err = repo.BumpTokenVersion(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	require.NoError(t, repo.UpdatePasswordHash(ctx, "u1", "new-hash"))

	found, err := repo.FindByProviderUserID(ctx, entity.CredentialProviderGoogle, "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.PasswordHash)
	assert.Equal(t, 2, found.TokenVersion)

	require.NoError(t, repo.Delete(ctx, "u1"))
	_, err = repo.BumpTokenVersion(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}
