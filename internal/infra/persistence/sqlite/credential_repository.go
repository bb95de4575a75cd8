package sqlite

import (
	"context"
	"strings"
	"time"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// Create persists a new credential. Emails are stored lowercased.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCredential
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	return nil
}

func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	return repo.first(ctx, "failed to find credential by email", "email = ?", strings.ToLower(email))
}

func (repo *credentialRepository) FindByUserID(ctx context.Context, userID string) (*entity.Credential, error) {
	return repo.first(ctx, "failed to find credential by user", "user_id = ?", userID)
}

func (repo *credentialRepository) FindByProviderUserID(ctx context.Context, provider, providerUserID string) (*entity.Credential, error) {
	return repo.first(ctx, "failed to find credential by provider subject",
		"provider = ? AND provider_user_id = ?", provider, providerUserID)
}

func (repo *credentialRepository) first(ctx context.Context, msg, cond string, args ...any) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where(cond, args...).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toCredentialDomain(&credentialM), nil
}

func (repo *credentialRepository) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"password_hash": hash,
			"updated_at":    time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password hash")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// BumpTokenVersion increments token_version so tokens carrying the old version stop verifying.
func (repo *credentialRepository) BumpTokenVersion(ctx context.Context, userID string) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"token_version": gorm.Expr("token_version + 1"),
			"updated_at":    time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to bump token version")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrCredentialNotFound
	}

	credential, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return credential.TokenVersion, nil
}

func (repo *credentialRepository) Delete(ctx context.Context, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CredentialModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete credential")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		UserID:         data.UserID,
		Email:          data.Email,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		TokenVersion:   data.TokenVersion,
		CreatedAt:      fromMillis(data.CreatedAt),
		UpdatedAt:      fromMillis(data.UpdatedAt),
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		UserID:         data.UserID,
		Email:          strings.ToLower(data.Email),
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		TokenVersion:   data.TokenVersion,
		CreatedAt:      toMillis(data.CreatedAt),
		UpdatedAt:      toMillis(data.UpdatedAt),
	}
}
