package sqlite

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("display_name ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	return toUserDomains(userModels), nil
}

func (repo *userRepository) FindOnline(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("is_online = ?", true).
		Order("display_name ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find online users")
	}

	return toUserDomains(userModels), nil
}

func (repo *userRepository) FindByDepartment(ctx context.Context, department string) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("department = ?", department).
		Order("display_name ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by department")
	}

	return toUserDomains(userModels), nil
}

func (repo *userRepository) Departments(ctx context.Context) ([]string, error) {
	var departments []string
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("department <> ''").
		Distinct().
		Order("department ASC").
		Pluck("department", &departments).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return departments, nil
}

// Upsert inserts the user or overwrites the row with the same ID.
// ON CONFLICT keeps the row in place, so membership rows survive the write.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Omit(clause.Associations).
		Create(userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	return nil
}

func (repo *userRepository) SetOnline(ctx context.Context, id string, online bool) error {
	return repo.updateColumns(ctx, id, map[string]any{"is_online": online}, "failed to update online status")
}

func (repo *userRepository) SetFCMToken(ctx context.Context, id, token string) error {
	return repo.updateColumns(ctx, id, map[string]any{"fcm_token": token}, "failed to update FCM token")
}

func (repo *userRepository) updateColumns(ctx context.Context, id string, values map[string]any, msg string) error {
	values["updated_at"] = time.Now().UnixMilli()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user. The members foreign key cascades.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---

func toUserDomains(models []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(models))
	for _, userM := range models {
		users = append(users, toUserDomain(userM))
	}

	return users
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	prefs := data.Preferences.Data()

	return &entity.User{
		ID:          data.ID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		Department:  data.Department,
		AvatarURL:   data.AvatarURL,
		IsOnline:    data.IsOnline,
		FCMToken:    data.FCMToken,
		Preferences: entity.UserPreferences{
			EnableNotifications: prefs.EnableNotifications,
			EnableVibration:     prefs.EnableVibration,
			EnableSound:         prefs.EnableSound,
			WorkingHours: entity.WorkingHours{
				StartTime:   prefs.WorkingHours.StartTime,
				EndTime:     prefs.WorkingHours.EndTime,
				WorkingDays: prefs.WorkingHours.WorkingDays,
			},
			MaxBreaksPerDay: prefs.MaxBreaksPerDay,
		},
		CreatedAt: fromMillis(data.CreatedAt),
		UpdatedAt: fromMillis(data.UpdatedAt),
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	prefs := data.Preferences
	workingDays := prefs.WorkingHours.WorkingDays
	if workingDays == nil {
		workingDays = []int{}
	}

	return &model.UserModel{
		ID:          data.ID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		Department:  data.Department,
		AvatarURL:   data.AvatarURL,
		IsOnline:    data.IsOnline,
		FCMToken:    data.FCMToken,
		Preferences: datatypes.NewJSONType(model.PreferencesData{
			EnableNotifications: prefs.EnableNotifications,
			EnableVibration:     prefs.EnableVibration,
			EnableSound:         prefs.EnableSound,
			WorkingHours: model.WorkingHoursData{
				StartTime:   prefs.WorkingHours.StartTime,
				EndTime:     prefs.WorkingHours.EndTime,
				WorkingDays: workingDays,
			},
			MaxBreaksPerDay: prefs.MaxBreaksPerDay,
		}),
		CreatedAt: toMillis(data.CreatedAt),
		UpdatedAt: toMillis(data.UpdatedAt),
	}
}
