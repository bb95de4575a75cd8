package sqlite

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// FindWithMembersForUser lists the active groups in which userID holds an active membership.
func (repo *groupRepository) FindWithMembersForUser(ctx context.Context, userID string) ([]*entity.GroupWithMembers, error) {
	memberships := repo.db.
		Model(&model.MemberModel{}).
		Select("group_id").
		Where("user_id = ? AND is_active = ?", userID, true)

	var groupModels []*model.GroupModel
	if err := repo.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC")
		}).
		Where("id IN (?) AND is_active = ?", memberships, true).
		Order("name ASC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find groups for user")
	}

	groups := make([]*entity.GroupWithMembers, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupWithMembersDomain(groupM))
	}

	return groups, nil
}

func (repo *groupRepository) FindWithMembersByID(ctx context.Context, id string) (*entity.GroupWithMembers, error) {
	var groupM model.GroupModel

	if err := repo.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC")
		}).
		Where("id = ?", id).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group with members")
	}

	return toGroupWithMembersDomain(&groupM), nil
}

// UpsertWithMembers writes the group row and makes its member rows equal to group.Members.
// Every member's user must already be cached.
func (repo *groupRepository) UpsertWithMembers(ctx context.Context, group *entity.GroupWithMembers) error {
	if err := repo.Upsert(ctx, &group.Group); err != nil {
		return err
	}

	keep := make([]string, 0, len(group.Members))
	for i := range group.Members {
		member := group.Members[i]
		member.GroupID = group.Group.ID
		if err := NewMemberRepository(repo.db).Upsert(ctx, &member); err != nil {
			return err
		}
		keep = append(keep, member.UserID)
	}

	stale := repo.db.WithContext(ctx).Where("group_id = ?", group.Group.ID)
	if len(keep) > 0 {
		stale = stale.Where("user_id NOT IN ?", keep)
	}
	if err := stale.Delete(&model.MemberModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove stale members")
	}

	return nil
}

// Upsert writes the group row only. ON CONFLICT keeps the row in place so members are not cascaded away.
func (repo *groupRepository) Upsert(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Omit(clause.Associations).
		Create(groupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateInviteCode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required group information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert group")
	}

	return nil
}

func (repo *groupRepository) FindByID(ctx context.Context, id string) (*entity.Group, error) {
	var groupM model.GroupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by id")
	}

	return toGroupDomain(&groupM), nil
}

func (repo *groupRepository) FindActive(ctx context.Context) ([]*entity.Group, error) {
	return repo.findGroups(ctx, "failed to find active groups", "is_active = ?", true)
}

func (repo *groupRepository) FindPublic(ctx context.Context) ([]*entity.Group, error) {
	return repo.findGroups(ctx, "failed to find public groups", "is_public = ? AND is_active = ?", true, true)
}

func (repo *groupRepository) FindCreatedBy(ctx context.Context, userID string) ([]*entity.Group, error) {
	return repo.findGroups(ctx, "failed to find groups by creator", "created_by = ? AND is_active = ?", userID, true)
}

func (repo *groupRepository) SearchByName(ctx context.Context, query string) ([]*entity.Group, error) {
	return repo.findGroups(ctx, "failed to search groups",
		"name LIKE ? ESCAPE '\\' AND is_active = ?", "%"+escapeLike(query)+"%", true)
}

func (repo *groupRepository) findGroups(ctx context.Context, msg string, cond string, args ...any) ([]*entity.Group, error) {
	var groupModels []*model.GroupModel
	if err := repo.db.WithContext(ctx).
		Where(cond, args...).
		Order("name ASC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	groups := make([]*entity.Group, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups, nil
}

func (repo *groupRepository) FindByInviteCode(ctx context.Context, code string) (*entity.Group, error) {
	var groupM model.GroupModel

	if err := repo.db.WithContext(ctx).
		Where("invite_code = ? AND is_active = ?", code, true).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by invite code")
	}

	return toGroupDomain(&groupM), nil
}

// Deactivate clears the active flag. Member rows are kept.
func (repo *groupRepository) Deactivate(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate group")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// Delete removes the group. The members foreign key cascades.
func (repo *groupRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GroupModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete group")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

func (repo *groupRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active groups")
	}

	return count, nil
}

// --- Mapper Functions ---

func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	return &entity.Group{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IsPublic:    data.IsPublic,
		CreatedBy:   data.CreatedBy,
		InviteCode:  data.InviteCode,
		MaxMembers:  data.MaxMembers,
		IsActive:    data.IsActive,
		CreatedAt:   fromMillis(data.CreatedAt),
		UpdatedAt:   fromMillis(data.UpdatedAt),
	}
}

func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	return &model.GroupModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IsPublic:    data.IsPublic,
		CreatedBy:   data.CreatedBy,
		InviteCode:  data.InviteCode,
		MaxMembers:  data.MaxMembers,
		IsActive:    data.IsActive,
		CreatedAt:   toMillis(data.CreatedAt),
		UpdatedAt:   toMillis(data.UpdatedAt),
	}
}

func toGroupWithMembersDomain(data *model.GroupModel) *entity.GroupWithMembers {
	members := make([]entity.Member, 0, len(data.Members))
	for i := range data.Members {
		members = append(members, *toMemberDomain(&data.Members[i]))
	}

	return &entity.GroupWithMembers{
		Group:   *toGroupDomain(data),
		Members: members,
	}
}
