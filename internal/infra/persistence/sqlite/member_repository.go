package sqlite

import (
	"context"
	"strings"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

func (repo *memberRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Member, error) {
	return repo.findMembers(ctx, "failed to find members by user", "user_id = ?", userID)
}

func (repo *memberRepository) FindByGroup(ctx context.Context, groupID string) ([]*entity.Member, error) {
	return repo.findMembers(ctx, "failed to find members by group", "group_id = ?", groupID)
}

func (repo *memberRepository) findMembers(ctx context.Context, msg, cond string, args ...any) ([]*entity.Member, error) {
	var memberModels []*model.MemberModel
	if err := repo.db.WithContext(ctx).
		Where(cond, args...).
		Order("joined_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	members := make([]*entity.Member, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}

func (repo *memberRepository) Find(ctx context.Context, userID, groupID string) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	return toMemberDomain(&memberM), nil
}

// Upsert inserts or overwrites the membership. The user and group rows must exist.
func (repo *memberRepository) Upsert(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "group_id"}},
			UpdateAll: true,
		}).
		Create(memberM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMemberReferenceMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert member")
	}

	return nil
}

func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("user_id = ? AND group_id = ?", member.UserID, member.GroupID).
		Updates(map[string]any{
			"role":      string(member.Role),
			"is_active": member.IsActive,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func (repo *memberRepository) Delete(ctx context.Context, userID, groupID string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&model.MemberModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func (repo *memberRepository) DeleteByUser(ctx context.Context, userID string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.MemberModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete memberships of user")
	}

	return nil
}

func (repo *memberRepository) CountActiveByGroup(ctx context.Context, groupID string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("group_id = ? AND is_active = ?", groupID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active members")
	}

	return count, nil
}

// --- Mapper Functions ---

func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		UserID:   data.UserID,
		GroupID:  data.GroupID,
		Role:     entity.GroupRole(data.Role),
		JoinedAt: fromMillis(data.JoinedAt),
		IsActive: data.IsActive,
	}
}

func fromMemberDomain(data *entity.Member) *model.MemberModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.GroupRoleMember
	}

	return &model.MemberModel{
		UserID:   data.UserID,
		GroupID:  data.GroupID,
		Role:     string(role),
		JoinedAt: toMillis(data.JoinedAt),
		IsActive: data.IsActive,
	}
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
