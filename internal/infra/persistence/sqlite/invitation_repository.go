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

const invitationUpsertBatchSize = 100

// invitationRepository implements the repository.InvitationRepository interface.
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{
		db: db,
	}
}

func (repo *invitationRepository) FindByID(ctx context.Context, id string) (*entity.BreakInvitation, error) {
	var invitationM model.BreakInvitationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by id")
	}

	return toInvitationDomain(&invitationM), nil
}

func (repo *invitationRepository) FindByGroup(ctx context.Context, groupID string) ([]*entity.BreakInvitation, error) {
	return repo.findInvitations(ctx, "failed to find invitations by group", "group_id = ?", groupID)
}

func (repo *invitationRepository) FindByInitiator(ctx context.Context, userID string) ([]*entity.BreakInvitation, error) {
	return repo.findInvitations(ctx, "failed to find invitations by initiator", "initiator_user_id = ?", userID)
}

func (repo *invitationRepository) FindByStatus(ctx context.Context, status entity.BreakInvitationStatus) ([]*entity.BreakInvitation, error) {
	return repo.findInvitations(ctx, "failed to find invitations by status", "status = ?", string(status))
}

func (repo *invitationRepository) FindActive(ctx context.Context, now time.Time) ([]*entity.BreakInvitation, error) {
	return repo.findInvitations(ctx, "failed to find active invitations",
		"status = ? AND expires_at > ?", string(entity.InvitationPending), now.UnixMilli())
}

func (repo *invitationRepository) FindActiveForGroups(ctx context.Context, groupIDs []string, now time.Time) ([]*entity.BreakInvitation, error) {
	if len(groupIDs) == 0 {
		return []*entity.BreakInvitation{}, nil
	}

	return repo.findInvitations(ctx, "failed to find active invitations for groups",
		"group_id IN ? AND status = ? AND expires_at > ?", groupIDs, string(entity.InvitationPending), now.UnixMilli())
}

func (repo *invitationRepository) FindInRange(ctx context.Context, from, to time.Time) ([]*entity.BreakInvitation, error) {
	return repo.findInvitations(ctx, "failed to find invitations in range",
		"created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli())
}

func (repo *invitationRepository) FindByInitiatorInRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.BreakInvitation, error) {
	return repo.findInvitations(ctx, "failed to find invitations of initiator in range",
		"initiator_user_id = ? AND created_at BETWEEN ? AND ?", userID, from.UnixMilli(), to.UnixMilli())
}

func (repo *invitationRepository) findInvitations(ctx context.Context, msg, cond string, args ...any) ([]*entity.BreakInvitation, error) {
	var invitationModels []*model.BreakInvitationModel
	if err := repo.db.WithContext(ctx).
		Where(cond, args...).
		Order("created_at DESC").
		Find(&invitationModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	invitations := make([]*entity.BreakInvitation, 0, len(invitationModels))
	for _, invitationM := range invitationModels {
		invitations = append(invitations, toInvitationDomain(invitationM))
	}

	return invitations, nil
}

// Upsert writes the whole invitation. ON CONFLICT keeps the row, so sessions referencing it stay.
func (repo *invitationRepository) Upsert(ctx context.Context, invitation *entity.BreakInvitation) error {
	return repo.UpsertMany(ctx, []*entity.BreakInvitation{invitation})
}

func (repo *invitationRepository) UpsertMany(ctx context.Context, invitations []*entity.BreakInvitation) error {
	if len(invitations) == 0 {
		return nil
	}

	invitationModels := make([]*model.BreakInvitationModel, 0, len(invitations))
	for _, invitation := range invitations {
		invitationModels = append(invitationModels, fromInvitationDomain(invitation))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(invitationModels, invitationUpsertBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required invitation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert invitations")
	}

	return nil
}

func (repo *invitationRepository) UpdateStatus(ctx context.Context, id string, status entity.BreakInvitationStatus, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BreakInvitationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": at.UnixMilli(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update invitation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvitationNotFound
	}

	return nil
}

// ExpirePending moves PENDING invitations whose expiry is at or before now to EXPIRED.
// No other status is touched.
func (repo *invitationRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BreakInvitationModel{}).
		Where("status = ? AND expires_at <= ?", string(entity.InvitationPending), now.UnixMilli()).
		Updates(map[string]any{
			"status":     string(entity.InvitationExpired),
			"updated_at": now.UnixMilli(),
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to expire pending invitations")
	}

	return result.RowsAffected, nil
}

// Delete removes the invitation. Its sessions cascade.
func (repo *invitationRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BreakInvitationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete invitation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvitationNotFound
	}

	return nil
}

func (repo *invitationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	// Sessions cascade from their invitation, so an invitation with a recent session stays.
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff.UnixMilli()).
		Where("NOT EXISTS (SELECT 1 FROM break_sessions WHERE break_sessions.invitation_id = break_invitations.id AND break_sessions.created_at >= ?)",
			cutoff.UnixMilli()).
		Delete(&model.BreakInvitationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old invitations")
	}

	return result.RowsAffected, nil
}

func (repo *invitationRepository) CountByInitiatorInRange(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	return repo.count(ctx, "failed to count invitations of initiator",
		"initiator_user_id = ? AND created_at >= ? AND created_at < ?", userID, from.UnixMilli(), to.UnixMilli())
}

func (repo *invitationRepository) CountByGroupInRange(ctx context.Context, groupID string, from, to time.Time) (int64, error) {
	return repo.count(ctx, "failed to count invitations of group",
		"group_id = ? AND created_at >= ? AND created_at < ?", groupID, from.UnixMilli(), to.UnixMilli())
}

func (repo *invitationRepository) count(ctx context.Context, msg, cond string, args ...any) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BreakInvitationModel{}).
		Where(cond, args...).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, msg)
	}

	return count, nil
}

// --- Mapper Functions ---

func toInvitationDomain(data *model.BreakInvitationModel) *entity.BreakInvitation {
	if data == nil {
		return nil
	}

	responses := make([]entity.BreakResponse, 0, len(data.Responses))
	for _, r := range data.Responses {
		responses = append(responses, entity.BreakResponse{
			UserID:        r.UserID,
			UserName:      r.UserName,
			Response:      entity.ResponseType(r.Response),
			Reason:        entity.DeclineReason(r.Reason),
			CustomMessage: r.CustomMessage,
			RespondedAt:   fromMillis(r.RespondedAt),
			ResponseTime:  r.ResponseTime,
		})
	}

	return &entity.BreakInvitation{
		ID:              data.ID,
		GroupID:         data.GroupID,
		InitiatorUserID: data.InitiatorUserID,
		InitiatorName:   data.InitiatorName,
		Message:         data.Message,
		Location:        data.Location,
		PlannedDuration: data.PlannedDuration,
		Responses:       responses,
		Status:          entity.BreakInvitationStatus(data.Status),
		ExpiresAt:       fromMillis(data.ExpiresAt),
		CreatedAt:       fromMillis(data.CreatedAt),
		UpdatedAt:       fromMillis(data.UpdatedAt),
	}
}

func fromInvitationDomain(data *entity.BreakInvitation) *model.BreakInvitationModel {
	if data == nil {
		return nil
	}

	responses := make([]model.ResponseData, 0, len(data.Responses))
	for _, r := range data.Responses {
		responses = append(responses, model.ResponseData{
			UserID:        r.UserID,
			UserName:      r.UserName,
			Response:      string(r.Response),
			Reason:        string(r.Reason),
			CustomMessage: r.CustomMessage,
			RespondedAt:   toMillis(r.RespondedAt),
			ResponseTime:  r.ResponseTime,
		})
	}

	return &model.BreakInvitationModel{
		ID:              data.ID,
		GroupID:         data.GroupID,
		InitiatorUserID: data.InitiatorUserID,
		InitiatorName:   data.InitiatorName,
		Message:         data.Message,
		Location:        data.Location,
		PlannedDuration: data.PlannedDuration,
		Status:          string(data.Status),
		ExpiresAt:       toMillis(data.ExpiresAt),
		CreatedAt:       toMillis(data.CreatedAt),
		UpdatedAt:       toMillis(data.UpdatedAt),
		Responses:       datatypes.NewJSONSlice(responses),
	}
}
