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

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// participantPattern matches one element of the JSON-encoded participant_ids array.
func participantPattern(userID string) string {
	return `%"` + escapeLike(userID) + `"%`
}

const participantCond = `participant_ids LIKE ? ESCAPE '\'`

func (repo *sessionRepository) FindByID(ctx context.Context, id string) (*entity.BreakSession, error) {
	return repo.first(ctx, "failed to find session by id", "id = ?", id)
}

func (repo *sessionRepository) FindByInvitation(ctx context.Context, invitationID string) (*entity.BreakSession, error) {
	return repo.first(ctx, "failed to find session by invitation", "invitation_id = ?", invitationID)
}

func (repo *sessionRepository) first(ctx context.Context, msg, cond string, args ...any) (*entity.BreakSession, error) {
	var sessionM model.BreakSessionModel

	if err := repo.db.WithContext(ctx).
		Where(cond, args...).
		Order("created_at DESC").
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) FindByGroup(ctx context.Context, groupID string) ([]*entity.BreakSession, error) {
	return repo.findSessions(ctx, "failed to find sessions by group", "group_id = ?", groupID)
}

func (repo *sessionRepository) FindByParticipant(ctx context.Context, userID string) ([]*entity.BreakSession, error) {
	return repo.findSessions(ctx, "failed to find sessions by participant", participantCond, participantPattern(userID))
}

func (repo *sessionRepository) FindInRange(ctx context.Context, from, to time.Time) ([]*entity.BreakSession, error) {
	return repo.findSessions(ctx, "failed to find sessions in range",
		"created_at BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli())
}

func (repo *sessionRepository) FindByParticipantInRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.BreakSession, error) {
	return repo.findSessions(ctx, "failed to find sessions of participant in range",
		participantCond+" AND created_at BETWEEN ? AND ?", participantPattern(userID), from.UnixMilli(), to.UnixMilli())
}

func (repo *sessionRepository) findSessions(ctx context.Context, msg, cond string, args ...any) ([]*entity.BreakSession, error) {
	var sessionModels []*model.BreakSessionModel
	if err := repo.db.WithContext(ctx).
		Where(cond, args...).
		Order("created_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	sessions := make([]*entity.BreakSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// AverageDuration averages sessions with a recorded duration.
func (repo *sessionRepository) AverageDuration(ctx context.Context, userID string, since time.Time) (float64, error) {
	var avg float64
	if err := repo.db.WithContext(ctx).
		Model(&model.BreakSessionModel{}).
		Select("COALESCE(AVG(actual_duration), 0)").
		Where(participantCond+" AND actual_duration > 0 AND created_at >= ?", participantPattern(userID), since.UnixMilli()).
		Scan(&avg).Error; err != nil {
		return 0, errors.Wrap(err, "failed to average session duration")
	}

	return avg, nil
}

func (repo *sessionRepository) AverageRating(ctx context.Context, userID string) (float64, error) {
	var avg float64
	if err := repo.db.WithContext(ctx).
		Model(&model.BreakSessionModel{}).
		Select("COALESCE(AVG(rating), 0)").
		Where(participantCond+" AND rating > 0", participantPattern(userID)).
		Scan(&avg).Error; err != nil {
		return 0, errors.Wrap(err, "failed to average session rating")
	}

	return avg, nil
}

func (repo *sessionRepository) TotalMinutes(ctx context.Context, userID string, since time.Time) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BreakSessionModel{}).
		Select("COALESCE(SUM(actual_duration), 0)").
		Where(participantCond+" AND created_at >= ?", participantPattern(userID), since.UnixMilli()).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum session minutes")
	}

	return total, nil
}

func (repo *sessionRepository) CountByParticipantInRange(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	return repo.count(ctx, "failed to count sessions of participant",
		participantCond+" AND created_at >= ? AND created_at < ?", participantPattern(userID), from.UnixMilli(), to.UnixMilli())
}

func (repo *sessionRepository) CountByGroupInRange(ctx context.Context, groupID string, from, to time.Time) (int64, error) {
	return repo.count(ctx, "failed to count sessions of group",
		"group_id = ? AND created_at >= ? AND created_at < ?", groupID, from.UnixMilli(), to.UnixMilli())
}

func (repo *sessionRepository) count(ctx context.Context, msg, cond string, args ...any) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BreakSessionModel{}).
		Where(cond, args...).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, msg)
	}

	return count, nil
}

// Create inserts the session, overwriting a row with the same ID.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.BreakSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvitationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

func (repo *sessionRepository) UpdateDuration(ctx context.Context, id string, minutes int, endTime time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"actual_duration": minutes,
		"end_time":        toMillis(endTime),
	}, "failed to update session duration")
}

func (repo *sessionRepository) UpdateRating(ctx context.Context, id string, rating int, feedback string) error {
	return repo.update(ctx, id, map[string]any{
		"rating":   rating,
		"feedback": feedback,
	}, "failed to update session rating")
}

func (repo *sessionRepository) update(ctx context.Context, id string, values map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BreakSessionModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BreakSessionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff.UnixMilli()).
		Delete(&model.BreakSessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old sessions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.BreakSessionModel) *entity.BreakSession {
	if data == nil {
		return nil
	}

	participants := make([]string, 0, len(data.ParticipantIDs))
	participants = append(participants, data.ParticipantIDs...)

	return &entity.BreakSession{
		ID:             data.ID,
		InvitationID:   data.InvitationID,
		GroupID:        data.GroupID,
		ParticipantIDs: participants,
		ActualDuration: data.ActualDuration,
		StartTime:      fromMillis(data.StartTime),
		EndTime:        fromMillis(data.EndTime),
		Location:       data.Location,
		Rating:         data.Rating,
		Feedback:       data.Feedback,
		CreatedAt:      fromMillis(data.CreatedAt),
	}
}

func fromSessionDomain(data *entity.BreakSession) *model.BreakSessionModel {
	if data == nil {
		return nil
	}

	participants := data.ParticipantIDs
	if participants == nil {
		participants = []string{}
	}

	return &model.BreakSessionModel{
		ID:             data.ID,
		InvitationID:   data.InvitationID,
		GroupID:        data.GroupID,
		ActualDuration: data.ActualDuration,
		StartTime:      toMillis(data.StartTime),
		EndTime:        toMillis(data.EndTime),
		Location:       data.Location,
		Rating:         data.Rating,
		Feedback:       data.Feedback,
		CreatedAt:      toMillis(data.CreatedAt),
		ParticipantIDs: datatypes.NewJSONSlice(participants),
	}
}
