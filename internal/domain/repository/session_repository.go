package repository

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a break session is not found.
var ErrSessionNotFound = errors.New("break session not found")

// SessionRepository defines the local cache operations for break sessions.
// Sessions only live in the local store.
type SessionRepository interface {
	FindByID(ctx context.Context, id string) (*entity.BreakSession, error)
	FindByInvitation(ctx context.Context, invitationID string) (*entity.BreakSession, error)
	FindByGroup(ctx context.Context, groupID string) ([]*entity.BreakSession, error)
	FindByParticipant(ctx context.Context, userID string) ([]*entity.BreakSession, error)
	FindInRange(ctx context.Context, from, to time.Time) ([]*entity.BreakSession, error)
	FindByParticipantInRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.BreakSession, error)

	// AverageDuration is the mean actual duration of the user's sessions since from; 0 when none.
	AverageDuration(ctx context.Context, userID string, since time.Time) (float64, error)

	// AverageRating is the mean of the user's rated sessions; 0 when none.
	AverageRating(ctx context.Context, userID string) (float64, error)

	// TotalMinutes sums actual durations of the user's sessions since from.
	TotalMinutes(ctx context.Context, userID string, since time.Time) (int64, error)

	// CountByParticipantInRange counts the user's sessions created within [from, to).
	CountByParticipantInRange(ctx context.Context, userID string, from, to time.Time) (int64, error)

	// CountByGroupInRange counts a group's sessions created within [from, to).
	CountByGroupInRange(ctx context.Context, groupID string, from, to time.Time) (int64, error)

	// Create inserts a session, replacing any row with the same ID.
	Create(ctx context.Context, session *entity.BreakSession) error

	UpdateDuration(ctx context.Context, id string, minutes int, endTime time.Time) error
	UpdateRating(ctx context.Context, id string, rating int, feedback string) error
	Delete(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
