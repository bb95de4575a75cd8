package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smokebreak/config"
	deliverycontext "smokebreak/internal/delivery/context"
	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager      repository.TransactionManager
	sessionRepo    repository.SessionRepository
	invitationRepo repository.InvitationRepository
	userRepo       repository.UserRepository
	clock          service.Clock
	location       *time.Location
	logger         *slog.Logger

	members membershipChecker
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Config         *config.Config
	TxManager      repository.TransactionManager
	SessionRepo    repository.SessionRepository
	InvitationRepo repository.InvitationRepository
	UserRepo       repository.UserRepository
	MemberRepo     repository.MemberRepository
	RemoteMembers  repository.RemoteMemberStore
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewSessionService creates a new break session service.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	location := time.Local
	if params.Config != nil && params.Config.Invitation != nil {
		location = params.Config.Invitation.Location()
	}

	return &sessionService{
		txManager:      params.TxManager,
		sessionRepo:    params.SessionRepo,
		invitationRepo: params.InvitationRepo,
		userRepo:       params.UserRepo,
		clock:          params.Clock,
		location:       location,
		logger:         params.Logger,
		members:        membershipChecker{remote: params.RemoteMembers, local: params.MemberRepo},
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Get(ctx context.Context, sessionID string) (*entity.BreakSession, error) {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)

	return session, sessionError(err, "failed to get session")
}

func (srv *sessionService) ByInvitation(ctx context.Context, invitationID string) (*entity.BreakSession, error) {
	session, err := srv.sessionRepo.FindByInvitation(ctx, invitationID)

	return session, sessionError(err, "failed to get session by invitation")
}

func (srv *sessionService) ForGroup(ctx context.Context, userID, groupID string) ([]*entity.BreakSession, error) {
	if _, err := srv.members.require(ctx, groupID, userID); err != nil {
		return nil, err
	}

	sessions, err := srv.sessionRepo.FindByGroup(ctx, groupID)

	return sessions, errors.Wrap(err, "failed to list group sessions")
}

func (srv *sessionService) ForUser(ctx context.Context, userID string) ([]*entity.BreakSession, error) {
	sessions, err := srv.sessionRepo.FindByParticipant(ctx, userID)

	return sessions, errors.Wrap(err, "failed to list user sessions")
}

func (srv *sessionService) InDateRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.BreakSession, error) {
	if to.Before(from) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("range end precedes its start")
	}

	sessions, err := srv.sessionRepo.FindByParticipantInRange(ctx, userID, from, to)

	return sessions, errors.Wrap(err, "failed to list sessions in range")
}

func (srv *sessionService) UpdateDuration(ctx context.Context, userID, sessionID string, minutes int) (*entity.BreakSession, error) {
	if minutes < 1 || minutes > maxActualDuration {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("duration must be between 1 and 1440 minutes")
	}

	session, err := srv.participantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.ActualDuration = minutes
	session.EndTime = session.StartTime.Add(time.Duration(minutes) * time.Minute)

	if err := srv.sessionRepo.UpdateDuration(ctx, sessionID, minutes, session.EndTime); err != nil {
		return nil, sessionError(err, "failed to update session duration")
	}

	return session, nil
}

func (srv *sessionService) Rate(ctx context.Context, userID, sessionID string, rating int, feedback string) (*entity.BreakSession, error) {
	if rating < entity.MinRating || rating > entity.MaxRating {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	session, err := srv.participantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.Rating = rating
	session.Feedback = feedback

	if err := srv.sessionRepo.UpdateRating(ctx, sessionID, rating, feedback); err != nil {
		return nil, sessionError(err, "failed to rate session")
	}

	return session, nil
}

func (srv *sessionService) participantSession(ctx context.Context, userID, sessionID string) (*entity.BreakSession, error) {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err, "failed to load session")
	}

	if !session.HasParticipant(userID) {
		return nil, domainerrors.ErrNotSessionParticipant
	}

	return session, nil
}

// Analytics aggregates the user's break history. Weeks start on Monday in the configured zone.
func (srv *sessionService) Analytics(ctx context.Context, userID string) (*entity.UserAnalytics, error) {
	now := srv.clock.Now()
	dayStart, dayEnd := dayBounds(now, srv.location)
	weekStart := dayStart.AddDate(0, 0, 1-entity.IsoWeekday(dayStart))
	monthStart := time.Date(dayStart.Year(), dayStart.Month(), 1, 0, 0, 0, 0, srv.location)
	epoch := time.Unix(0, 0)

	analytics := &entity.UserAnalytics{UserID: userID}

	counters := []struct {
		dst *int64
		fn  func() (int64, error)
	}{
		{&analytics.TodaySessions, func() (int64, error) {
			return srv.sessionRepo.CountByParticipantInRange(ctx, userID, dayStart, dayEnd)
		}},
		{&analytics.TodayInvitationsSent, func() (int64, error) {
			return srv.invitationRepo.CountByInitiatorInRange(ctx, userID, dayStart, dayEnd)
		}},
		{&analytics.WeeklyInvitations, func() (int64, error) {
			return srv.invitationRepo.CountByInitiatorInRange(ctx, userID, weekStart, dayEnd)
		}},
		{&analytics.MonthlyInvitations, func() (int64, error) {
			return srv.invitationRepo.CountByInitiatorInRange(ctx, userID, monthStart, dayEnd)
		}},
		{&analytics.TotalSessions, func() (int64, error) {
			return srv.sessionRepo.CountByParticipantInRange(ctx, userID, epoch, dayEnd)
		}},
		{&analytics.TotalBreakMinutes, func() (int64, error) {
			return srv.sessionRepo.TotalMinutes(ctx, userID, epoch)
		}},
	}
	for _, c := range counters {
		value, err := c.fn()
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute analytics")
		}
		*c.dst = value
	}

	var err error
	if analytics.AverageDuration, err = srv.sessionRepo.AverageDuration(ctx, userID, epoch); err != nil {
		return nil, errors.Wrap(err, "failed to compute analytics")
	}
	if analytics.AverageRating, err = srv.sessionRepo.AverageRating(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to compute analytics")
	}

	analytics.TotalBreakTime = formatMinutes(analytics.TotalBreakMinutes)
	analytics.RemainingBreaksToday = -1

	user, err := srv.userRepo.FindByID(ctx, userID)
	switch {
	case err == nil:
		if limit := user.Preferences.MaxBreaksPerDay; limit > 0 {
			analytics.RemainingBreaksToday = max(limit-int(analytics.TodayInvitationsSent), 0)
		}
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to load user preferences")
	}

	return analytics, nil
}

// Prune deletes sessions and invitations created before now minus retention.
// An old invitation whose session is still inside the window is kept with it.
func (srv *sessionService) Prune(ctx context.Context, retention time.Duration) (int64, int64, error) {
	if retention <= 0 {
		return 0, 0, domainerrors.ErrValidationFailed.WrapMessage("retention must be positive")
	}

	cutoff := srv.clock.Now().Add(-retention)

	var invitations, sessions int64
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		if sessions, err = factory.NewSessionRepository().DeleteOlderThan(ctx, cutoff); err != nil {
			return errors.Wrap(err, "failed to prune sessions")
		}
		if invitations, err = factory.NewInvitationRepository().DeleteOlderThan(ctx, cutoff); err != nil {
			return errors.Wrap(err, "failed to prune invitations")
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	srv.log(ctx).Info("Pruned break history",
		slog.Time("cutoff", cutoff),
		slog.Int64("invitations", invitations),
		slog.Int64("sessions", sessions),
	)

	return invitations, sessions, nil
}

func sessionError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrSessionNotFound) {
		return domainerrors.ErrSessionNotFound
	}

	return errors.Wrap(err, msg)
}

// formatMinutes renders 135 as "2h 15m" and 45 as "45m".
func formatMinutes(total int64) string {
	hours, minutes := total/60, total%60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}

	return fmt.Sprintf("%dh %dm", hours, minutes)
}
