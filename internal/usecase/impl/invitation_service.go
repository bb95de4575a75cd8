package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"smokebreak/config"
	deliverycontext "smokebreak/internal/delivery/context"
	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxPlannedDuration = 240
	maxActualDuration  = 24 * 60
	maxMessageLength   = 500
)

// invitationService implements the InvitationUsecase interface.
type invitationService struct {
	txManager         repository.TransactionManager
	invitationRepo    repository.InvitationRepository
	groupRepo         repository.GroupRepository
	memberRepo        repository.MemberRepository
	userRepo          repository.UserRepository
	remoteInvitations repository.RemoteInvitationStore
	remoteGroups      repository.RemoteGroupStore
	remoteUsers       repository.RemoteUserStore
	publisher         service.EventPublisher
	clock             service.Clock
	expiryWindow      time.Duration
	retention         time.Duration
	location          *time.Location
	logger            *slog.Logger

	members membershipChecker
}

// InvitationServiceParams holds dependencies for InvitationService, injected by Fx.
type InvitationServiceParams struct {
	fx.In

	Config            *config.Config
	TxManager         repository.TransactionManager
	InvitationRepo    repository.InvitationRepository
	GroupRepo         repository.GroupRepository
	MemberRepo        repository.MemberRepository
	UserRepo          repository.UserRepository
	RemoteInvitations repository.RemoteInvitationStore
	RemoteGroups      repository.RemoteGroupStore
	RemoteMembers     repository.RemoteMemberStore
	RemoteUsers       repository.RemoteUserStore
	Publisher         service.EventPublisher
	Clock             service.Clock
	Logger            *slog.Logger
}

// NewInvitationService creates a new break invitation service.
func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	expiryWindow := 10 * time.Minute
	var location *time.Location
	if params.Config != nil && params.Config.Invitation != nil {
		if params.Config.Invitation.ExpiryWindow > 0 {
			expiryWindow = params.Config.Invitation.ExpiryWindow
		}
		location = params.Config.Invitation.Location()
	}
	var retention time.Duration
	if params.Config != nil && params.Config.Scheduler != nil {
		retention = params.Config.Scheduler.Retention
	}
	if location == nil {
		location = time.Local
	}

	return &invitationService{
		txManager:         params.TxManager,
		invitationRepo:    params.InvitationRepo,
		groupRepo:         params.GroupRepo,
		memberRepo:        params.MemberRepo,
		userRepo:          params.UserRepo,
		remoteInvitations: params.RemoteInvitations,
		remoteGroups:      params.RemoteGroups,
		remoteUsers:       params.RemoteUsers,
		publisher:         params.Publisher,
		clock:             params.Clock,
		expiryWindow:      expiryWindow,
		retention:         retention,
		location:          location,
		logger:            params.Logger,
		members:           membershipChecker{remote: params.RemoteMembers, local: params.MemberRepo},
	}
}

func (srv *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *invitationService) Create(ctx context.Context, userID string, input *usecase.CreateInvitationInput) (*entity.BreakInvitation, error) {
	if input.GroupID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("group id is required")
	}

	planned := input.PlannedDuration
	if planned == 0 {
		planned = entity.DefaultPlannedDuration
	}
	if planned < 1 || planned > maxPlannedDuration {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("planned duration must be between 1 and 240 minutes")
	}

	message := strings.TrimSpace(input.Message)
	if len(message) > maxMessageLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message is too long")
	}

	if _, err := srv.members.require(ctx, input.GroupID, userID); err != nil {
		return nil, err
	}

	group, err := srv.loadGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.IsActive {
		return nil, domainerrors.ErrGroupInactive
	}

	initiator, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if limit := initiator.Preferences.MaxBreaksPerDay; limit > 0 {
		count, err := srv.CountToday(ctx, userID)
		if err != nil {
			return nil, err
		}
		if count >= int64(limit) {
			return nil, domainerrors.ErrDailyBreakLimit.WithDetails(fmt.Sprintf("%d of %d breaks used today", count, limit))
		}
	}

	now := srv.clock.Now()
	invitation := &entity.BreakInvitation{
		ID:              uuid.NewString(),
		GroupID:         group.ID,
		InitiatorUserID: userID,
		InitiatorName:   initiator.DisplayName,
		Message:         message,
		Location:        strings.TrimSpace(input.Location),
		PlannedDuration: planned,
		Responses:       []entity.BreakResponse{},
		Status:          entity.InvitationPending,
		ExpiresAt:       now.Add(srv.expiryWindow),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.save(ctx, invitation); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Break invitation created",
		slog.String("invitation_id", invitation.ID),
		slog.String("group_id", group.ID),
		slog.String("initiator_id", userID),
	)

	event := srv.newEvent(ctx, service.InvitationEventCreated, invitation)
	event.GroupName = group.Name
	srv.publish(ctx, event)

	return invitation, nil
}

// Respond upserts the caller's entry and rewrites the whole document. Concurrent answers are last write wins.
func (srv *invitationService) Respond(ctx context.Context, userID string, input *usecase.RespondInput) (*entity.BreakInvitation, error) {
	if !input.Response.IsAnswer() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("response must be ACCEPTED, DECLINED or MAYBE")
	}
	if !input.Reason.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown decline reason")
	}

	invitation, err := srv.remoteInvitations.Get(ctx, input.InvitationID)
	if err != nil {
		return nil, remoteError(err, domainerrors.ErrInvitationNotFound, "failed to load invitation")
	}

	now := srv.clock.Now()
	if !invitation.IsOpen(now) {
		return nil, domainerrors.ErrInvitationClosed
	}

	if _, err := srv.members.require(ctx, invitation.GroupID, userID); err != nil {
		return nil, err
	}

	responderName := userID
	if user, err := srv.loadUser(ctx, userID); err == nil {
		responderName = user.DisplayName
	}

	reason := input.Reason
	if input.Response != entity.ResponseDeclined {
		reason = ""
	}

	invitation.UpsertResponse(entity.BreakResponse{
		UserID:        userID,
		UserName:      responderName,
		Response:      input.Response,
		Reason:        reason,
		CustomMessage: strings.TrimSpace(input.CustomMessage),
		RespondedAt:   now,
		ResponseTime:  now.Sub(invitation.CreatedAt).Milliseconds(),
	})
	invitation.UpdatedAt = now

	if err := srv.save(ctx, invitation); err != nil {
		return nil, err
	}

	event := srv.newEvent(ctx, service.InvitationEventResponded, invitation)
	event.ResponderID = userID
	event.ResponderName = responderName
	event.Response = string(input.Response)
	srv.publish(ctx, event)

	return invitation, nil
}

func (srv *invitationService) Cancel(ctx context.Context, userID, invitationID string) (*entity.BreakInvitation, error) {
	invitation, err := srv.transition(ctx, userID, invitationID, entity.InvitationCancelled, false)
	if err != nil {
		return nil, err
	}

	if err := srv.invitationRepo.Upsert(ctx, invitation); err != nil {
		return nil, errors.Wrap(err, "failed to cache invitation")
	}

	srv.publish(ctx, srv.newEvent(ctx, service.InvitationEventCancelled, invitation))

	return invitation, nil
}

func (srv *invitationService) Start(ctx context.Context, userID, invitationID string) (*entity.BreakInvitation, error) {
	invitation, err := srv.transition(ctx, userID, invitationID, entity.InvitationActive, true)
	if err != nil {
		return nil, err
	}

	if err := srv.invitationRepo.Upsert(ctx, invitation); err != nil {
		return nil, errors.Wrap(err, "failed to cache invitation")
	}

	return invitation, nil
}

// Complete records the session together with the cached status change.
func (srv *invitationService) Complete(ctx context.Context, userID, invitationID string, actualDuration int) (*entity.BreakSession, error) {
	if actualDuration < 0 || actualDuration > maxActualDuration {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("actual duration must be between 0 and 1440 minutes")
	}

	invitation, err := srv.transition(ctx, userID, invitationID, entity.InvitationCompleted, true)
	if err != nil {
		return nil, err
	}

	if actualDuration == 0 {
		actualDuration = invitation.PlannedDuration
	}

	participants := append([]string{invitation.InitiatorUserID}, invitation.AcceptedUserIDs()...)
	session := &entity.BreakSession{
		ID:             uuid.NewString(),
		InvitationID:   invitation.ID,
		GroupID:        invitation.GroupID,
		ParticipantIDs: uniqueStrings(participants),
		ActualDuration: actualDuration,
		StartTime:      invitation.CreatedAt,
		EndTime:        invitation.CreatedAt.Add(time.Duration(actualDuration) * time.Minute),
		Location:       invitation.Location,
		CreatedAt:      invitation.UpdatedAt,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewInvitationRepository().Upsert(ctx, invitation); err != nil {
			return errors.Wrap(err, "failed to cache invitation")
		}

		return errors.Wrap(factory.NewSessionRepository().Create(ctx, session), "failed to record break session")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Break completed",
		slog.String("invitation_id", invitation.ID),
		slog.String("session_id", session.ID),
		slog.Int("participants", len(session.ParticipantIDs)),
	)

	return session, nil
}

// transition moves an invitation owned by userID to next in the remote store and returns the updated copy.
// requireOpen additionally rejects PENDING invitations whose expiry has passed.
func (srv *invitationService) transition(
	ctx context.Context,
	userID, invitationID string,
	next entity.BreakInvitationStatus,
	requireOpen bool,
) (*entity.BreakInvitation, error) {
	invitation, err := srv.remoteInvitations.Get(ctx, invitationID)
	if err != nil {
		return nil, remoteError(err, domainerrors.ErrInvitationNotFound, "failed to load invitation")
	}

	if invitation.InitiatorUserID != userID {
		return nil, domainerrors.ErrNotInvitationInitiator
	}

	if !invitation.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("%s -> %s", invitation.Status, next))
	}

	now := srv.clock.Now()
	if requireOpen && !invitation.IsOpen(now) {
		return nil, domainerrors.ErrInvitationClosed
	}

	if err := srv.remoteInvitations.UpdateStatus(ctx, invitationID, next, now); err != nil {
		return nil, remoteError(err, domainerrors.ErrInvitationNotFound, "failed to update invitation status")
	}

	srv.log(ctx).Info("Invitation status changed",
		slog.String("invitation_id", invitationID),
		slog.String("from", string(invitation.Status)),
		slog.String("to", string(next)),
	)

	invitation.Status = next
	invitation.UpdatedAt = now

	return invitation, nil
}

// ExpireSweep flips overdue PENDING invitations to EXPIRED, remote documents first.
// The local bulk update also runs when the remote store cannot be reached.
func (srv *invitationService) ExpireSweep(ctx context.Context) (int64, error) {
	now := srv.clock.Now()

	var remoteCount int64
	expired, remoteErr := srv.remoteInvitations.FindExpiredPending(ctx, now)
	if remoteErr == nil {
		for _, invitation := range expired {
			err := srv.remoteInvitations.UpdateStatus(ctx, invitation.ID, entity.InvitationExpired, now)
			if errors.Is(err, repository.ErrRemoteNotFound) {
				continue
			}
			if err != nil {
				remoteErr = err

				break
			}
			remoteCount++
		}
	}

	localCount, err := srv.invitationRepo.ExpirePending(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to expire cached invitations")
	}

	if remoteErr != nil {
		return 0, remoteError(remoteErr, nil, "failed to expire remote invitations")
	}

	if remoteCount > 0 || localCount > 0 {
		srv.log(ctx).Info("Expired pending invitations",
			slog.Int64("remote", remoteCount),
			slog.Int64("local", localCount),
		)
	}

	return max(remoteCount, localCount), nil
}

// GetByID reads through the remote store into the cache, falling back to the cached copy on transport failure.
func (srv *invitationService) GetByID(ctx context.Context, invitationID string) (*entity.BreakInvitation, error) {
	invitation, err := srv.remoteInvitations.Get(ctx, invitationID)
	if err == nil {
		if err := srv.invitationRepo.Upsert(ctx, invitation); err != nil {
			return nil, errors.Wrap(err, "failed to cache invitation")
		}

		return invitation, nil
	}

	if !isRemoteUnavailable(err) {
		return nil, remoteError(err, domainerrors.ErrInvitationNotFound, "invitation not found")
	}

	srv.log(ctx).Warn("Remote store unavailable, serving cached invitation",
		slog.String("invitation_id", invitationID),
		slog.Any("error", err),
	)

	cached, localErr := srv.invitationRepo.FindByID(ctx, invitationID)
	if localErr != nil {
		return nil, remoteError(err, nil, "failed to fetch invitation")
	}

	return cached, nil
}

// SyncGroup makes the cached invitations of a group equal to the remote ones.
// Remote invitations older than the retention window are not brought back into the cache.
func (srv *invitationService) SyncGroup(ctx context.Context, userID, groupID string) error {
	if _, err := srv.members.require(ctx, groupID, userID); err != nil {
		return err
	}

	remote, err := srv.remoteInvitations.FindByGroup(ctx, groupID)
	if err != nil {
		return remoteError(err, nil, "failed to fetch group invitations")
	}

	var cutoff time.Time
	if srv.retention > 0 {
		cutoff = srv.clock.Now().Add(-srv.retention)
	}

	keep := make(map[string]struct{}, len(remote))
	fresh := make([]*entity.BreakInvitation, 0, len(remote))
	for _, invitation := range remote {
		keep[invitation.ID] = struct{}{}
		if invitation.CreatedAt.Before(cutoff) {
			continue
		}
		fresh = append(fresh, invitation)
	}

	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewInvitationRepository()

		if err := repo.UpsertMany(ctx, fresh); err != nil {
			return errors.Wrap(err, "failed to cache group invitations")
		}

		cached, err := repo.FindByGroup(ctx, groupID)
		if err != nil {
			return errors.Wrap(err, "failed to list cached invitations")
		}
		for _, invitation := range cached {
			if _, ok := keep[invitation.ID]; ok {
				continue
			}
			if err := repo.Delete(ctx, invitation.ID); err != nil && !errors.Is(err, repository.ErrInvitationNotFound) {
				return errors.Wrap(err, "failed to drop stale invitation")
			}
		}

		return nil
	})
}

func (srv *invitationService) ForGroup(ctx context.Context, userID, groupID string) ([]*entity.BreakInvitation, error) {
	if _, err := srv.members.require(ctx, groupID, userID); err != nil {
		return nil, err
	}

	invitations, err := srv.invitationRepo.FindByGroup(ctx, groupID)

	return invitations, errors.Wrap(err, "failed to list group invitations")
}

func (srv *invitationService) ByInitiator(ctx context.Context, userID string) ([]*entity.BreakInvitation, error) {
	invitations, err := srv.invitationRepo.FindByInitiator(ctx, userID)

	return invitations, errors.Wrap(err, "failed to list invitations by initiator")
}

func (srv *invitationService) ByStatus(ctx context.Context, status entity.BreakInvitationStatus) ([]*entity.BreakInvitation, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown invitation status")
	}

	invitations, err := srv.invitationRepo.FindByStatus(ctx, status)

	return invitations, errors.Wrap(err, "failed to list invitations by status")
}

func (srv *invitationService) Active(ctx context.Context, userID string) ([]*entity.BreakInvitation, error) {
	memberships, err := srv.memberRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cached memberships")
	}

	groupIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		if m.IsActive {
			groupIDs = append(groupIDs, m.GroupID)
		}
	}
	if len(groupIDs) == 0 {
		return []*entity.BreakInvitation{}, nil
	}

	invitations, err := srv.invitationRepo.FindActiveForGroups(ctx, groupIDs, srv.clock.Now())

	return invitations, errors.Wrap(err, "failed to list active invitations")
}

func (srv *invitationService) ActiveForGroup(ctx context.Context, userID, groupID string) ([]*entity.BreakInvitation, error) {
	if _, err := srv.members.require(ctx, groupID, userID); err != nil {
		return nil, err
	}

	invitations, err := srv.invitationRepo.FindActiveForGroups(ctx, []string{groupID}, srv.clock.Now())

	return invitations, errors.Wrap(err, "failed to list active group invitations")
}

func (srv *invitationService) InDateRange(ctx context.Context, from, to time.Time) ([]*entity.BreakInvitation, error) {
	if to.Before(from) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("range end precedes its start")
	}

	invitations, err := srv.invitationRepo.FindInRange(ctx, from, to)

	return invitations, errors.Wrap(err, "failed to list invitations in range")
}

func (srv *invitationService) CountToday(ctx context.Context, userID string) (int64, error) {
	from, to := dayBounds(srv.clock.Now(), srv.location)
	count, err := srv.invitationRepo.CountByInitiatorInRange(ctx, userID, from, to)

	return count, errors.Wrap(err, "failed to count today's invitations")
}

func (srv *invitationService) CountTodayForGroup(ctx context.Context, groupID string) (int64, error) {
	from, to := dayBounds(srv.clock.Now(), srv.location)
	count, err := srv.invitationRepo.CountByGroupInRange(ctx, groupID, from, to)

	return count, errors.Wrap(err, "failed to count today's group invitations")
}

// save writes the whole invitation remote first, then to the cache.
func (srv *invitationService) save(ctx context.Context, invitation *entity.BreakInvitation) error {
	if err := srv.remoteInvitations.Put(ctx, invitation); err != nil {
		return remoteError(err, nil, "failed to save invitation")
	}

	if err := srv.invitationRepo.Upsert(ctx, invitation); err != nil {
		return errors.Wrap(err, "failed to cache invitation")
	}

	return nil
}

func (srv *invitationService) loadGroup(ctx context.Context, groupID string) (*entity.Group, error) {
	group, err := srv.remoteGroups.Get(ctx, groupID)
	if err == nil {
		return group, nil
	}
	if !isRemoteUnavailable(err) {
		return nil, remoteError(err, domainerrors.ErrGroupNotFound, "group not found")
	}

	cached, localErr := srv.groupRepo.FindByID(ctx, groupID)
	if localErr != nil {
		return nil, remoteError(err, nil, "failed to fetch group")
	}

	return cached, nil
}

func (srv *invitationService) loadUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.remoteUsers.Get(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !isRemoteUnavailable(err) {
		return nil, remoteError(err, domainerrors.ErrUserNotFound, "user not found")
	}

	cached, localErr := srv.userRepo.FindByID(ctx, userID)
	if localErr != nil {
		return nil, remoteError(err, nil, "failed to fetch user")
	}

	return cached, nil
}

func (srv *invitationService) newEvent(
	ctx context.Context,
	eventType service.InvitationEventType,
	invitation *entity.BreakInvitation,
) *service.InvitationEvent {
	return &service.InvitationEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		Type:            eventType,
		InvitationID:    invitation.ID,
		GroupID:         invitation.GroupID,
		InitiatorID:     invitation.InitiatorUserID,
		InitiatorName:   invitation.InitiatorName,
		Message:         invitation.Message,
		Location:        invitation.Location,
		PlannedDuration: invitation.PlannedDuration,
		ExpiresAt:       invitation.ExpiresAt.UnixMilli(),
	}
}

// publish hands the event to the notifier. Delivery failures never fail the write that caused them.
func (srv *invitationService) publish(ctx context.Context, event *service.InvitationEvent) {
	if srv.publisher == nil {
		return
	}

	if err := srv.publisher.PublishInvitationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish invitation event",
			slog.String("type", string(event.Type)),
			slog.String("invitation_id", event.InvitationID),
			slog.Any("error", err),
		)
	}
}

// dayBounds returns local midnight of now's day in loc and the following midnight.
func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, day := now.In(loc).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)

	return start, start.AddDate(0, 0, 1)
}
