package impl

import (
	"context"
	"testing"
	"time"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// invitationFixtures is a group of three: initiator "alice", members "bob" and "carol".
type invitationFixtures struct {
	*serviceFixtures
	group  *entity.GroupWithMembers
	events *[]*service.InvitationEvent
}

func newInvitationFixtures(t *testing.T) *invitationFixtures {
	t.Helper()

	f := newServiceFixtures(t)
	f.seedUser(t, "alice", "Alice")
	f.seedUser(t, "bob", "Bob")
	f.seedUser(t, "carol", "Carol")
	f.seedUser(t, "mallory", "Mallory")

	return &invitationFixtures{
		serviceFixtures: f,
		group:           f.seedGroup(t, "alice", "bob", "carol"),
		events:          f.allowEvents(),
	}
}

func (f *invitationFixtures) create(t *testing.T) *entity.BreakInvitation {
	t.Helper()

	invitation, err := f.invitations.Create(f.ctx, "alice", &usecase.CreateInvitationInput{
		GroupID:  f.group.Group.ID,
		Message:  "Coffee?",
		Location: "Roof",
	})
	require.NoError(t, err)

	return invitation
}

func TestInvitationService_Create(t *testing.T) {
	f := newInvitationFixtures(t)

	invitation := f.create(t)
	assert.Equal(t, entity.InvitationPending, invitation.Status)
	assert.Equal(t, "Alice", invitation.InitiatorName)
	assert.Equal(t, entity.DefaultPlannedDuration, invitation.PlannedDuration)
	assert.True(t, invitation.ExpiresAt.Equal(fixtureNow.Add(10*time.Minute)))

	remoteCopy, err := f.remoteInvitations.Get(f.ctx, invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationPending, remoteCopy.Status)

	active, err := f.invitations.Active(f.ctx, "bob")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, invitation.ID, active[0].ID)

	require.Len(t, *f.events, 1)
	event := (*f.events)[0]
	assert.Equal(t, service.InvitationEventCreated, event.Type)
	assert.Equal(t, f.group.Group.Name, event.GroupName)
	assert.Equal(t, "alice", event.InitiatorID)
}

func TestInvitationService_Create_RequiresMembership(t *testing.T) {
	f := newInvitationFixtures(t)

	_, err := f.invitations.Create(f.ctx, "mallory", &usecase.CreateInvitationInput{GroupID: f.group.Group.ID})
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)

	_, err = f.invitations.Create(f.ctx, "alice", &usecase.CreateInvitationInput{GroupID: f.group.Group.ID, PlannedDuration: 999})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInvitationService_Create_DailyLimit(t *testing.T) {
	f := newInvitationFixtures(t)
	prefs := entity.DefaultUserPreferences()
	prefs.MaxBreaksPerDay = 2
	_, err := f.users.UpdatePreferences(f.ctx, "alice", prefs)
	require.NoError(t, err)

	f.create(t)
	f.create(t)

	_, err = f.invitations.Create(f.ctx, "alice", &usecase.CreateInvitationInput{GroupID: f.group.Group.ID})
	assert.ErrorIs(t, err, domainerrors.ErrDailyBreakLimit)

	count, err := f.invitations.CountToday(f.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The counter resets at midnight.
	f.clock.Advance(24 * time.Hour)
	f.create(t)
}

func TestInvitationService_Create_PublishFailureDoesNotFail(t *testing.T) {
	f := newServiceFixtures(t)
	f.seedUser(t, "alice", "Alice")
	group := f.seedGroup(t, "alice")
	f.publisher.EXPECT().PublishInvitationEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := f.invitations.Create(f.ctx, "alice", &usecase.CreateInvitationInput{GroupID: group.Group.ID})
	require.NoError(t, err)
}

func TestInvitationService_RespondTwiceKeepsOneEntry(t *testing.T) {
	f := newInvitationFixtures(t)
	invitation := f.create(t)

	f.clock.Advance(30 * time.Second)
	_, err := f.invitations.Respond(f.ctx, "bob", &usecase.RespondInput{
		InvitationID: invitation.ID,
		Response:     entity.ResponseDeclined,
		Reason:       entity.DeclineInMeeting,
	})
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	updated, err := f.invitations.Respond(f.ctx, "bob", &usecase.RespondInput{
		InvitationID: invitation.ID,
		Response:     entity.ResponseAccepted,
		Reason:       entity.DeclineBusy,
	})
	require.NoError(t, err)

	require.Len(t, updated.Responses, 1)
	resp := updated.Responses[0]
	assert.Equal(t, entity.ResponseAccepted, resp.Response)
	assert.Empty(t, resp.Reason, "reasons only apply to declines")
	assert.Equal(t, "Bob", resp.UserName)
	assert.Equal(t, int64(90_000), resp.ResponseTime)

	remoteCopy, err := f.remoteInvitations.Get(f.ctx, invitation.ID)
	require.NoError(t, err)
	require.Len(t, remoteCopy.Responses, 1)
	assert.Equal(t, entity.ResponseAccepted, remoteCopy.Responses[0].Response)

	cached, err := f.invitationRepo.FindByID(f.ctx, invitation.ID)
	require.NoError(t, err)
	require.Len(t, cached.Responses, 1)

	last := (*f.events)[len(*f.events)-1]
	assert.Equal(t, service.InvitationEventResponded, last.Type)
	assert.Equal(t, "bob", last.ResponderID)
	assert.Equal(t, string(entity.ResponseAccepted), last.Response)
}

func TestInvitationService_Respond_Rules(t *testing.T) {
	f := newInvitationFixtures(t)
	invitation := f.create(t)

	_, err := f.invitations.Respond(f.ctx, "bob", &usecase.RespondInput{InvitationID: invitation.ID, Response: entity.ResponsePending})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.invitations.Respond(f.ctx, "mallory", &usecase.RespondInput{InvitationID: invitation.ID, Response: entity.ResponseMaybe})
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)

	_, err = f.invitations.Respond(f.ctx, "bob", &usecase.RespondInput{InvitationID: "missing", Response: entity.ResponseMaybe})
	assert.ErrorIs(t, err, domainerrors.ErrInvitationNotFound)

	f.clock.Advance(11 * time.Minute)
	_, err = f.invitations.Respond(f.ctx, "bob", &usecase.RespondInput{InvitationID: invitation.ID, Response: entity.ResponseMaybe})
	assert.ErrorIs(t, err, domainerrors.ErrInvitationClosed)
}

func TestInvitationService_Lifecycle(t *testing.T) {
	f := newInvitationFixtures(t)
	invitation := f.create(t)

	_, err := f.invitations.Cancel(f.ctx, "bob", invitation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotInvitationInitiator)

	started, err := f.invitations.Start(f.ctx, "alice", invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationActive, started.Status)

	_, err = f.invitations.Start(f.ctx, "alice", invitation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	cancelled, err := f.invitations.Cancel(f.ctx, "alice", invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationCancelled, cancelled.Status)

	for _, op := range []func(context.Context, string, string) (*entity.BreakInvitation, error){
		f.invitations.Cancel,
		f.invitations.Start,
	} {
		_, err := op(f.ctx, "alice", invitation.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	}
	_, err = f.invitations.Complete(f.ctx, "alice", invitation.ID, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	cached, err := f.invitationRepo.FindByID(f.ctx, invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationCancelled, cached.Status)

	last := (*f.events)[len(*f.events)-1]
	assert.Equal(t, service.InvitationEventCancelled, last.Type)
}

func TestInvitationService_CompleteRecordsOneSession(t *testing.T) {
	f := newInvitationFixtures(t)
	invitation := f.create(t)

	_, err := f.invitations.Respond(f.ctx, "bob", &usecase.RespondInput{InvitationID: invitation.ID, Response: entity.ResponseAccepted})
	require.NoError(t, err)
	_, err = f.invitations.Respond(f.ctx, "carol", &usecase.RespondInput{InvitationID: invitation.ID, Response: entity.ResponseDeclined})
	require.NoError(t, err)

	session, err := f.invitations.Complete(f.ctx, "alice", invitation.ID, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, session.ParticipantIDs)
	assert.Equal(t, entity.DefaultPlannedDuration, session.ActualDuration)
	assert.Equal(t, "Roof", session.Location)

	stored, err := f.sessionRepo.FindByInvitation(f.ctx, invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, stored.ID)

	remoteCopy, err := f.remoteInvitations.Get(f.ctx, invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationCompleted, remoteCopy.Status)

	_, err = f.invitations.Complete(f.ctx, "alice", invitation.ID, 5)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	sessions, err := f.sessionRepo.FindByGroup(f.ctx, f.group.Group.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestInvitationService_ExpireSweep(t *testing.T) {
	f := newInvitationFixtures(t)
	stale := f.create(t)
	started := f.create(t)
	_, err := f.invitations.Start(f.ctx, "alice", started.ID)
	require.NoError(t, err)

	f.clock.Advance(5 * time.Minute)
	fresh := f.create(t)

	f.clock.Advance(6 * time.Minute)
	expired, err := f.invitations.ExpireSweep(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	statuses := map[string]entity.BreakInvitationStatus{
		stale.ID:   entity.InvitationExpired,
		started.ID: entity.InvitationActive,
		fresh.ID:   entity.InvitationPending,
	}
	for id, want := range statuses {
		remoteCopy, err := f.remoteInvitations.Get(f.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, remoteCopy.Status, "remote %s", id)

		cached, err := f.invitationRepo.FindByID(f.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, cached.Status, "cached %s", id)
	}

	again, err := f.invitations.ExpireSweep(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestInvitationService_GetByIDAndSyncGroup(t *testing.T) {
	f := newInvitationFixtures(t)
	invitation := f.create(t)

	require.NoError(t, f.remoteInvitations.Put(f.ctx, &entity.BreakInvitation{
		ID:              "from-another-device",
		GroupID:         f.group.Group.ID,
		InitiatorUserID: "bob",
		InitiatorName:   "Bob",
		PlannedDuration: 5,
		Status:          entity.InvitationPending,
		ExpiresAt:       fixtureNow.Add(time.Minute),
		CreatedAt:       fixtureNow,
		UpdatedAt:       fixtureNow,
	}))
	require.NoError(t, f.invitationRepo.Upsert(f.ctx, &entity.BreakInvitation{
		ID:        "deleted-remotely",
		GroupID:   f.group.Group.ID,
		Status:    entity.InvitationPending,
		ExpiresAt: fixtureNow.Add(time.Minute),
		CreatedAt: fixtureNow,
		UpdatedAt: fixtureNow,
	}))

	require.NoError(t, f.invitations.SyncGroup(f.ctx, "carol", f.group.Group.ID))

	cached, err := f.invitations.ForGroup(f.ctx, "carol", f.group.Group.ID)
	require.NoError(t, err)
	ids := make([]string, 0, len(cached))
	for _, inv := range cached {
		ids = append(ids, inv.ID)
	}
	assert.ElementsMatch(t, []string{invitation.ID, "from-another-device"}, ids)

	err = f.invitations.SyncGroup(f.ctx, "mallory", f.group.Group.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)

	require.NoError(t, f.remote.Close())
	got, err := f.invitations.GetByID(f.ctx, invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, invitation.ID, got.ID)
}

func TestInvitationService_SyncGroupSkipsInvitationsPastRetention(t *testing.T) {
	f := newInvitationFixtures(t)
	f.invitations.retention = time.Hour

	require.NoError(t, f.remoteInvitations.Put(f.ctx, &entity.BreakInvitation{
		ID:              "pruned-last-week",
		GroupID:         f.group.Group.ID,
		InitiatorUserID: "bob",
		InitiatorName:   "Bob",
		PlannedDuration: 5,
		Status:          entity.InvitationExpired,
		ExpiresAt:       fixtureNow.Add(-7*24*time.Hour + time.Minute),
		CreatedAt:       fixtureNow.Add(-7 * 24 * time.Hour),
		UpdatedAt:       fixtureNow.Add(-7*24*time.Hour + time.Minute),
	}))
	recent := f.create(t)

	require.NoError(t, f.invitations.SyncGroup(f.ctx, "bob", f.group.Group.ID))

	_, err := f.invitationRepo.FindByID(f.ctx, "pruned-last-week")
	assert.Error(t, err)

	cached, err := f.invitationRepo.FindByID(f.ctx, recent.ID)
	require.NoError(t, err)
	assert.Equal(t, recent.ID, cached.ID)
}

func TestInvitationService_Queries(t *testing.T) {
	f := newInvitationFixtures(t)
	first := f.create(t)
	f.clock.Advance(time.Minute)
	f.create(t)

	_, err := f.invitations.Cancel(f.ctx, "alice", first.ID)
	require.NoError(t, err)

	byInitiator, err := f.invitations.ByInitiator(f.ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, byInitiator, 2)

	cancelled, err := f.invitations.ByStatus(f.ctx, entity.InvitationCancelled)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, first.ID, cancelled[0].ID)

	_, err = f.invitations.ByStatus(f.ctx, "LOST")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	active, err := f.invitations.ActiveForGroup(f.ctx, "carol", f.group.Group.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	inRange, err := f.invitations.InDateRange(f.ctx, fixtureNow.Add(-time.Hour), fixtureNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, inRange, 2)

	_, err = f.invitations.InDateRange(f.ctx, fixtureNow, fixtureNow.Add(-time.Hour))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	groupCount, err := f.invitations.CountTodayForGroup(f.ctx, f.group.Group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), groupCount)
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	start, end := dayBounds(now, loc)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, loc), end)
}
