package impl

import (
	"testing"
	"time"

	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeBreak runs an invitation through to a session in which bob accepted.
func completeBreak(t *testing.T, f *invitationFixtures, actualDuration int) *entity.BreakSession {
	t.Helper()

	invitation := f.create(t)
	_, err := f.invitations.Respond(f.ctx, "bob", &usecase.RespondInput{
		InvitationID: invitation.ID,
		Response:     entity.ResponseAccepted,
	})
	require.NoError(t, err)

	session, err := f.invitations.Complete(f.ctx, "alice", invitation.ID, actualDuration)
	require.NoError(t, err)

	return session
}

func TestSessionService_Rate(t *testing.T) {
	f := newInvitationFixtures(t)
	session := completeBreak(t, f, 12)

	_, err := f.sessions.Rate(f.ctx, "bob", session.ID, 6, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.sessions.Rate(f.ctx, "carol", session.ID, 4, "")
	assert.ErrorIs(t, err, domainerrors.ErrNotSessionParticipant)

	_, err = f.sessions.Rate(f.ctx, "bob", "missing", 4, "")
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	rated, err := f.sessions.Rate(f.ctx, "bob", session.ID, 4, "sunny")
	require.NoError(t, err)
	assert.Equal(t, 4, rated.Rating)

	stored, err := f.sessions.Get(f.ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Rating)
	assert.Equal(t, "sunny", stored.Feedback)
}

func TestSessionService_UpdateDuration(t *testing.T) {
	f := newInvitationFixtures(t)
	session := completeBreak(t, f, 0)

	_, err := f.sessions.UpdateDuration(f.ctx, "alice", session.ID, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	updated, err := f.sessions.UpdateDuration(f.ctx, "alice", session.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, updated.ActualDuration)
	assert.True(t, updated.EndTime.Equal(updated.StartTime.Add(25*time.Minute)))

	stored, err := f.sessions.ByInvitation(f.ctx, session.InvitationID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.ActualDuration)
}

func TestSessionService_Lists(t *testing.T) {
	f := newInvitationFixtures(t)
	completeBreak(t, f, 10)
	completeBreak(t, f, 20)

	forBob, err := f.sessions.ForUser(f.ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, forBob, 2)

	forCarol, err := f.sessions.ForUser(f.ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, forCarol)

	forGroup, err := f.sessions.ForGroup(f.ctx, "carol", f.group.Group.ID)
	require.NoError(t, err)
	assert.Len(t, forGroup, 2)

	_, err = f.sessions.ForGroup(f.ctx, "mallory", f.group.Group.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotGroupMember)

	inRange, err := f.sessions.InDateRange(f.ctx, "alice", fixtureNow.Add(-time.Hour), fixtureNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, inRange, 2)
}

func TestSessionService_Analytics(t *testing.T) {
	f := newInvitationFixtures(t)
	prefs := entity.DefaultUserPreferences()
	prefs.MaxBreaksPerDay = 5
	_, err := f.users.UpdatePreferences(f.ctx, "alice", prefs)
	require.NoError(t, err)

	first := completeBreak(t, f, 60)
	completeBreak(t, f, 15)
	f.create(t)

	_, err = f.sessions.Rate(f.ctx, "alice", first.ID, 5, "")
	require.NoError(t, err)

	analytics, err := f.sessions.Analytics(f.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), analytics.TodaySessions)
	assert.Equal(t, int64(3), analytics.TodayInvitationsSent)
	assert.Equal(t, int64(3), analytics.WeeklyInvitations)
	assert.Equal(t, int64(3), analytics.MonthlyInvitations)
	assert.Equal(t, int64(2), analytics.TotalSessions)
	assert.Equal(t, int64(75), analytics.TotalBreakMinutes)
	assert.Equal(t, "1h 15m", analytics.TotalBreakTime)
	assert.InDelta(t, 37.5, analytics.AverageDuration, 0.001)
	assert.InDelta(t, 5.0, analytics.AverageRating, 0.001, "unrated sessions are excluded")
	assert.Equal(t, 2, analytics.RemainingBreaksToday)

	carol, err := f.sessions.Analytics(f.ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, int64(0), carol.TotalSessions)
	assert.Equal(t, "0m", carol.TotalBreakTime)
	assert.Equal(t, 5, carol.RemainingBreaksToday)
}

func TestSessionService_Analytics_Unlimited(t *testing.T) {
	f := newInvitationFixtures(t)
	prefs := entity.DefaultUserPreferences()
	prefs.MaxBreaksPerDay = 0
	_, err := f.users.UpdatePreferences(f.ctx, "bob", prefs)
	require.NoError(t, err)

	analytics, err := f.sessions.Analytics(f.ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, -1, analytics.RemainingBreaksToday)
}

func TestSessionService_Prune(t *testing.T) {
	f := newInvitationFixtures(t)
	old := completeBreak(t, f, 10)

	f.clock.Advance(48 * time.Hour)
	recent := completeBreak(t, f, 10)

	_, _, err := f.sessions.Prune(f.ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	invitations, sessions, err := f.sessions.Prune(f.ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), invitations)
	assert.Equal(t, int64(1), sessions)

	_, err = f.sessions.Get(f.ctx, old.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	_, err = f.sessions.Get(f.ctx, recent.ID)
	require.NoError(t, err)
}

func TestSessionService_Prune_KeepsSessionInsideWindow(t *testing.T) {
	f := newInvitationFixtures(t)
	invitation := f.create(t)

	// The session is recorded 8 minutes after the invitation was created.
	f.clock.Advance(8 * time.Minute)
	session, err := f.invitations.Complete(f.ctx, "alice", invitation.ID, 5)
	require.NoError(t, err)

	// Cutoff lands between the invitation and its session.
	f.clock.Advance(time.Hour)
	invitations, sessions, err := f.sessions.Prune(f.ctx, 64*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, invitations)
	assert.Zero(t, sessions)

	_, err = f.sessions.Get(f.ctx, session.ID)
	require.NoError(t, err)
	_, err = f.invitationRepo.FindByID(f.ctx, invitation.ID)
	require.NoError(t, err)

	// Once the session ages out both go.
	invitations, sessions, err = f.sessions.Prune(f.ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), invitations)
	assert.Equal(t, int64(1), sessions)
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int64]string{
		0:   "0m",
		45:  "45m",
		60:  "1h 0m",
		135: "2h 15m",
	}

	for minutes, want := range tests {
		assert.Equal(t, want, formatMinutes(minutes))
	}
}
