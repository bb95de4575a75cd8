package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smokebreak/config"
	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/infra/persistence/remote"
	mockService "smokebreak/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Monday, inside default working hours.
var monday10 = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type pushFixture struct {
	handler     *PushHandler
	collections *remote.Collections
	notifier    *mockService.MockNotificationService
}

func newPushFixture(t *testing.T) *pushFixture {
	t.Helper()

	collections, err := remote.Open(context.Background(), &config.RemoteStoreConfig{Driver: "mem"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = collections.Close() })

	notifier := mockService.NewMockNotificationService(t)
	cfg := &config.Config{Invitation: &config.InvitationConfig{Timezone: "UTC"}}

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.DiscardHandler),
		NotificationSvc: notifier,
		Members:         remote.NewMemberStore(collections),
		Users:           remote.NewUserStore(collections),
		Clock:           fixedClock(monday10),
	})

	return &pushFixture{handler: h, collections: collections, notifier: notifier}
}

func (f *pushFixture) seedUser(t *testing.T, id, token string, edit func(*entity.UserPreferences)) {
	t.Helper()

	prefs := entity.DefaultUserPreferences()
	if edit != nil {
		edit(&prefs)
	}
	require.NoError(t, remote.NewUserStore(f.collections).Put(context.Background(), &entity.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: strings.ToUpper(id[:1]) + id[1:],
		FCMToken:    token,
		Preferences: prefs,
		CreatedAt:   monday10,
		UpdatedAt:   monday10,
	}))
}

func (f *pushFixture) seedMember(t *testing.T, groupID, userID string, active bool) {
	t.Helper()

	require.NoError(t, remote.NewMemberStore(f.collections).Put(context.Background(), &entity.Member{
		UserID:   userID,
		GroupID:  groupID,
		Role:     entity.GroupRoleMember,
		JoinedAt: monday10,
		IsActive: active,
	}))
}

func (f *pushFixture) push(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, f.handler.HandlePush(echo.New().NewContext(req, rec)))

	return rec
}

func pushBody(t *testing.T, event *service.InvitationEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	msg.Subscription = "projects/local/subscriptions/invitation-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestHandlePush_CreatedNotifiesAvailableMembers(t *testing.T) {
	f := newPushFixture(t)

	f.seedUser(t, "alice", "alice-token", nil)
	f.seedUser(t, "bob", "bob-token", nil)
	f.seedUser(t, "carol", "carol-token", func(p *entity.UserPreferences) { p.EnableNotifications = false })
	f.seedUser(t, "dave", "", nil)
	f.seedUser(t, "erin", "erin-token", func(p *entity.UserPreferences) {
		p.WorkingHours = entity.WorkingHours{StartTime: "13:00", EndTime: "18:00", WorkingDays: []int{1, 2, 3, 4, 5}}
	})
	f.seedUser(t, "frank", "frank-token", nil)
	for _, id := range []string{"alice", "bob", "carol", "dave", "erin"} {
		f.seedMember(t, "g1", id, true)
	}
	f.seedMember(t, "g1", "frank", false)

	f.notifier.EXPECT().
		SendBatchNotification(mock.Anything, []string{"bob-token"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Channel == service.ChannelBreakNotifications &&
				msg.Title == "Alice wants a smoke break" &&
				msg.Data["invitation_id"] == "inv1"
		})).
		Return(1, 0, nil, nil).Once()

	rec := f.push(t, pushBody(t, &service.InvitationEvent{
		Type:          service.InvitationEventCreated,
		InvitationID:  "inv1",
		GroupID:       "g1",
		InitiatorID:   "alice",
		InitiatorName: "Alice",
		Message:       "Coffee and a smoke",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RespondedNotifiesInitiatorAndClearsInvalidToken(t *testing.T) {
	f := newPushFixture(t)
	f.seedUser(t, "alice", "alice-token", nil)

	f.notifier.EXPECT().
		SendBatchNotification(mock.Anything, []string{"alice-token"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Channel == service.ChannelGeneralNotifications && msg.Body == "Bob is joining your break"
		})).
		Return(0, 1, []string{"alice-token"}, nil).Once()

	rec := f.push(t, pushBody(t, &service.InvitationEvent{
		Type:          service.InvitationEventResponded,
		InvitationID:  "inv1",
		GroupID:       "g1",
		InitiatorID:   "alice",
		ResponderID:   "bob",
		ResponderName: "Bob",
		Response:      string(entity.ResponseAccepted),
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	alice, err := remote.NewUserStore(f.collections).Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, alice.FCMToken)
}

func TestHandlePush_CancelledIgnoresWorkingHours(t *testing.T) {
	f := newPushFixture(t)
	f.handler.clock = fixedClock(time.Date(2026, 3, 7, 22, 0, 0, 0, time.UTC)) // Saturday night

	f.seedUser(t, "alice", "alice-token", nil)
	f.seedUser(t, "bob", "bob-token", nil)
	f.seedMember(t, "g1", "alice", true)
	f.seedMember(t, "g1", "bob", true)

	f.notifier.EXPECT().
		SendBatchNotification(mock.Anything, []string{"bob-token"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Channel == service.ChannelGeneralNotifications && msg.Title == "Break cancelled"
		})).
		Return(1, 0, nil, nil).Once()

	rec := f.push(t, pushBody(t, &service.InvitationEvent{
		Type:          service.InvitationEventCancelled,
		InvitationID:  "inv1",
		GroupID:       "g1",
		InitiatorID:   "alice",
		InitiatorName: "Alice",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_CreatedOutsideWorkingHoursSendsNothing(t *testing.T) {
	f := newPushFixture(t)
	f.handler.clock = fixedClock(time.Date(2026, 3, 7, 22, 0, 0, 0, time.UTC))

	f.seedUser(t, "bob", "bob-token", nil)
	f.seedMember(t, "g1", "bob", true)

	rec := f.push(t, pushBody(t, &service.InvitationEvent{
		Type:        service.InvitationEventCreated,
		GroupID:     "g1",
		InitiatorID: "alice",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StoreFailureIsRetried(t *testing.T) {
	f := newPushFixture(t)
	require.NoError(t, f.collections.Close())

	rec := f.push(t, pushBody(t, &service.InvitationEvent{
		Type:        service.InvitationEventCancelled,
		GroupID:     "g1",
		InitiatorID: "alice",
	}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedMessage(t *testing.T) {
	f := newPushFixture(t)

	rec := f.push(t, `{"message":{"data":"%%%not-base64"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.push(t, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_UnknownEventIsAcknowledged(t *testing.T) {
	f := newPushFixture(t)

	rec := f.push(t, pushBody(t, &service.InvitationEvent{Type: "invitation.archived", GroupID: "g1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractRequestID(t *testing.T) {
	f := newPushFixture(t)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", f.handler.extractRequestID(context.Background(), &msg, &service.InvitationEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", f.handler.extractRequestID(context.Background(), &msg, &service.InvitationEvent{RequestID: "from-event"}))

	assert.NotEmpty(t, f.handler.extractRequestID(context.Background(), &msg, &service.InvitationEvent{}))
}
