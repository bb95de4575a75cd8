package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smokebreak/config"
	"smokebreak/internal/delivery/api/middleware"
	"smokebreak/internal/delivery/api/router/handler"
	"smokebreak/internal/delivery/api/validator"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/domain/entity"
	"smokebreak/internal/infra/persistence/sqlite"
	mockUsecase "smokebreak/internal/mocks/usecase"
	"smokebreak/internal/usecase"
	"smokebreak/internal/viewmodel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "token-alice"

type testServer struct {
	e           *echo.Echo
	users       *mockUsecase.MockUserUsecase
	groups      *mockUsecase.MockGroupUsecase
	invitations *mockUsecase.MockInvitationUsecase
	sessions    *mockUsecase.MockSessionUsecase
	feed        *sqlite.ChangeFeed
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	s := &testServer{
		users:       mockUsecase.NewMockUserUsecase(t),
		groups:      mockUsecase.NewMockGroupUsecase(t),
		invitations: mockUsecase.NewMockInvitationUsecase(t),
		sessions:    mockUsecase.NewMockSessionUsecase(t),
		feed:        sqlite.NewChangeFeed(),
	}

	cfg := &config.Config{WebSocket: &config.WebSocketConfig{
		PingInterval: time.Second,
		WriteTimeout: time.Second,
	}}

	s.e = echo.New()
	s.e.Validator = validator.New()
	s.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: s.users, Logger: logger}),
		UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: s.users, Logger: logger}),
		GroupHandler:      handler.NewGroupHandler(handler.GroupHandlerParams{GroupUC: s.groups, Logger: logger}),
		InvitationHandler: handler.NewInvitationHandler(handler.InvitationHandlerParams{InvitationUC: s.invitations, Logger: logger}),
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: s.sessions, Logger: logger}),
		StreamHandler: handler.NewStreamHandler(handler.StreamHandlerParams{
			Factory: viewmodel.NewFactory(viewmodel.FactoryParams{
				Users:       s.users,
				Groups:      s.groups,
				Invitations: s.invitations,
				Feed:        s.feed,
				Logger:      logger,
			}),
			Config: cfg,
			Logger: logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{UserUC: s.users, Logger: logger}),
	})
	r.RegisterRoutes(s.e)

	return s
}

func (s *testServer) signedIn() {
	s.users.EXPECT().VerifyToken(mock.Anything, testToken).Return("alice", nil)
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func sampleGroup() *entity.GroupWithMembers {
	return &entity.GroupWithMembers{
		Group: entity.Group{ID: "g1", Name: "Backend", CreatedBy: "alice", InviteCode: "ABC123", MaxMembers: 50, IsActive: true},
		Members: []entity.Member{
			{UserID: "alice", GroupID: "g1", Role: entity.GroupRoleAdmin, IsActive: true},
			{UserID: "bob", GroupID: "g1", Role: entity.GroupRoleMember, IsActive: true},
		},
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/groups", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, rec).Error.Code)
}

func TestAPI_RejectsInvalidToken(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().VerifyToken(mock.Anything, testToken).
		Return("", domainerrors.ErrTokenInvalid.WrapMessage("expired"))

	rec := s.do(http.MethodGet, "/api/v1/groups", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decode(t, rec).Error.Code)
}

func TestAuth_SignIn(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().SignIn(mock.Anything, &usecase.SignInInput{Email: "alice@example.com", Password: "secret1"}).
		Return(&usecase.AuthOutput{User: &entity.User{ID: "alice", FCMToken: "device"}, Token: "jwt"}, nil)

	rec := s.do(http.MethodPost, "/auth/signin", `{"email":"alice@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out handler.AuthResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "jwt", out.Token)
	assert.Equal(t, "alice", out.User.ID)
	assert.NotContains(t, rec.Body.String(), "device")
}

func TestAuth_SignUpValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"123"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestGroups_Create(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.groups.EXPECT().Create(mock.Anything, "alice", &usecase.CreateGroupInput{Name: "Backend", IsPublic: true}).
		Return(sampleGroup(), nil)

	rec := s.do(http.MethodPost, "/api/v1/groups", `{"name":"Backend","isPublic":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out handler.GroupWithMembersResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "ABC123", out.InviteCode)
	assert.Equal(t, []string{"alice", "bob"}, out.MemberIDs)
	assert.Equal(t, []string{"alice"}, out.AdminIDs)
}

func TestGroups_MyGroupsRefresh(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.groups.EXPECT().RefreshMyGroups(mock.Anything, "alice").Return(nil).Once()
	s.groups.EXPECT().CachedGroups(mock.Anything, "alice").
		Return([]*entity.GroupWithMembers{sampleGroup()}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/groups?refresh=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out []handler.GroupWithMembersResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Len(t, out, 1)
}

func TestGroups_JoinFull(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.groups.EXPECT().JoinByInviteCode(mock.Anything, "alice", "ABC123").
		Return(nil, domainerrors.ErrGroupFull.WrapMessage("group g1 has 50 members"))

	rec := s.do(http.MethodPost, "/api/v1/groups/join", `{"inviteCode":"ABC123"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "GROUP_FULL", decode(t, rec).Error.Code)
}

func TestGroups_InviteQRCode(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.groups.EXPECT().InviteQRCode(mock.Anything, "alice", "g1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := s.do(http.MethodGet, "/api/v1/groups/g1/qr", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestGroups_SetMemberRoleValidation(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()

	rec := s.do(http.MethodPut, "/api/v1/groups/g1/members/bob/role", `{"role":"OWNER"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvitations_Respond(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.invitations.EXPECT().Respond(mock.Anything, "alice", &usecase.RespondInput{
		InvitationID: "inv1",
		Response:     entity.ResponseDeclined,
		Reason:       entity.DeclineInMeeting,
	}).Return(&entity.BreakInvitation{ID: "inv1", Status: entity.InvitationPending}, nil)

	rec := s.do(http.MethodPost, "/api/v1/invitations/inv1/respond", `{"response":"DECLINED","reason":"IN_MEETING"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out handler.InvitationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "inv1", out.ID)
	assert.Equal(t, "PENDING", out.Status)
}

func TestInvitations_RespondRejectsUnknownAnswer(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()

	rec := s.do(http.MethodPost, "/api/v1/invitations/inv1/respond", `{"response":"SOMETIMES"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvitations_CreateOverDailyLimit(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.invitations.EXPECT().Create(mock.Anything, "alice", mock.Anything).
		Return(nil, domainerrors.ErrDailyBreakLimit.WrapMessage("5 of 5 breaks used"))

	rec := s.do(http.MethodPost, "/api/v1/invitations", `{"groupId":"g1"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "DAILY_BREAK_LIMIT", decode(t, rec).Error.Code)
}

func TestInvitations_CancelTerminal(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.invitations.EXPECT().Cancel(mock.Anything, "alice", "inv1").
		Return(nil, domainerrors.ErrInvalidStatusTransition.WrapMessage("COMPLETED -> CANCELLED"))

	rec := s.do(http.MethodPost, "/api/v1/invitations/inv1/cancel", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", decode(t, rec).Error.Code)
}

func TestInvitations_ExpireSweep(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.invitations.EXPECT().ExpireSweep(mock.Anything).Return(int64(3), nil)

	rec := s.do(http.MethodPost, "/api/v1/invitations/expire", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"expired":3}`, string(decode(t, rec).Data))
}

func TestSessions_ByInvitation(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.sessions.EXPECT().ByInvitation(mock.Anything, "inv1").
		Return(&entity.BreakSession{ID: "s1", InvitationID: "inv1"}, nil)

	rec := s.do(http.MethodGet, "/api/v1/invitations/inv1/session", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out handler.SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "s1", out.ID)
}

func TestSessions_RateOutOfRange(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()

	rec := s.do(http.MethodPost, "/api/v1/sessions/s1/rating", `{"rating":6}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func dialStream(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		_ = resp.Body.Close()
	})

	return conn
}

// readUntil reads frames until match accepts one.
func readUntil(t *testing.T, conn *websocket.Conn, match func(handler.StreamMessage) bool) handler.StreamMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		var msg handler.StreamMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if match(msg) {
			return msg
		}
	}
}

// readEach reads frames until every match has accepted one, in whatever order they arrive.
// The i-th returned message is the first frame accepted by matches[i].
func readEach(t *testing.T, conn *websocket.Conn, matches ...func(handler.StreamMessage) bool) []handler.StreamMessage {
	t.Helper()

	found := make([]handler.StreamMessage, len(matches))
	seen := make([]bool, len(matches))
	remaining := len(matches)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for remaining > 0 {
		var msg handler.StreamMessage
		require.NoError(t, conn.ReadJSON(&msg))
		for i, match := range matches {
			if !seen[i] && match(msg) {
				found[i], seen[i] = msg, true
				remaining--
			}
		}
	}

	return found
}

func TestGroupStream_PushesStateAndRunsIntents(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.groups.EXPECT().MyGroups(mock.Anything, "alice").Return(nil, nil).Once()
	s.groups.EXPECT().JoinByInviteCode(mock.Anything, "alice", "ABC123").Return(sampleGroup(), nil).Once()
	s.groups.EXPECT().CachedGroups(mock.Anything, "alice").
		Return([]*entity.GroupWithMembers{sampleGroup()}, nil).Maybe()

	srv := httptest.NewServer(s.e)
	defer srv.Close()

	conn := dialStream(t, srv, "/api/v1/ws/groups?access_token="+testToken)

	first := readUntil(t, conn, func(m handler.StreamMessage) bool { return m.Type == "state" })
	assert.Contains(t, first.Data, "userGroups")

	require.NoError(t, conn.WriteJSON(handler.StreamIntent{
		Action:  "joinGroup",
		Payload: json.RawMessage(`{"inviteCode":"ABC123"}`),
	}))
	result := readUntil(t, conn, func(m handler.StreamMessage) bool { return m.Type == "result" })
	assert.Equal(t, "joinGroup", result.Action)
	assert.Equal(t, viewmodel.StatusSuccess, result.Status)

	// A cache write is pushed as a fresh snapshot
	s.feed.Publish("members")
	state := readUntil(t, conn, func(m handler.StreamMessage) bool {
		data, ok := m.Data.(map[string]any)
		if m.Type != "state" || !ok {
			return false
		}
		groups, _ := data["userGroups"].([]any)

		return len(groups) == 1
	})
	assert.Equal(t, "state", state.Type)
}

func TestGroupStream_RejectsUnknownAndInvalidIntents(t *testing.T) {
	s := newTestServer(t)
	s.signedIn()
	s.groups.EXPECT().MyGroups(mock.Anything, "alice").Return(nil, nil).Once()

	srv := httptest.NewServer(s.e)
	defer srv.Close()

	conn := dialStream(t, srv, "/api/v1/ws/groups?access_token="+testToken)

	require.NoError(t, conn.WriteJSON(handler.StreamIntent{Action: "dance"}))
	unknown := readUntil(t, conn, func(m handler.StreamMessage) bool { return m.Type == "result" })
	assert.Equal(t, viewmodel.StatusError, unknown.Status)
	assert.Equal(t, "dance", unknown.Action)

	require.NoError(t, conn.WriteJSON(handler.StreamIntent{Action: "joinGroup", Payload: json.RawMessage(`{}`)}))
	invalid := readUntil(t, conn, func(m handler.StreamMessage) bool { return m.Type == "result" })
	assert.Equal(t, viewmodel.StatusError, invalid.Status)
}

func TestAuthStream_SignedOutThenSignIn(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().SignIn(mock.Anything, &usecase.SignInInput{Email: "alice@example.com", Password: "secret1"}).
		Return(&usecase.AuthOutput{User: &entity.User{ID: "alice"}, Token: "jwt"}, nil)

	srv := httptest.NewServer(s.e)
	defer srv.Close()

	conn := dialStream(t, srv, "/ws/auth")

	first := readUntil(t, conn, func(m handler.StreamMessage) bool { return m.Type == "state" })
	data, ok := first.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["isLoggedIn"])

	require.NoError(t, conn.WriteJSON(handler.StreamIntent{
		Action:  "signIn",
		Payload: json.RawMessage(`{"email":"alice@example.com","password":"secret1"}`),
	}))
	// The signed-in snapshot may be pushed before or after the intent result
	frames := readEach(t, conn,
		func(m handler.StreamMessage) bool { return m.Type == "result" },
		func(m handler.StreamMessage) bool {
			data, ok := m.Data.(map[string]any)

			return m.Type == "state" && ok && data["isLoggedIn"] == true
		},
	)
	assert.Equal(t, "signIn", frames[0].Action)
	assert.Equal(t, viewmodel.StatusSuccess, frames[0].Status)
}

func TestInvitationStream_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	srv := httptest.NewServer(s.e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws/invitations"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
