package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"smokebreak/config"
	"smokebreak/internal/delivery/api/middleware"
	deliverycontext "smokebreak/internal/delivery/context"
	"smokebreak/internal/domain/entity"
	domainerrors "smokebreak/internal/domain/errors"
	"smokebreak/internal/usecase"
	"smokebreak/internal/viewmodel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	messageTypeState  = "state"
	messageTypeResult = "result"

	maxIntentSize = 16 << 10
	resultBuffer  = 8
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Factory *viewmodel.Factory
	Config  *config.Config
	Logger  *slog.Logger
}

// StreamHandler serves view-model state over WebSocket. Each connection owns one view-model:
// every state change is pushed as a snapshot and client intents run one at a time.
type StreamHandler struct {
	factory      *viewmodel.Factory
	upgrader     websocket.Upgrader
	pingInterval time.Duration
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		factory: params.Factory,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		pingInterval: params.Config.WebSocket.PingInterval,
		writeTimeout: params.Config.WebSocket.WriteTimeout,
		logger:       params.Logger,
	}
}

// StreamIntent is a client request sent over a stream.
type StreamIntent struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// StreamMessage is a server frame: a state snapshot or the result of an intent.
type StreamMessage struct {
	Type    string           `json:"type"`
	Action  string           `json:"action,omitempty"`
	Status  viewmodel.Status `json:"status,omitempty"`
	Data    any              `json:"data,omitempty"`
	Message string           `json:"message,omitempty"`
}

type AuthStateResponse struct {
	IsLoading   bool          `json:"isLoading"`
	IsLoggedIn  bool          `json:"isLoggedIn"`
	AuthError   string        `json:"authError,omitempty"`
	CurrentUser *UserResponse `json:"currentUser"`
}

type GroupStateResponse struct {
	IsLoading  bool                        `json:"isLoading"`
	GroupError string                      `json:"groupError,omitempty"`
	UserGroups []*GroupWithMembersResponse `json:"userGroups"`
}

type InvitationStateResponse struct {
	IsLoading               bool                  `json:"isLoading"`
	Error                   string                `json:"error,omitempty"`
	ActiveInvitations       []*InvitationResponse `json:"activeInvitations"`
	UserInvitations         []*InvitationResponse `json:"userInvitations"`
	TodayInvitationCount    int64                 `json:"todayInvitationCount"`
	CreateInvitationSuccess bool                  `json:"createInvitationSuccess"`
}

// Intent payloads that address an existing resource.
type (
	UpdateGroupIntent struct {
		GroupID string `json:"groupId" validate:"required"`
		UpdateGroupRequest
	}
	GroupIntent struct {
		GroupID string `json:"groupId" validate:"required"`
	}
	JoinGroupIntent struct {
		InviteCode string `json:"inviteCode" validate:"required"`
	}
	RespondIntent struct {
		InvitationID string `json:"invitationId" validate:"required"`
		RespondRequest
	}
	InvitationIntent struct {
		InvitationID string `json:"invitationId" validate:"required"`
	}
	DeclineIntent struct {
		InvitationID  string `json:"invitationId" validate:"required"`
		Reason        string `json:"reason" validate:"omitempty,oneof=BUSY WILL_GO_LATER NOT_INTERESTED IN_MEETING CUSTOM"`
		CustomMessage string `json:"customMessage" validate:"max=500"`
	}
	MaybeIntent struct {
		InvitationID string `json:"invitationId" validate:"required"`
		Message      string `json:"message" validate:"max=500"`
	}
	OnlineStatusIntent struct {
		Online bool `json:"online"`
	}
)

type streamAction func(ctx context.Context, payload json.RawMessage) StreamMessage

func toAuthState(s viewmodel.AuthState) any {
	return AuthStateResponse{
		IsLoading:   s.IsLoading,
		IsLoggedIn:  s.IsLoggedIn,
		AuthError:   s.AuthError,
		CurrentUser: ToUserResponse(s.CurrentUser),
	}
}

func toGroupState(s viewmodel.GroupState) any {
	return GroupStateResponse{
		IsLoading:  s.IsLoading,
		GroupError: s.GroupError,
		UserGroups: ToGroupWithMembersList(s.UserGroups),
	}
}

func toInvitationState(s viewmodel.InvitationState) any {
	return InvitationStateResponse{
		IsLoading:               s.IsLoading,
		Error:                   s.Error,
		ActiveInvitations:       ToInvitationList(s.ActiveInvitations),
		UserInvitations:         ToInvitationList(s.UserInvitations),
		TodayInvitationCount:    s.TodayInvitationCount,
		CreateInvitationSuccess: s.CreateInvitationSuccess,
	}
}

// Auth streams the sign-in state. The connection may start signed out; a token in the
// Authorization header or `access_token` query restores the session.
func (h *StreamHandler) Auth(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	vm := h.factory.Auth(ctx, middleware.BearerToken(c))
	defer vm.Close()

	states, unsubscribe := vm.Subscribe()
	defer unsubscribe()

	actions := map[string]streamAction{
		"signIn": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req SignInRequest
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.SignIn(ctx, &usecase.SignInInput{
				Email:    req.Email,
				Password: req.Password,
				FCMToken: req.FCMToken,
			}), renderAuth)
		},
		"signUp": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req SignUpRequest
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.SignUp(ctx, &usecase.SignUpInput{
				Email:       req.Email,
				Password:    req.Password,
				DisplayName: req.DisplayName,
				Department:  req.Department,
				FCMToken:    req.FCMToken,
			}), renderAuth)
		},
		"signInWithGoogle": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req GoogleSignInRequest
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{
				IDToken:  req.IDToken,
				FCMToken: req.FCMToken,
			}), renderAuth)
		},
		"signOut": func(ctx context.Context, _ json.RawMessage) StreamMessage {
			return resultOf[struct{}](vm.SignOut(ctx), nil)
		},
		"resetPassword": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req PasswordResetRequest
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf[struct{}](vm.ResetPassword(ctx, req.Email), nil)
		},
		"updateOnlineStatus": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req OnlineStatusIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}
			vm.UpdateOnlineStatus(ctx, req.Online)

			return resultOf[struct{}](viewmodel.Success(struct{}{}), nil)
		},
		"clearError": func(context.Context, json.RawMessage) StreamMessage {
			vm.ClearError()

			return resultOf[struct{}](viewmodel.Success(struct{}{}), nil)
		},
	}

	serveStream(ctx, h, conn, h.streamLogger(c, "auth"), states, toAuthState, actions)

	return nil
}

// Groups streams the caller's groups.
func (h *StreamHandler) Groups(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	vm := h.factory.Groups(ctx, userID)
	defer vm.Close()

	states, unsubscribe := vm.Subscribe()
	defer unsubscribe()

	actions := map[string]streamAction{
		"createGroup": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req CreateGroupRequest
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.CreateGroup(ctx, &usecase.CreateGroupInput{
				Name:        req.Name,
				Description: req.Description,
				IsPublic:    req.IsPublic,
				MaxMembers:  req.MaxMembers,
			}), renderGroup)
		},
		"updateGroup": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req UpdateGroupIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.UpdateGroup(ctx, req.GroupID, &usecase.UpdateGroupInput{
				Name:        req.Name,
				Description: req.Description,
				IsPublic:    req.IsPublic,
				MaxMembers:  req.MaxMembers,
			}), renderGroup)
		},
		"joinGroup": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req JoinGroupIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.JoinGroup(ctx, req.InviteCode), renderGroup)
		},
		"leaveGroup": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req GroupIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf[struct{}](vm.LeaveGroup(ctx, req.GroupID), nil)
		},
		"refresh": func(ctx context.Context, _ json.RawMessage) StreamMessage {
			return resultOf[struct{}](vm.Refresh(ctx), nil)
		},
		"clearError": func(context.Context, json.RawMessage) StreamMessage {
			vm.ClearError()

			return resultOf[struct{}](viewmodel.Success(struct{}{}), nil)
		},
	}

	serveStream(ctx, h, conn, h.streamLogger(c, "groups"), states, toGroupState, actions)

	return nil
}

// Invitations streams the caller's open and started invitations.
func (h *StreamHandler) Invitations(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	vm := h.factory.Invitations(ctx, userID)
	defer vm.Close()

	states, unsubscribe := vm.Subscribe()
	defer unsubscribe()

	actions := map[string]streamAction{
		"createInvitation": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req CreateInvitationRequest
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.CreateInvitation(ctx, &usecase.CreateInvitationInput{
				GroupID:         req.GroupID,
				Message:         req.Message,
				Location:        req.Location,
				PlannedDuration: req.PlannedDuration,
			}), renderInvitation)
		},
		"respond": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req RespondIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.Respond(ctx, &usecase.RespondInput{
				InvitationID:  req.InvitationID,
				Response:      entity.ResponseType(req.Response),
				Reason:        entity.DeclineReason(req.Reason),
				CustomMessage: req.CustomMessage,
			}), renderInvitation)
		},
		"accept": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req InvitationIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.Accept(ctx, req.InvitationID), renderInvitation)
		},
		"decline": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req DeclineIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.Decline(ctx, req.InvitationID, entity.DeclineReason(req.Reason), req.CustomMessage), renderInvitation)
		},
		"maybe": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req MaybeIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.Maybe(ctx, req.InvitationID, req.Message), renderInvitation)
		},
		"cancel": func(ctx context.Context, payload json.RawMessage) StreamMessage {
			var req InvitationIntent
			if err := decodeIntent(c, payload, &req); err != nil {
				return failedIntent(err)
			}

			return resultOf(vm.Cancel(ctx, req.InvitationID), renderInvitation)
		},
		"expireOld": func(ctx context.Context, _ json.RawMessage) StreamMessage {
			return resultOf(vm.ExpireOldInvitations(ctx), func(n int64) any {
				return CountResponse{Count: n}
			})
		},
		"refresh": func(ctx context.Context, _ json.RawMessage) StreamMessage {
			vm.Refresh(ctx)

			return resultOf[struct{}](viewmodel.Success(struct{}{}), nil)
		},
		"clearError": func(context.Context, json.RawMessage) StreamMessage {
			vm.ClearError()

			return resultOf[struct{}](viewmodel.Success(struct{}{}), nil)
		},
		"clearCreateSuccess": func(context.Context, json.RawMessage) StreamMessage {
			vm.ClearCreateSuccess()

			return resultOf[struct{}](viewmodel.Success(struct{}{}), nil)
		},
	}

	serveStream(ctx, h, conn, h.streamLogger(c, "invitations"), states, toInvitationState, actions)

	return nil
}

func (h *StreamHandler) streamLogger(c echo.Context, name string) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).With(slog.String("stream", name))
}

func renderAuth(out *usecase.AuthOutput) any { return toAuthResponse(out) }

func renderGroup(g *entity.GroupWithMembers) any { return ToGroupWithMembersResponse(g) }

func renderInvitation(i *entity.BreakInvitation) any { return ToInvitationResponse(i) }

func resultOf[T any](r viewmodel.Resource[T], render func(T) any) StreamMessage {
	msg := StreamMessage{Type: messageTypeResult, Status: r.Status, Message: r.Message}
	if r.IsSuccess() && render != nil {
		msg.Data = render(r.Data)
	}

	return msg
}

func failedIntent(err error) StreamMessage {
	return StreamMessage{Type: messageTypeResult, Status: viewmodel.StatusError, Message: viewmodel.ErrorMessage(err)}
}

// decodeIntent unmarshals and validates an intent payload with the server's validator.
func decodeIntent(c echo.Context, payload json.RawMessage, req any) error {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if err := json.Unmarshal(payload, req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid payload")
	}

	return errors.WithStack(c.Validate(req))
}

// serveStream pumps state snapshots and intent results to conn until either side stops.
// It returns after both pumps have exited and the connection is closed.
func serveStream[S any](
	ctx context.Context,
	h *StreamHandler,
	conn *websocket.Conn,
	logger *slog.Logger,
	states <-chan S,
	render func(S) any,
	actions map[string]streamAction,
) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan StreamMessage, resultBuffer)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		writePump(ctx, h, conn, logger, states, render, results)
	}()

	readPump(ctx, h, conn, logger, actions, results)
	cancel()
	wg.Wait()
}

func readPump(
	ctx context.Context,
	h *StreamHandler,
	conn *websocket.Conn,
	logger *slog.Logger,
	actions map[string]streamAction,
	results chan<- StreamMessage,
) {
	pongWait := 2 * h.pingInterval

	conn.SetReadLimit(maxIntentSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var intent StreamIntent
		if err := conn.ReadJSON(&intent); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Stream read failed", slog.Any("error", err))
			}

			return
		}

		var msg StreamMessage
		if action, ok := actions[intent.Action]; ok {
			msg = action(ctx, intent.Payload)
		} else {
			msg = StreamMessage{Type: messageTypeResult, Status: viewmodel.StatusError, Message: "Unknown action"}
		}
		msg.Action = intent.Action

		select {
		case results <- msg:
		case <-ctx.Done():
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

func writePump[S any](
	ctx context.Context,
	h *StreamHandler,
	conn *websocket.Conn,
	logger *slog.Logger,
	states <-chan S,
	render func(S) any,
	results <-chan StreamMessage,
) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	write := func(msg StreamMessage) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := conn.WriteJSON(msg); err != nil {
			logger.Debug("Stream write failed", slog.Any("error", err))

			return false
		}

		return true
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(h.writeTimeout))

			return
		case state, ok := <-states:
			if !ok {
				return
			}
			if !write(StreamMessage{Type: messageTypeState, Data: render(state)}) {
				return
			}
		case msg := <-results:
			if !write(msg) {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
