package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"smokebreak/config"
	deliverycontext "smokebreak/internal/delivery/context"
	"smokebreak/internal/domain/constants"
	"smokebreak/internal/domain/entity"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// recipient is a user with a deliverable push token.
type recipient struct {
	userID string
	token  string
}

// PushHandler turns invitation events into push notifications.
type PushHandler struct {
	verifyPushAuth  bool
	location        *time.Location
	logger          *slog.Logger
	notificationSvc service.NotificationService
	members         repository.RemoteMemberStore
	users           repository.RemoteUserStore
	clock           service.Clock
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	Members         repository.RemoteMemberStore
	Users           repository.RemoteUserStore
	Clock           service.Clock
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		location:        params.Config.Invitation.Location(),
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		members:         params.Members,
		users:           params.Users,
		clock:           params.Clock,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Notifier] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Notifier] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Notifier] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.InvitationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Notifier] Failed to parse invitation event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_type", string(event.Type)),
		slog.String("invitation_id", event.InvitationID),
	)

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Notifier] Processing invitation event", slog.String("group_id", event.GroupID))

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Notifier] Failed to process invitation event",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.InvitationEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent routes one event to its recipients.
func (h *PushHandler) processEvent(ctx context.Context, event *service.InvitationEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var (
		recipients []recipient
		msg        service.PushMessage
		err        error
	)

	switch event.Type {
	case service.InvitationEventCreated:
		now := h.clock.Now().In(h.location)
		recipients, err = h.groupRecipients(ctx, event, func(u *entity.User) bool {
			return u.Preferences.WorkingHours.Contains(now)
		})
		msg = createdMessage(event)

	case service.InvitationEventResponded:
		recipients, err = h.initiatorRecipient(ctx, event)
		msg = respondedMessage(event)

	case service.InvitationEventCancelled:
		recipients, err = h.groupRecipients(ctx, event, nil)
		msg = cancelledMessage(event)

	default:
		logger.Warn("[Notifier] Ignoring unknown event type")

		return nil
	}
	if err != nil {
		return err
	}

	if len(recipients) == 0 {
		logger.Info("[Notifier] No recipients to notify")

		return nil
	}

	sent, failed, invalid := h.send(ctx, recipients, msg)
	h.clearInvalidTokens(ctx, recipients, invalid)

	logger.Info("[Notifier] Notification sending completed",
		slog.Int("recipients", len(recipients)),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalid)),
	)

	return nil
}

// groupRecipients returns the active members of the event's group other than the initiator
// who accept notifications, have a push token and pass keep.
func (h *PushHandler) groupRecipients(
	ctx context.Context,
	event *service.InvitationEvent,
	keep func(*entity.User) bool,
) ([]recipient, error) {
	members, err := h.members.FindByGroup(ctx, event.GroupID)
	if err != nil {
		return nil, newRetryableError(errors.WithStack(err))
	}

	userIDs := make([]string, 0, len(members))
	for _, m := range members {
		if m.IsActive && m.UserID != event.InitiatorID {
			userIDs = append(userIDs, m.UserID)
		}
	}

	users, err := h.fetchUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]recipient, 0, len(users))
	for _, u := range users {
		if !deliverable(u) || (keep != nil && !keep(u)) {
			continue
		}
		out = append(out, recipient{userID: u.ID, token: u.FCMToken})
	}

	return out, nil
}

func (h *PushHandler) initiatorRecipient(ctx context.Context, event *service.InvitationEvent) ([]recipient, error) {
	user, err := h.users.Get(ctx, event.InitiatorID)
	if errors.Is(err, repository.ErrRemoteNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, newRetryableError(errors.WithStack(err))
	}
	if !deliverable(user) {
		return nil, nil
	}

	return []recipient{{userID: user.ID, token: user.FCMToken}}, nil
}

// fetchUsers reads users in chunks the remote store accepts.
func (h *PushHandler) fetchUsers(ctx context.Context, userIDs []string) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(userIDs))
	for start := 0; start < len(userIDs); start += repository.RemoteBatchLimit {
		end := min(start+repository.RemoteBatchLimit, len(userIDs))

		chunk, err := h.users.GetMany(ctx, userIDs[start:end])
		if err != nil {
			return nil, newRetryableError(errors.WithStack(err))
		}
		users = append(users, chunk...)
	}

	return users, nil
}

func deliverable(u *entity.User) bool {
	return u != nil && u.FCMToken != "" && u.Preferences.EnableNotifications
}

// send delivers msg in batches of the multicast limit and collects the results.
func (h *PushHandler) send(ctx context.Context, recipients []recipient, msg service.PushMessage) (sent, failed int, invalid []string) {
	const batchSize = 500

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	tokens := make([]string, 0, len(recipients))
	for _, r := range recipients {
		tokens = append(tokens, r.token)
	}

	for idx := 0; idx < len(tokens); idx += batchSize {
		end := min(idx+batchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalid, err := h.notificationSvc.SendBatchNotification(ctx, batch, msg)
		if err != nil {
			logger.Error("[Notifier] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			failed += len(batch)

			continue
		}

		sent += successCount
		failed += failureCount
		invalid = append(invalid, batchInvalid...)
	}

	return sent, failed, invalid
}

// clearInvalidTokens removes tokens the push service reported as unregistered from their users.
func (h *PushHandler) clearInvalidTokens(ctx context.Context, recipients []recipient, invalid []string) {
	if len(invalid) == 0 {
		return
	}

	owners := make(map[string]string, len(recipients))
	for _, r := range recipients {
		owners[r.token] = r.userID
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	now := h.clock.Now()
	for _, token := range invalid {
		userID, ok := owners[token]
		if !ok {
			continue
		}
		if err := h.users.UpdateFCMToken(ctx, userID, "", now); err != nil {
			logger.Warn("[Notifier] Failed to clear invalid push token",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
	}
}

func eventData(event *service.InvitationEvent) map[string]string {
	data := map[string]string{
		"type":          string(event.Type),
		"invitation_id": event.InvitationID,
		"group_id":      event.GroupID,
		"initiator_id":  event.InitiatorID,
	}
	if event.ResponderID != "" {
		data["responder_id"] = event.ResponderID
		data["response"] = event.Response
	}

	return data
}

func createdMessage(event *service.InvitationEvent) service.PushMessage {
	title := fmt.Sprintf("%s wants a smoke break", displayName(event.InitiatorName))
	if event.GroupName != "" {
		title = fmt.Sprintf("%s (%s)", title, event.GroupName)
	}

	parts := make([]string, 0, 3)
	if event.Message != "" {
		parts = append(parts, event.Message)
	}
	if event.Location != "" {
		parts = append(parts, "at "+event.Location)
	}
	if event.PlannedDuration > 0 {
		parts = append(parts, fmt.Sprintf("%d min", event.PlannedDuration))
	}
	body := strings.Join(parts, " · ")
	if body == "" {
		body = "Join the break?"
	}

	return service.PushMessage{
		Title:   title,
		Body:    body,
		Data:    eventData(event),
		Channel: service.ChannelBreakNotifications,
	}
}

func respondedMessage(event *service.InvitationEvent) service.PushMessage {
	var verb string
	switch entity.ResponseType(event.Response) {
	case entity.ResponseAccepted:
		verb = "is joining your break"
	case entity.ResponseDeclined:
		verb = "can't make it"
	case entity.ResponseMaybe:
		verb = "might join"
	default:
		verb = "responded"
	}

	return service.PushMessage{
		Title:   "Break invitation",
		Body:    fmt.Sprintf("%s %s", displayName(event.ResponderName), verb),
		Data:    eventData(event),
		Channel: service.ChannelGeneralNotifications,
	}
}

func cancelledMessage(event *service.InvitationEvent) service.PushMessage {
	return service.PushMessage{
		Title:   "Break cancelled",
		Body:    fmt.Sprintf("%s cancelled the break", displayName(event.InitiatorName)),
		Data:    eventData(event),
		Channel: service.ChannelGeneralNotifications,
	}
}

func displayName(name string) string {
	if name == "" {
		return "Someone"
	}

	return name
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
