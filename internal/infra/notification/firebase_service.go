// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import (
	"context"
	"time"

	"smokebreak/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// Firebase limits multicast sends to 500 tokens per request.
const maxMulticastTokens = 500

// highPriorityTTL keeps break invitations from arriving after they have expired.
const highPriorityTTL = 10 * time.Minute

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, app *firebase.App) (service.NotificationService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token string, msg service.PushMessage) error {
	message := &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
		Android:      androidConfig(msg.Channel),
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > maxMulticastTokens {
		return 0, 0, nil, errTooManyTokens(len(tokens))
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
		Android:      androidConfig(msg.Channel),
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil && isInvalidTokenError(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

func errTooManyTokens(n int) error {
	return errors.Errorf("token count exceeds limit: %d (max %d)", n, maxMulticastTokens)
}

// IsInvalidToken reports whether err means the token will never be deliverable again.
func IsInvalidToken(err error) bool {
	return err != nil && isInvalidTokenError(errors.Cause(err))
}

func isInvalidTokenError(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

// androidConfig posts the message to the channel; break invitations wake the device.
func androidConfig(channel service.PushChannel) *messaging.AndroidConfig {
	if channel == "" {
		channel = service.ChannelGeneralNotifications
	}

	cfg := &messaging.AndroidConfig{
		Priority: "normal",
		Notification: &messaging.AndroidNotification{
			ChannelID: string(channel),
		},
	}

	if channel.IsHighPriority() {
		ttl := highPriorityTTL
		cfg.Priority = "high"
		cfg.TTL = &ttl
		cfg.Notification.Priority = messaging.PriorityHigh
		cfg.Notification.DefaultSound = true
		cfg.Notification.DefaultVibrateTimings = true
	}

	return cfg
}
