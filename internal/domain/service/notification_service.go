package service

import (
	"context"
)

// PushChannel is the Android notification channel a message is posted to.
type PushChannel string

const (
	// ChannelBreakNotifications carries break invitations at high importance.
	ChannelBreakNotifications PushChannel = "break_notifications"
	// ChannelGeneralNotifications carries everything else at default importance.
	ChannelGeneralNotifications PushChannel = "general_notifications"
)

// IsHighPriority reports whether messages on the channel should wake the device.
func (c PushChannel) IsHighPriority() bool {
	return c == ChannelBreakNotifications
}

// PushMessage is a single notification payload.
type PushMessage struct {
	Title   string
	Body    string
	Data    map[string]string
	Channel PushChannel
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, msg PushMessage) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token string, msg PushMessage) error
}
