package service

import (
	"context"
)

// InvitationEventType names what happened to a break invitation.
type InvitationEventType string

const (
	InvitationEventCreated   InvitationEventType = "invitation.created"
	InvitationEventResponded InvitationEventType = "invitation.responded"
	InvitationEventCancelled InvitationEventType = "invitation.cancelled"
)

// InvitationEvent is published after an invitation write and consumed by the notifier worker.
type InvitationEvent struct {
	RequestID       string              `json:"request_id,omitempty"` // For distributed tracing
	Type            InvitationEventType `json:"type"`
	InvitationID    string              `json:"invitation_id"`
	GroupID         string              `json:"group_id"`
	GroupName       string              `json:"group_name,omitempty"`
	InitiatorID     string              `json:"initiator_id"`
	InitiatorName   string              `json:"initiator_name"`
	Message         string              `json:"message,omitempty"`
	Location        string              `json:"location,omitempty"`
	PlannedDuration int                 `json:"planned_duration,omitempty"`
	ExpiresAt       int64               `json:"expires_at,omitempty"` // Unix milliseconds

	// Set for invitation.responded
	ResponderID   string `json:"responder_id,omitempty"`
	ResponderName string `json:"responder_name,omitempty"`
	Response      string `json:"response,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInvitationEvent publishes an invitation event for async processing
	PublishInvitationEvent(ctx context.Context, event *InvitationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
