// Package entity contains the core business objects of the project.
package entity

import "time"

// DefaultPlannedDuration is the break length in minutes when none is given.
const DefaultPlannedDuration = 10

// BreakInvitationStatus is the lifecycle state of an invitation.
type BreakInvitationStatus string

const (
	InvitationPending   BreakInvitationStatus = "PENDING"
	InvitationActive    BreakInvitationStatus = "ACTIVE"
	InvitationCompleted BreakInvitationStatus = "COMPLETED"
	InvitationCancelled BreakInvitationStatus = "CANCELLED"
	InvitationExpired   BreakInvitationStatus = "EXPIRED"
)

// IsValid checks if the status is a known value.
func (s BreakInvitationStatus) IsValid() bool {
	switch s {
	case InvitationPending, InvitationActive, InvitationCompleted, InvitationCancelled, InvitationExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s BreakInvitationStatus) IsTerminal() bool {
	switch s {
	case InvitationCompleted, InvitationCancelled, InvitationExpired:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the invitation lifecycle:
// PENDING -> ACTIVE | CANCELLED | EXPIRED | COMPLETED, ACTIVE -> CANCELLED | COMPLETED.
func (s BreakInvitationStatus) CanTransitionTo(next BreakInvitationStatus) bool {
	switch s {
	case InvitationPending:
		switch next {
		case InvitationActive, InvitationCancelled, InvitationExpired, InvitationCompleted:
			return true
		}
	case InvitationActive:
		switch next {
		case InvitationCancelled, InvitationCompleted:
			return true
		}
	}

	return false
}

// ResponseType is a participant's answer to an invitation.
type ResponseType string

const (
	ResponsePending  ResponseType = "PENDING"
	ResponseAccepted ResponseType = "ACCEPTED"
	ResponseDeclined ResponseType = "DECLINED"
	ResponseMaybe    ResponseType = "MAYBE"
)

// IsAnswer reports whether r is a value a participant may submit.
func (r ResponseType) IsAnswer() bool {
	switch r {
	case ResponseAccepted, ResponseDeclined, ResponseMaybe:
		return true
	default:
		return false
	}
}

// DeclineReason explains a declined invitation.
type DeclineReason string

const (
	DeclineBusy          DeclineReason = "BUSY"
	DeclineWillGoLater   DeclineReason = "WILL_GO_LATER"
	DeclineNotInterested DeclineReason = "NOT_INTERESTED"
	DeclineInMeeting     DeclineReason = "IN_MEETING"
	DeclineCustom        DeclineReason = "CUSTOM"
)

// IsValid checks if the reason is a known value. Empty is allowed.
func (d DeclineReason) IsValid() bool {
	switch d {
	case "", DeclineBusy, DeclineWillGoLater, DeclineNotInterested, DeclineInMeeting, DeclineCustom:
		return true
	default:
		return false
	}
}

// BreakResponse is one participant's answer, embedded in the invitation.
type BreakResponse struct {
	UserID        string        `json:"userId"`
	UserName      string        `json:"userName"`
	Response      ResponseType  `json:"response"`
	Reason        DeclineReason `json:"reason,omitempty"`
	CustomMessage string        `json:"customMessage,omitempty"`
	RespondedAt   time.Time     `json:"respondedAt"`
	ResponseTime  int64         `json:"responseTime"` // Milliseconds between invitation creation and the answer.
}

// BreakInvitation is a broadcast offer to take a break together.
type BreakInvitation struct {
	ID              string
	GroupID         string
	InitiatorUserID string
	InitiatorName   string
	Message         string
	Location        string
	PlannedDuration int // Minutes.
	Responses       []BreakResponse
	Status          BreakInvitationStatus
	ExpiresAt       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOpen reports whether the invitation still accepts responses at now.
func (i *BreakInvitation) IsOpen(now time.Time) bool {
	if i.Status != InvitationPending && i.Status != InvitationActive {
		return false
	}

	return i.Status == InvitationActive || now.Before(i.ExpiresAt)
}

// UpsertResponse replaces the entry for resp.UserID or appends a new one.
func (i *BreakInvitation) UpsertResponse(resp BreakResponse) {
	for idx := range i.Responses {
		if i.Responses[idx].UserID == resp.UserID {
			i.Responses[idx] = resp

			return
		}
	}
	i.Responses = append(i.Responses, resp)
}

// ResponseFor returns the entry for userID, or nil.
func (i *BreakInvitation) ResponseFor(userID string) *BreakResponse {
	for idx := range i.Responses {
		if i.Responses[idx].UserID == userID {
			return &i.Responses[idx]
		}
	}

	return nil
}

// AcceptedUserIDs lists responders who accepted.
func (i *BreakInvitation) AcceptedUserIDs() []string {
	ids := make([]string, 0, len(i.Responses))
	for _, r := range i.Responses {
		if r.Response == ResponseAccepted {
			ids = append(ids, r.UserID)
		}
	}

	return ids
}
