// Package entity contains the core business objects of the project.
package entity

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// BreakSession is the record of a break that took place.
type BreakSession struct {
	ID             string
	InvitationID   string
	GroupID        string
	ParticipantIDs []string
	ActualDuration int // Minutes.
	StartTime      time.Time
	EndTime        time.Time
	Location       string
	Rating         int // 0 when unrated, otherwise 1..5.
	Feedback       string
	CreatedAt      time.Time
}

// HasParticipant reports whether userID took part in the break.
func (s *BreakSession) HasParticipant(userID string) bool {
	for _, id := range s.ParticipantIDs {
		if id == userID {
			return true
		}
	}

	return false
}

// UserAnalytics summarizes a user's break history.
type UserAnalytics struct {
	UserID               string
	TodaySessions        int64
	TodayInvitationsSent int64
	WeeklyInvitations    int64
	MonthlyInvitations   int64
	TotalSessions        int64
	TotalBreakMinutes    int64
	TotalBreakTime       string // Human readable, e.g. "2h 15m".
	AverageDuration      float64
	AverageRating        float64
	RemainingBreaksToday int // -1 when unlimited.
}
