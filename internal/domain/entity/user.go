// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

const (
	DefaultWorkStart       = "09:00"
	DefaultWorkEnd         = "17:00"
	DefaultMaxBreaksPerDay = 5

	clockLayout = "15:04"
)

// User is a person taking part in breaks. The ID is issued by the identity provider.
type User struct {
	ID          string          // Identity provider UID.
	Email       string          // Sign-in email.
	DisplayName string          // Name shown to other members.
	Department  string          // Free-text department, used for grouping colleagues.
	AvatarURL   string          // Optional profile picture.
	IsOnline    bool            // Set on sign-in, cleared on sign-out.
	FCMToken    string          // Push token of the user's current device, empty when unknown.
	Preferences UserPreferences // Notification and break preferences.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserPreferences holds per-user notification and break settings.
type UserPreferences struct {
	EnableNotifications bool         `json:"enableNotifications"`
	EnableVibration     bool         `json:"enableVibration"`
	EnableSound         bool         `json:"enableSound"`
	WorkingHours        WorkingHours `json:"workingHours"`
	MaxBreaksPerDay     int          `json:"maxBreaksPerDay"` // 0 means unlimited.
}

// WorkingHours is the window in which a user accepts break invitations.
type WorkingHours struct {
	StartTime   string `json:"startTime"`   // HH:mm
	EndTime     string `json:"endTime"`     // HH:mm
	WorkingDays []int  `json:"workingDays"` // ISO weekdays, 1=Monday .. 7=Sunday
}

// DefaultUserPreferences returns the preferences assigned to new accounts.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		EnableNotifications: true,
		EnableVibration:     true,
		EnableSound:         true,
		WorkingHours:        DefaultWorkingHours(),
		MaxBreaksPerDay:     DefaultMaxBreaksPerDay,
	}
}

// DefaultWorkingHours is 09:00-17:00, Monday to Friday.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		StartTime:   DefaultWorkStart,
		EndTime:     DefaultWorkEnd,
		WorkingDays: []int{1, 2, 3, 4, 5},
	}
}

// IsoWeekday converts time.Weekday to 1=Monday .. 7=Sunday.
func IsoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}

	return int(t.Weekday())
}

// Contains reports whether t falls inside the working window, using t's location.
// Unparseable bounds are treated as the whole day. A window whose end precedes
// its start wraps past midnight.
func (w WorkingHours) Contains(t time.Time) bool {
	if len(w.WorkingDays) > 0 && !slices.Contains(w.WorkingDays, IsoWeekday(t)) {
		return false
	}

	start, okStart := minuteOfDay(w.StartTime)
	end, okEnd := minuteOfDay(w.EndTime)
	if !okStart || !okEnd || start == end {
		return true
	}

	now := t.Hour()*60 + t.Minute()
	if start < end {
		return now >= start && now < end
	}

	return now >= start || now < end
}

// Validate checks the HH:mm bounds and weekday numbers.
func (w WorkingHours) Validate() bool {
	if _, ok := minuteOfDay(w.StartTime); !ok {
		return false
	}
	if _, ok := minuteOfDay(w.EndTime); !ok {
		return false
	}
	for _, d := range w.WorkingDays {
		if d < 1 || d > 7 {
			return false
		}
	}

	return true
}

func minuteOfDay(hhmm string) (int, bool) {
	parsed, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return 0, false
	}

	return parsed.Hour()*60 + parsed.Minute(), true
}
