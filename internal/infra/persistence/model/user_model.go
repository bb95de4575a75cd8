package model

import (
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. IDs come from the identity provider.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID          string `gorm:"type:text;primaryKey"`
	Email       string `gorm:"type:text;not null;index"`
	DisplayName string `gorm:"type:text;not null"`
	Department  string `gorm:"type:text;not null;index"`
	AvatarURL   string `gorm:"type:text;not null"`
	IsOnline    bool   `gorm:"not null"`
	FCMToken    string `gorm:"column:fcm_token;type:text;not null"`
	CreatedAt   int64  `gorm:"not null;autoCreateTime:false"` // Unix milliseconds
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"` // Unix milliseconds

	Preferences datatypes.JSONType[PreferencesData] `gorm:"type:text;not null"`

	Memberships []MemberModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PreferencesData is the JSON document stored in users.preferences.
type PreferencesData struct {
	EnableNotifications bool             `json:"enableNotifications"`
	EnableVibration     bool             `json:"enableVibration"`
	EnableSound         bool             `json:"enableSound"`
	WorkingHours        WorkingHoursData `json:"workingHours"`
	MaxBreaksPerDay     int              `json:"maxBreaksPerDay"`
}

// WorkingHoursData is the JSON form of a working window.
type WorkingHoursData struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	WorkingDays []int  `json:"workingDays"`
}
