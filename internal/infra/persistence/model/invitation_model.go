package model

import (
	"gorm.io/datatypes"
)

// BreakInvitationModel mirrors the 'break_invitations' table.
// Responses are embedded as a JSON array, as in the remote document.
type BreakInvitationModel struct {
	ID              string `gorm:"type:text;primaryKey"`
	GroupID         string `gorm:"type:text;not null;index"`
	InitiatorUserID string `gorm:"type:text;not null;index"`
	InitiatorName   string `gorm:"type:text;not null"`
	Message         string `gorm:"type:text;not null"`
	Location        string `gorm:"type:text;not null"`
	PlannedDuration int    `gorm:"not null"`
	Status          string `gorm:"type:text;not null;index"`
	ExpiresAt       int64  `gorm:"not null"`
	CreatedAt       int64  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt       int64  `gorm:"not null;autoUpdateTime:false"`

	Responses datatypes.JSONSlice[ResponseData] `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (BreakInvitationModel) TableName() string {
	return "break_invitations"
}

// ResponseData is one element of break_invitations.responses.
type ResponseData struct {
	UserID        string `json:"userId"`
	UserName      string `json:"userName"`
	Response      string `json:"response"`
	Reason        string `json:"reason,omitempty"`
	CustomMessage string `json:"customMessage,omitempty"`
	RespondedAt   int64  `json:"respondedAt"`
	ResponseTime  int64  `json:"responseTime"`
}

// BreakSessionModel mirrors the 'break_sessions' table.
type BreakSessionModel struct {
	ID             string `gorm:"type:text;primaryKey"`
	InvitationID   string `gorm:"type:text;not null;index"`
	GroupID        string `gorm:"type:text;not null;index"`
	ActualDuration int    `gorm:"not null"`
	StartTime      int64  `gorm:"not null"`
	EndTime        int64  `gorm:"not null"`
	Location       string `gorm:"type:text;not null"`
	Rating         int    `gorm:"not null"`
	Feedback       string `gorm:"type:text;not null"`
	CreatedAt      int64  `gorm:"not null;index;autoCreateTime:false"`

	ParticipantIDs datatypes.JSONSlice[string] `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (BreakSessionModel) TableName() string {
	return "break_sessions"
}
