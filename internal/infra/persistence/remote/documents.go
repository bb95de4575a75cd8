package remote

import (
	"time"

	"smokebreak/internal/domain/entity"
)

type userDocument struct {
	ID          string              `docstore:"id"`
	Email       string              `docstore:"email"`
	DisplayName string              `docstore:"display_name"`
	Department  string              `docstore:"department"`
	AvatarURL   string              `docstore:"avatar_url"`
	IsOnline    bool                `docstore:"is_online"`
	FCMToken    string              `docstore:"fcm_token"`
	Preferences preferencesDocument `docstore:"preferences"`
	CreatedAt   int64               `docstore:"created_at"`
	UpdatedAt   int64               `docstore:"updated_at"`
}

type preferencesDocument struct {
	EnableNotifications bool   `docstore:"enable_notifications"`
	EnableVibration     bool   `docstore:"enable_vibration"`
	EnableSound         bool   `docstore:"enable_sound"`
	WorkStart           string `docstore:"work_start"`
	WorkEnd             string `docstore:"work_end"`
	WorkingDays         []int  `docstore:"working_days"`
	MaxBreaksPerDay     int    `docstore:"max_breaks_per_day"`
}

type groupDocument struct {
	ID          string `docstore:"id"`
	Name        string `docstore:"name"`
	Description string `docstore:"description"`
	IsPublic    bool   `docstore:"is_public"`
	CreatedBy   string `docstore:"created_by"`
	InviteCode  string `docstore:"invite_code"`
	MaxMembers  int    `docstore:"max_members"`
	IsActive    bool   `docstore:"is_active"`
	CreatedAt   int64  `docstore:"created_at"`
	UpdatedAt   int64  `docstore:"updated_at"`
}

// memberDocument is keyed by "<groupId>_<userId>".
type memberDocument struct {
	ID       string `docstore:"id"`
	UserID   string `docstore:"user_id"`
	GroupID  string `docstore:"group_id"`
	Role     string `docstore:"role"`
	JoinedAt int64  `docstore:"joined_at"`
	IsActive bool   `docstore:"is_active"`
}

type invitationDocument struct {
	ID              string             `docstore:"id"`
	GroupID         string             `docstore:"group_id"`
	InitiatorUserID string             `docstore:"initiator_user_id"`
	InitiatorName   string             `docstore:"initiator_name"`
	Message         string             `docstore:"message"`
	Location        string             `docstore:"location"`
	PlannedDuration int                `docstore:"planned_duration"`
	Responses       []responseDocument `docstore:"responses"`
	Status          string             `docstore:"status"`
	ExpiresAt       int64              `docstore:"expires_at"`
	CreatedAt       int64              `docstore:"created_at"`
	UpdatedAt       int64              `docstore:"updated_at"`
}

type responseDocument struct {
	UserID        string `docstore:"user_id"`
	UserName      string `docstore:"user_name"`
	Response      string `docstore:"response"`
	Reason        string `docstore:"reason"`
	CustomMessage string `docstore:"custom_message"`
	RespondedAt   int64  `docstore:"responded_at"`
	ResponseTime  int64  `docstore:"response_time"`
}

func memberKey(groupID, userID string) string {
	return groupID + "_" + userID
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}

	return time.UnixMilli(ms).UTC()
}

// --- Mapper Functions ---

func toUserDomain(doc *userDocument) *entity.User {
	return &entity.User{
		ID:          doc.ID,
		Email:       doc.Email,
		DisplayName: doc.DisplayName,
		Department:  doc.Department,
		AvatarURL:   doc.AvatarURL,
		IsOnline:    doc.IsOnline,
		FCMToken:    doc.FCMToken,
		Preferences: entity.UserPreferences{
			EnableNotifications: doc.Preferences.EnableNotifications,
			EnableVibration:     doc.Preferences.EnableVibration,
			EnableSound:         doc.Preferences.EnableSound,
			WorkingHours: entity.WorkingHours{
				StartTime:   doc.Preferences.WorkStart,
				EndTime:     doc.Preferences.WorkEnd,
				WorkingDays: doc.Preferences.WorkingDays,
			},
			MaxBreaksPerDay: doc.Preferences.MaxBreaksPerDay,
		},
		CreatedAt: fromMillis(doc.CreatedAt),
		UpdatedAt: fromMillis(doc.UpdatedAt),
	}
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Department:  user.Department,
		AvatarURL:   user.AvatarURL,
		IsOnline:    user.IsOnline,
		FCMToken:    user.FCMToken,
		Preferences: preferencesDocument{
			EnableNotifications: user.Preferences.EnableNotifications,
			EnableVibration:     user.Preferences.EnableVibration,
			EnableSound:         user.Preferences.EnableSound,
			WorkStart:           user.Preferences.WorkingHours.StartTime,
			WorkEnd:             user.Preferences.WorkingHours.EndTime,
			WorkingDays:         user.Preferences.WorkingHours.WorkingDays,
			MaxBreaksPerDay:     user.Preferences.MaxBreaksPerDay,
		},
		CreatedAt: toMillis(user.CreatedAt),
		UpdatedAt: toMillis(user.UpdatedAt),
	}
}

func toGroupDomain(doc *groupDocument) *entity.Group {
	return &entity.Group{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		IsPublic:    doc.IsPublic,
		CreatedBy:   doc.CreatedBy,
		InviteCode:  doc.InviteCode,
		MaxMembers:  doc.MaxMembers,
		IsActive:    doc.IsActive,
		CreatedAt:   fromMillis(doc.CreatedAt),
		UpdatedAt:   fromMillis(doc.UpdatedAt),
	}
}

func fromGroupDomain(group *entity.Group) *groupDocument {
	return &groupDocument{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		IsPublic:    group.IsPublic,
		CreatedBy:   group.CreatedBy,
		InviteCode:  group.InviteCode,
		MaxMembers:  group.MaxMembers,
		IsActive:    group.IsActive,
		CreatedAt:   toMillis(group.CreatedAt),
		UpdatedAt:   toMillis(group.UpdatedAt),
	}
}

func toMemberDomain(doc *memberDocument) *entity.Member {
	return &entity.Member{
		UserID:   doc.UserID,
		GroupID:  doc.GroupID,
		Role:     entity.GroupRole(doc.Role),
		JoinedAt: fromMillis(doc.JoinedAt),
		IsActive: doc.IsActive,
	}
}

func fromMemberDomain(member *entity.Member) *memberDocument {
	return &memberDocument{
		ID:       memberKey(member.GroupID, member.UserID),
		UserID:   member.UserID,
		GroupID:  member.GroupID,
		Role:     string(member.Role),
		JoinedAt: toMillis(member.JoinedAt),
		IsActive: member.IsActive,
	}
}

func toInvitationDomain(doc *invitationDocument) *entity.BreakInvitation {
	responses := make([]entity.BreakResponse, 0, len(doc.Responses))
	for _, r := range doc.Responses {
		responses = append(responses, entity.BreakResponse{
			UserID:        r.UserID,
			UserName:      r.UserName,
			Response:      entity.ResponseType(r.Response),
			Reason:        entity.DeclineReason(r.Reason),
			CustomMessage: r.CustomMessage,
			RespondedAt:   fromMillis(r.RespondedAt),
			ResponseTime:  r.ResponseTime,
		})
	}

	return &entity.BreakInvitation{
		ID:              doc.ID,
		GroupID:         doc.GroupID,
		InitiatorUserID: doc.InitiatorUserID,
		InitiatorName:   doc.InitiatorName,
		Message:         doc.Message,
		Location:        doc.Location,
		PlannedDuration: doc.PlannedDuration,
		Responses:       responses,
		Status:          entity.BreakInvitationStatus(doc.Status),
		ExpiresAt:       fromMillis(doc.ExpiresAt),
		CreatedAt:       fromMillis(doc.CreatedAt),
		UpdatedAt:       fromMillis(doc.UpdatedAt),
	}
}

func fromInvitationDomain(invitation *entity.BreakInvitation) *invitationDocument {
	responses := make([]responseDocument, 0, len(invitation.Responses))
	for _, r := range invitation.Responses {
		responses = append(responses, responseDocument{
			UserID:        r.UserID,
			UserName:      r.UserName,
			Response:      string(r.Response),
			Reason:        string(r.Reason),
			CustomMessage: r.CustomMessage,
			RespondedAt:   toMillis(r.RespondedAt),
			ResponseTime:  r.ResponseTime,
		})
	}

	return &invitationDocument{
		ID:              invitation.ID,
		GroupID:         invitation.GroupID,
		InitiatorUserID: invitation.InitiatorUserID,
		InitiatorName:   invitation.InitiatorName,
		Message:         invitation.Message,
		Location:        invitation.Location,
		PlannedDuration: invitation.PlannedDuration,
		Responses:       responses,
		Status:          string(invitation.Status),
		ExpiresAt:       toMillis(invitation.ExpiresAt),
		CreatedAt:       toMillis(invitation.CreatedAt),
		UpdatedAt:       toMillis(invitation.UpdatedAt),
	}
}
