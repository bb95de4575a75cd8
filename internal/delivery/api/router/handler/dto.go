package handler

import (
	"time"

	"smokebreak/internal/domain/entity"
	"smokebreak/internal/usecase"
)

// UserResponse is the public view of a profile. The push token is never returned.
type UserResponse struct {
	ID          string                 `json:"id"`
	Email       string                 `json:"email"`
	DisplayName string                 `json:"displayName"`
	Department  string                 `json:"department"`
	AvatarURL   string                 `json:"avatarUrl,omitempty"`
	IsOnline    bool                   `json:"isOnline"`
	Preferences entity.UserPreferences `json:"preferences"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	IsNewUser bool          `json:"isNewUser"`
}

type MemberResponse struct {
	UserID   string    `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
	IsActive bool      `json:"isActive"`
}

type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedBy   string    `json:"createdBy"`
	InviteCode  string    `json:"inviteCode,omitempty"`
	MaxMembers  int       `json:"maxMembers"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GroupWithMembersResponse keeps the memberIds/adminIds lists clients already read.
type GroupWithMembersResponse struct {
	GroupResponse
	MemberIDs []string         `json:"memberIds"`
	AdminIDs  []string         `json:"adminIds"`
	Members   []MemberResponse `json:"members"`
}

type InvitationResponse struct {
	ID              string                 `json:"id"`
	GroupID         string                 `json:"groupId"`
	InitiatorUserID string                 `json:"initiatorUserId"`
	InitiatorName   string                 `json:"initiatorName"`
	Message         string                 `json:"message"`
	Location        string                 `json:"location"`
	PlannedDuration int                    `json:"plannedDuration"`
	Responses       []entity.BreakResponse `json:"responses"`
	Status          string                 `json:"status"`
	ExpiresAt       time.Time              `json:"expiresAt"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type SessionResponse struct {
	ID             string    `json:"id"`
	InvitationID   string    `json:"invitationId"`
	GroupID        string    `json:"groupId"`
	ParticipantIDs []string  `json:"participantIds"`
	ActualDuration int       `json:"actualDuration"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Location       string    `json:"location"`
	Rating         int       `json:"rating,omitempty"`
	Feedback       string    `json:"feedback,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AnalyticsResponse struct {
	TodaySessions        int64   `json:"todaySessions"`
	TodayInvitationsSent int64   `json:"todayInvitationsSent"`
	WeeklyInvitations    int64   `json:"weeklyInvitations"`
	MonthlyInvitations   int64   `json:"monthlyInvitations"`
	TotalSessions        int64   `json:"totalSessions"`
	TotalBreakMinutes    int64   `json:"totalBreakMinutes"`
	TotalBreakTime       string  `json:"totalBreakTime"`
	AverageDuration      float64 `json:"averageDuration"`
	AverageRating        float64 `json:"averageRating"`
	RemainingBreaksToday int     `json:"remainingBreaksToday"`
}

func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Department:  u.Department,
		AvatarURL:   u.AvatarURL,
		IsOnline:    u.IsOnline,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		User:      ToUserResponse(out.User),
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		IsNewUser: out.IsNewUser,
	}
}

// toGroupResponse hides the invite code of groups listed to non-members.
func toGroupResponse(g *entity.Group, withCode bool) GroupResponse {
	resp := GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		IsPublic:    g.IsPublic,
		CreatedBy:   g.CreatedBy,
		MaxMembers:  g.MaxMembers,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if withCode || g.IsPublic {
		resp.InviteCode = g.InviteCode
	}

	return resp
}

func toGroupList(groups []*entity.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g, false))
	}

	return out
}

func ToGroupWithMembersResponse(g *entity.GroupWithMembers) *GroupWithMembersResponse {
	if g == nil {
		return nil
	}

	members := make([]MemberResponse, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, MemberResponse{
			UserID:   m.UserID,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
			IsActive: m.IsActive,
		})
	}

	return &GroupWithMembersResponse{
		GroupResponse: toGroupResponse(&g.Group, true),
		MemberIDs:     g.MemberIDs(),
		AdminIDs:      g.AdminIDs(),
		Members:       members,
	}
}

func ToGroupWithMembersList(groups []*entity.GroupWithMembers) []*GroupWithMembersResponse {
	out := make([]*GroupWithMembersResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ToGroupWithMembersResponse(g))
	}

	return out
}

func ToInvitationResponse(i *entity.BreakInvitation) *InvitationResponse {
	if i == nil {
		return nil
	}

	responses := i.Responses
	if responses == nil {
		responses = []entity.BreakResponse{}
	}

	return &InvitationResponse{
		ID:              i.ID,
		GroupID:         i.GroupID,
		InitiatorUserID: i.InitiatorUserID,
		InitiatorName:   i.InitiatorName,
		Message:         i.Message,
		Location:        i.Location,
		PlannedDuration: i.PlannedDuration,
		Responses:       responses,
		Status:          string(i.Status),
		ExpiresAt:       i.ExpiresAt,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func ToInvitationList(invitations []*entity.BreakInvitation) []*InvitationResponse {
	out := make([]*InvitationResponse, 0, len(invitations))
	for _, i := range invitations {
		out = append(out, ToInvitationResponse(i))
	}

	return out
}

func toSessionResponse(s *entity.BreakSession) *SessionResponse {
	return &SessionResponse{
		ID:             s.ID,
		InvitationID:   s.InvitationID,
		GroupID:        s.GroupID,
		ParticipantIDs: s.ParticipantIDs,
		ActualDuration: s.ActualDuration,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		Location:       s.Location,
		Rating:         s.Rating,
		Feedback:       s.Feedback,
		CreatedAt:      s.CreatedAt,
	}
}

func toSessionList(sessions []*entity.BreakSession) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}

	return out
}

func toAnalyticsResponse(a *entity.UserAnalytics) *AnalyticsResponse {
	return &AnalyticsResponse{
		TodaySessions:        a.TodaySessions,
		TodayInvitationsSent: a.TodayInvitationsSent,
		WeeklyInvitations:    a.WeeklyInvitations,
		MonthlyInvitations:   a.MonthlyInvitations,
		TotalSessions:        a.TotalSessions,
		TotalBreakMinutes:    a.TotalBreakMinutes,
		TotalBreakTime:       a.TotalBreakTime,
		AverageDuration:      a.AverageDuration,
		AverageRating:        a.AverageRating,
		RemainingBreaksToday: a.RemainingBreaksToday,
	}
}
