// Package entity contains the core business objects of the project.
package entity

import "time"

// DefaultMaxMembers caps a group's size when the creator does not choose one.
const DefaultMaxMembers = 20

// Group is a set of coworkers who take breaks together.
type Group struct {
	ID          string
	Name        string
	Description string
	IsPublic    bool   // Public groups are listed to everyone, private ones are join-by-code only.
	CreatedBy   string // User ID of the creator.
	InviteCode  string // Short code used to join the group.
	MaxMembers  int
	IsActive    bool // Cleared on soft deactivation.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Member links a user to a group.
type Member struct {
	UserID   string
	GroupID  string
	Role     GroupRole
	JoinedAt time.Time
	IsActive bool
}

// IsAdmin reports whether the member can manage the group.
func (m *Member) IsAdmin() bool {
	return m != nil && m.IsActive && m.Role == GroupRoleAdmin
}

// GroupWithMembers is a group together with its membership rows.
type GroupWithMembers struct {
	Group   Group
	Members []Member
}

// MemberIDs returns the user IDs of active members, in the order stored.
func (g *GroupWithMembers) MemberIDs() []string {
	ids := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		if m.IsActive {
			ids = append(ids, m.UserID)
		}
	}

	return ids
}

// AdminIDs returns the user IDs of active admins.
func (g *GroupWithMembers) AdminIDs() []string {
	ids := make([]string, 0, 1)
	for _, m := range g.Members {
		if m.IsAdmin() {
			ids = append(ids, m.UserID)
		}
	}

	return ids
}

// FindMember returns the membership row for userID, or nil.
func (g *GroupWithMembers) FindMember(userID string) *Member {
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			return &g.Members[i]
		}
	}

	return nil
}

// ActiveMemberCount counts members with the active flag set.
func (g *GroupWithMembers) ActiveMemberCount() int {
	return len(g.MemberIDs())
}
