// Package entity contains the core business objects of the project.
package entity

// GroupRole represents the role a member holds inside a group.
type GroupRole string

const (
	// GroupRoleAdmin can edit the group and manage members.
	GroupRoleAdmin GroupRole = "ADMIN"
	// GroupRoleMember is a regular participant.
	GroupRoleMember GroupRole = "MEMBER"
)

// String returns the string representation of the GroupRole.
func (r GroupRole) String() string {
	return string(r)
}

// IsValid checks if the GroupRole is a valid value.
func (r GroupRole) IsValid() bool {
	switch r {
	case GroupRoleAdmin, GroupRoleMember:
		return true
	default:
		return false
	}
}
