package repository

import "time"

// Local table names, also used as change feed topics.
const (
	TableUsers            = "users"
	TableGroups           = "groups"
	TableMembers          = "members"
	TableBreakInvitations = "break_invitations"
	TableBreakSessions    = "break_sessions"
	TableCredentials      = "credentials"
)

// ChangeEvent tells subscribers that a table was written.
type ChangeEvent struct {
	Table string
	At    time.Time
}

// ChangeFeed publishes local cache writes so observers can re-query.
// Events are coalesced: a slow subscriber sees at least one event per burst of writes,
// not one per write.
type ChangeFeed interface {
	// Subscribe returns a channel of events for the given tables (all tables when none given)
	// and a function that ends the subscription.
	Subscribe(tables ...string) (<-chan ChangeEvent, func())
}
