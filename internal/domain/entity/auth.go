// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Credential providers stored by the local identity provider.
const (
	CredentialProviderEmail  = "email"
	CredentialProviderGoogle = "google"
)

// Credential is a sign-in method kept by the local identity provider.
// The firebase provider keeps credentials on its side and never stores one.
type Credential struct {
	UserID         string    // Links this credential to the User it belongs to.
	Email          string    // Lowercased sign-in email, unique across credentials.
	Provider       string    // "email" or "google".
	ProviderUserID string    // Google 'sub' claim, empty for email credentials.
	PasswordHash   string    // bcrypt hash, only set for email credentials.
	TokenVersion   int       // Bumped on sign-out so earlier tokens stop verifying.
	CreatedAt      time.Time // Timestamp of when this credential was created.
	UpdatedAt      time.Time
}

// AuthSession is what a successful sign-in returns to the client.
type AuthSession struct {
	User      *User
	Token     string    // Bearer token for subsequent requests.
	ExpiresAt time.Time // Zero when the provider does not report expiry.
}
