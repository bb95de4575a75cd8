package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Identity provider errors. Implementations map their own error codes onto these.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAccountNotFound    = errors.New("account not found")
)

// SignInResult is what the identity provider returns after sign-up or sign-in.
type SignInResult struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	Token       string    // Bearer token the client sends back on each request
	ExpiresAt   time.Time // Zero when unknown
	IsNewUser   bool
}

// IdentityProvider owns accounts, passwords and tokens.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, displayName string) (*SignInResult, error)
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)

	// SignInWithGoogle exchanges a Google ID token for a session, creating the account on first use.
	SignInWithGoogle(ctx context.Context, googleIDToken string) (*SignInResult, error)

	SendPasswordReset(ctx context.Context, email string) error

	// SignOut invalidates every token issued to the user so far.
	SignOut(ctx context.Context, uid string) error

	DeleteAccount(ctx context.Context, uid string) error

	// VerifyToken returns the UID the token was issued to.
	VerifyToken(ctx context.Context, token string) (string, error)
}

// GoogleIdentity is the verified content of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// GoogleTokenVerifier verifies Google ID tokens for the local identity provider.
type GoogleTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error)
}
