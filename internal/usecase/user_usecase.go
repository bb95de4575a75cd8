// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"smokebreak/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
	Department  string
	FCMToken    string // Optional push token of the signing-up device
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
	FCMToken string
}

// GoogleSignInInput carries a Google ID token obtained by the client.
type GoogleSignInInput struct {
	IDToken  string
	FCMToken string
}

// UpdateProfileInput holds the profile fields to change; nil fields are left untouched.
type UpdateProfileInput struct {
	DisplayName *string
	Department  *string
	AvatarURL   *string
}

// --- Output DTOs ---

// AuthOutput is returned after a successful sign-up or sign-in.
type AuthOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
	IsNewUser bool
}

// UserUsecase defines the interface for account and profile operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	SignInWithGoogle(ctx context.Context, input *GoogleSignInInput) (*AuthOutput, error)
	SendPasswordReset(ctx context.Context, email string) error

	// SignOut marks the user offline and revokes their tokens.
	SignOut(ctx context.Context, userID string) error

	// DeleteAccount removes the profile, memberships and the identity account.
	DeleteAccount(ctx context.Context, userID string) error

	// VerifyToken resolves a bearer token to a user ID.
	VerifyToken(ctx context.Context, token string) (string, error)

	// GetUser reads through the remote store into the local cache.
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// CachedUser reads the local cache only.
	CachedUser(ctx context.Context, userID string) (*entity.User, error)

	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)
	UpdatePreferences(ctx context.Context, userID string, prefs entity.UserPreferences) (*entity.User, error)
	UpdateOnlineStatus(ctx context.Context, userID string, online bool) error
	UpdateFCMToken(ctx context.Context, userID, token string) error

	OnlineUsers(ctx context.Context) ([]*entity.User, error)
	UsersByDepartment(ctx context.Context, department string) ([]*entity.User, error)
	Departments(ctx context.Context) ([]string, error)
	CountUsers(ctx context.Context) (int64, error)
}
