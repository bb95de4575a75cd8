package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for tokens issued by the local identity provider.
type Claims struct {
	UserID  string `json:"uid"`
	Version int    `json:"ver"` // Credential token version at issue time
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// Generate creates a signed token for the user at the given credential version.
	Generate(userID string, version int) (token string, expiresAt time.Time, err error)

	// Validate checks signature and expiry and returns the claims.
	Validate(tokenString string) (*Claims, error)
}
