// Package google verifies Google ID tokens for the local identity provider.
package google

import (
	"context"
	"log/slog"

	"smokebreak/config"
	"smokebreak/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"https://accounts.google.com": {},
	"accounts.google.com":         {},
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// TokenVerifier implements service.GoogleTokenVerifier on top of Google's published keys.
type TokenVerifier struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewTokenVerifier creates a verifier for ID tokens issued to the configured OAuth client.
func NewTokenVerifier(cfg *config.Config, logger *slog.Logger) service.GoogleTokenVerifier {
	clientID := ""
	if cfg.Identity != nil {
		clientID = cfg.Identity.GoogleClientID
	}

	return &TokenVerifier{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken checks signature, audience, issuer and expiry, and requires a verified email.
func (v *TokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	identity, err := identityFromPayload(payload)
	if err != nil {
		v.logger.Warn("Google ID token claims rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	v.logger.Debug("Google ID token verified", slog.String("sub", identity.Subject))

	return identity, nil
}

func identityFromPayload(payload *idtoken.Payload) (*service.GoogleIdentity, error) {
	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if payload.Subject == "" {
		return nil, errors.New("missing subject")
	}

	identity := &service.GoogleIdentity{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		Name:          stringClaim(payload.Claims, "name"),
		Picture:       stringClaim(payload.Claims, "picture"),
	}

	if identity.Email == "" {
		return nil, errors.New("missing email")
	}
	if !identity.EmailVerified {
		return nil, errors.New("email not verified")
	}

	return identity, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

// boolClaim accepts both JSON booleans and the "true" string some issuers emit.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
