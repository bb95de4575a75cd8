package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"smokebreak/config"
	"smokebreak/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(validate validateFunc) *TokenVerifier {
	cfg := &config.Config{Identity: &config.IdentityConfig{GoogleClientID: "test_client_id"}}
	verifier := NewTokenVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*TokenVerifier)
	verifier.validate = validate

	return verifier
}

func payloadWith(claims map[string]any) *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test_client_id",
		Subject:  "google-sub-1",
		Claims:   claims,
	}
}

func TestTokenVerifier_VerifyIDToken(t *testing.T) {
	var gotAudience string
	verifier := newTestVerifier(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return payloadWith(map[string]any{
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
			"picture":        "https://example.com/p.png",
		}), nil
	})

	identity, err := verifier.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "google-sub-1", identity.Subject)
	assert.Equal(t, "test@example.com", identity.Email)
	assert.Equal(t, "Test User", identity.Name)
	assert.True(t, identity.EmailVerified)
}

func TestTokenVerifier_RejectsUnverifiedEmail(t *testing.T) {
	verifier := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return payloadWith(map[string]any{"email": "test@example.com", "email_verified": "false"}), nil
	})

	_, err := verifier.VerifyIDToken(context.Background(), "token")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Contains(t, err.Error(), "email not verified")
}

func TestTokenVerifier_RejectsWrongIssuer(t *testing.T) {
	verifier := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		p := payloadWith(map[string]any{"email": "test@example.com", "email_verified": true})
		p.Issuer = "https://evil.example.com"

		return p, nil
	})

	_, err := verifier.VerifyIDToken(context.Background(), "token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenVerifier_ValidationFailure(t *testing.T) {
	verifier := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	_, err := verifier.VerifyIDToken(context.Background(), "token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Contains(t, err.Error(), "token expired")
}

func TestTokenVerifier_RequiresClientID(t *testing.T) {
	verifier := NewTokenVerifier(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := verifier.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}
