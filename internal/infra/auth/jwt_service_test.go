package auth

import (
	"testing"
	"time"

	"smokebreak/config"
	"smokebreak/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{Identity: &config.IdentityConfig{TokenTTL: 30 * time.Minute}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	before := time.Now()
	token, expiresAt, err := jwtService.Generate("user-1", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, before.Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, 3, claims.Version)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "another_secret_key_that_is_long_enough"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := issuer.Generate("user-1", 0)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.Generate("user-1", 0)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims := service.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
