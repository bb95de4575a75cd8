package identity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"smokebreak/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type fakeAdmin struct {
	created    *auth.UserToCreate
	createErr  error
	deleted    []string
	revoked    []string
	verifiedID string
	verifyErr  error
}

func (f *fakeAdmin) CreateUser(_ context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	f.created = user
	if f.createErr != nil {
		return nil, f.createErr
	}

	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "fb-uid"}}, nil
}

func (f *fakeAdmin) DeleteUser(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)

	return nil
}

func (f *fakeAdmin) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)

	return nil
}

func (f *fakeAdmin) VerifyIDTokenAndCheckRevoked(_ context.Context, _ string) (*auth.Token, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}

	return &auth.Token{UID: f.verifiedID}, nil
}

type fakeREST struct {
	session  *restSession
	err      error
	resetFor string
}

func (f *fakeREST) SignInWithPassword(_ context.Context, _, _ string) (*restSession, error) {
	return f.session, f.err
}

func (f *fakeREST) SignInWithGoogleIDToken(_ context.Context, _ string) (*restSession, error) {
	return f.session, f.err
}

func (f *fakeREST) SendPasswordResetEmail(_ context.Context, email string) error {
	f.resetFor = email

	return f.err
}

func newTestFirebaseProvider(admin *fakeAdmin, rest *fakeREST) *firebaseProvider {
	p := newFirebaseProvider(admin, rest, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.now = func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) }

	return p
}

func TestFirebaseProvider_SignUp(t *testing.T) {
	admin := &fakeAdmin{}
	rest := &fakeREST{session: &restSession{UID: "fb-uid", IDToken: "id-token", Email: "a@example.com"}}
	provider := newTestFirebaseProvider(admin, rest)

	result, err := provider.SignUp(context.Background(), "a@example.com", "password", "Alice")
	require.NoError(t, err)

	assert.NotNil(t, admin.created)
	assert.Equal(t, "fb-uid", result.UID)
	assert.Equal(t, "id-token", result.Token)
	assert.Equal(t, "Alice", result.DisplayName)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC), result.ExpiresAt)
}

func TestFirebaseProvider_SignInMapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{name: "wrong password", message: "INVALID_PASSWORD", want: service.ErrInvalidCredentials},
		{name: "unknown email", message: "EMAIL_NOT_FOUND", want: service.ErrInvalidCredentials},
		{name: "combined code with detail", message: "INVALID_LOGIN_CREDENTIALS : bad", want: service.ErrInvalidCredentials},
		{name: "bad google token", message: "INVALID_IDP_RESPONSE", want: service.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest := &fakeREST{err: &googleapi.Error{Code: http.StatusBadRequest, Message: tt.message}}
			provider := newTestFirebaseProvider(&fakeAdmin{}, rest)

			_, err := provider.SignIn(context.Background(), "a@example.com", "password")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFirebaseProvider_UnknownRESTErrorIsWrapped(t *testing.T) {
	rest := &fakeREST{err: &googleapi.Error{Code: http.StatusTooManyRequests, Message: "TOO_MANY_ATTEMPTS_TRY_LATER"}}
	provider := newTestFirebaseProvider(&fakeAdmin{}, rest)

	_, err := provider.SignIn(context.Background(), "a@example.com", "password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOO_MANY_ATTEMPTS_TRY_LATER")
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestFirebaseProvider_SignInWithGoogle(t *testing.T) {
	rest := &fakeREST{session: &restSession{UID: "g-uid", IDToken: "id-token", IsNewUser: true, DisplayName: "Gina"}}
	provider := newTestFirebaseProvider(&fakeAdmin{}, rest)

	result, err := provider.SignInWithGoogle(context.Background(), "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "g-uid", result.UID)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, "Gina", result.DisplayName)
}

func TestFirebaseProvider_SignOutAndDelete(t *testing.T) {
	admin := &fakeAdmin{}
	provider := newTestFirebaseProvider(admin, &fakeREST{})

	require.NoError(t, provider.SignOut(context.Background(), "uid-1"))
	require.NoError(t, provider.DeleteAccount(context.Background(), "uid-1"))

	assert.Equal(t, []string{"uid-1"}, admin.revoked)
	assert.Equal(t, []string{"uid-1"}, admin.deleted)
}

func TestFirebaseProvider_VerifyToken(t *testing.T) {
	admin := &fakeAdmin{verifiedID: "uid-7"}
	provider := newTestFirebaseProvider(admin, &fakeREST{})

	uid, err := provider.VerifyToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "uid-7", uid)

	admin.verifyErr = errors.New("revoked")
	_, err = provider.VerifyToken(context.Background(), "token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestFirebaseProvider_SendPasswordReset(t *testing.T) {
	rest := &fakeREST{}
	provider := newTestFirebaseProvider(&fakeAdmin{}, rest)

	require.NoError(t, provider.SendPasswordReset(context.Background(), " a@example.com "))
	assert.Equal(t, "a@example.com", rest.resetFor)
}
