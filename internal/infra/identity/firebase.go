package identity

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"smokebreak/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

// Firebase ID tokens live for one hour.
const firebaseTokenLifetime = time.Hour

// adminClient is the subset of the Firebase Admin auth client the provider needs.
type adminClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
}

// restSession is what the Identity Toolkit REST API returns after a sign-in.
type restSession struct {
	UID         string
	IDToken     string
	Email       string
	DisplayName string
	PhotoURL    string
	IsNewUser   bool
}

// restClient signs users in through the Identity Toolkit REST API, which the Admin SDK does not cover.
type restClient interface {
	SignInWithPassword(ctx context.Context, email, password string) (*restSession, error)
	SignInWithGoogleIDToken(ctx context.Context, idToken string) (*restSession, error)
	SendPasswordResetEmail(ctx context.Context, email string) error
}

type firebaseProvider struct {
	admin  adminClient
	rest   restClient
	logger *slog.Logger
	now    func() time.Time
}

func newFirebaseProvider(admin adminClient, rest restClient, logger *slog.Logger) *firebaseProvider {
	return &firebaseProvider{
		admin:  admin,
		rest:   rest,
		logger: logger.With(slog.String("provider", "firebase")),
		now:    time.Now,
	}
}

func (p *firebaseProvider) SignUp(ctx context.Context, email, password, displayName string) (*service.SignInResult, error) {
	params := (&auth.UserToCreate{}).
		Email(strings.TrimSpace(email)).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := p.admin.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, service.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create firebase user")
	}

	p.logger.Info("Account created", slog.String("uid", record.UID))

	session, err := p.rest.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, mapRESTError(err)
	}

	result := p.result(session)
	result.IsNewUser = true
	if result.DisplayName == "" {
		result.DisplayName = displayName
	}

	return result, nil
}

func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*service.SignInResult, error) {
	session, err := p.rest.SignInWithPassword(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, mapRESTError(err)
	}

	return p.result(session), nil
}

func (p *firebaseProvider) SignInWithGoogle(ctx context.Context, googleIDToken string) (*service.SignInResult, error) {
	session, err := p.rest.SignInWithGoogleIDToken(ctx, googleIDToken)
	if err != nil {
		return nil, mapRESTError(err)
	}

	return p.result(session), nil
}

func (p *firebaseProvider) SendPasswordReset(ctx context.Context, email string) error {
	if err := p.rest.SendPasswordResetEmail(ctx, strings.TrimSpace(email)); err != nil {
		return mapRESTError(err)
	}

	return nil
}

// SignOut revokes refresh tokens; ID tokens issued before now fail the revocation check.
func (p *firebaseProvider) SignOut(ctx context.Context, uid string) error {
	if err := p.admin.RevokeRefreshTokens(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

func (p *firebaseProvider) DeleteAccount(ctx context.Context, uid string) error {
	if err := p.admin.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to delete firebase user")
	}

	p.logger.Info("Account deleted", slog.String("uid", uid))

	return nil
}

func (p *firebaseProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	verified, err := p.admin.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		p.logger.Debug("ID token rejected", slog.Any("error", err))

		return "", service.ErrInvalidToken
	}

	return verified.UID, nil
}

func (p *firebaseProvider) result(session *restSession) *service.SignInResult {
	return &service.SignInResult{
		UID:         session.UID,
		Email:       session.Email,
		DisplayName: session.DisplayName,
		PhotoURL:    session.PhotoURL,
		Token:       session.IDToken,
		ExpiresAt:   p.now().Add(firebaseTokenLifetime),
		IsNewUser:   session.IsNewUser,
	}
}

// mapRESTError translates Identity Toolkit error codes, which arrive as the message of a googleapi.Error.
func mapRESTError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return errors.Wrap(err, "identity toolkit request failed")
	}

	code := apiErr.Message
	if idx := strings.IndexAny(code, " :"); idx > 0 {
		code = code[:idx]
	}

	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED", "INVALID_EMAIL":
		return service.ErrInvalidCredentials
	case "EMAIL_EXISTS":
		return service.ErrEmailAlreadyExists
	case "INVALID_IDP_RESPONSE", "INVALID_ID_TOKEN":
		return service.ErrInvalidToken
	default:
		return errors.Wrapf(err, "identity toolkit request failed: %s", code)
	}
}
