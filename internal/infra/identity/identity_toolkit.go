package identity

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const (
	googleProviderID  = "google.com"
	requestTypeReset  = "PASSWORD_RESET"
	defaultRequestURI = "http://localhost"
)

type identityToolkitClient struct {
	svc *identitytoolkit.Service
}

func newIdentityToolkitClient(ctx context.Context, apiKey string) (*identityToolkitClient, error) {
	if apiKey == "" {
		return nil, errors.New("identity api key must be provided for the firebase provider")
	}

	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	return &identityToolkitClient{svc: svc}, nil
}

func (c *identityToolkitClient) SignInWithPassword(ctx context.Context, email, password string) (*restSession, error) {
	resp, err := c.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &restSession{
		UID:         resp.LocalId,
		IDToken:     resp.IdToken,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.PhotoUrl,
	}, nil
}

func (c *identityToolkitClient) SignInWithGoogleIDToken(ctx context.Context, idToken string) (*restSession, error) {
	postBody := url.Values{}
	postBody.Set("id_token", idToken)
	postBody.Set("providerId", googleProviderID)

	resp, err := c.svc.Relyingparty.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          postBody.Encode(),
		RequestUri:        defaultRequestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &restSession{
		UID:         resp.LocalId,
		IDToken:     resp.IdToken,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.PhotoUrl,
		IsNewUser:   resp.IsNewUser,
	}, nil
}

func (c *identityToolkitClient) SendPasswordResetEmail(ctx context.Context, email string) error {
	_, err := c.svc.Relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: requestTypeReset,
		Email:       email,
	}).Context(ctx).Do()

	return err
}
