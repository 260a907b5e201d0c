package provider

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrInvalidGoogleAudience = errors.New("invalid google audience")

// GoogleIdentity is the subset of a validated Google ID token the auth
// flow needs.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
}

// GoogleIDTokenValidator validates Google ID tokens. Implemented by
// GoogleOAuthProvider; the auth usecase depends on this interface.
type GoogleIDTokenValidator interface {
	ValidateIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// GoogleOAuthProvider validates Google-issued ID tokens against the
// tokeninfo endpoint.
type GoogleOAuthProvider struct {
	clientID string
}

// NewGoogleOAuthProvider creates a provider bound to an OAuth client id.
func NewGoogleOAuthProvider(clientID string) *GoogleOAuthProvider {
	return &GoogleOAuthProvider{clientID: clientID}
}

func (p *GoogleOAuthProvider) ValidateIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	oauth2Service, err := oauth2.NewService(ctx, option.WithHTTPClient(&http.Client{}))
	if err != nil {
		return nil, err
	}

	tokenInfoCall := oauth2Service.Tokeninfo()
	tokenInfoCall.IdToken(idToken)
	tokenInfo, err := tokenInfoCall.Do()
	if err != nil {
		return nil, err
	}

	if tokenInfo.Audience != p.clientID {
		return nil, ErrInvalidGoogleAudience
	}

	return &GoogleIdentity{
		Subject:       tokenInfo.UserId,
		Email:         tokenInfo.Email,
		EmailVerified: tokenInfo.VerifiedEmail,
	}, nil
}
