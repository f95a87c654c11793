package cognito

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// OAuth drives the authorization-code flow against the user pool's hosted UI.
type OAuth struct {
	conf *oauth2.Config
}

// NewOAuth builds the hosted-UI code flow from the pool configuration. The
// domain is the full hosted UI host, e.g. "myshop.auth.eu-west-1.amazoncognito.com".
func NewOAuth(cfg Config) *OAuth {
	return &OAuth{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  fmt.Sprintf("https://%s/oauth2/authorize", cfg.Domain),
				TokenURL: fmt.Sprintf("https://%s/oauth2/token", cfg.Domain),
			},
		},
	}
}

// AuthCodeURL builds the hosted UI authorization URL carrying the state
// token. Options may override per-surface parameters such as redirect_uri.
func (o *OAuth) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return o.conf.AuthCodeURL(state, opts...)
}

// Exchange swaps an authorization code for the token set issued by the pool.
// The same options used to build the authorization URL must be repeated here.
func (o *OAuth) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	tok, err := o.conf.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok, nil
}
