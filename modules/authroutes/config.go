package authroutes

import (
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/commercekit/authbridge/pkg/auth"
)

// SurfaceConfig holds the route-level settings for one surface. Zero-value
// paths fall back to the conventional "/<surface>/auth/<provider>" pair. A
// custom verify callback is configured on the surface's strategy itself, via
// auth.WithVerify.
type SurfaceConfig struct {
	CallbackURL      string
	AuthPath         string
	AuthCallbackPath string
	SuccessRedirect  string
	FailureRedirect  string
	ExpiresIn        time.Duration
}

// Options configures the router. Surfaces left nil are not mounted.
type Options struct {
	Provider string
	Admin    *SurfaceConfig
	Store    *SurfaceConfig
	StateTTL time.Duration
}

const (
	defaultStateTTL  = 10 * time.Minute
	defaultExpiresIn = 24 * time.Hour
)

func (c *SurfaceConfig) authPath(provider string, surface auth.Surface) string {
	if c.AuthPath != "" {
		return c.AuthPath
	}
	return fmt.Sprintf("/%s/auth/%s", surface, provider)
}

func (c *SurfaceConfig) authCallbackPath(provider string, surface auth.Surface) string {
	if c.AuthCallbackPath != "" {
		return c.AuthCallbackPath
	}
	return fmt.Sprintf("/%s/auth/%s/cb", surface, provider)
}

// authCodeOptions overrides the provider's default redirect with the
// surface's own callback URL when one is configured.
func (c *SurfaceConfig) authCodeOptions() []oauth2.AuthCodeOption {
	if c.CallbackURL == "" {
		return nil
	}
	return []oauth2.AuthCodeOption{oauth2.SetAuthURLParam("redirect_uri", c.CallbackURL)}
}

func (c *SurfaceConfig) expiresIn() time.Duration {
	if c.ExpiresIn > 0 {
		return c.ExpiresIn
	}
	return defaultExpiresIn
}
