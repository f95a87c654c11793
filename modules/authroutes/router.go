package authroutes

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/oauth2"

	"github.com/commercekit/authbridge/pkg/auth"
	"github.com/commercekit/authbridge/pkg/cognito"
	"github.com/commercekit/authbridge/pkg/logger"
)

// identityProvider is the slice of the provider client the routes need.
type identityProvider interface {
	GetUserByAccessToken(ctx context.Context, accessToken string) (cognito.User, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}

// hostedUI drives the provider's authorization-code flow.
type hostedUI interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

var _ hostedUI = (*cognito.OAuth)(nil)

// sessions is the state/session capability the routes need from the store.
type sessions interface {
	StoreState(ctx context.Context, state string, ttl time.Duration) error
	ConsumeState(ctx context.Context, state string) error
	CreateSession(ctx context.Context, surface auth.Surface, accountID string, ttl time.Duration) (string, error)
}

var _ sessions = (*SessionStore)(nil)

var _ identityProvider = (*cognito.Client)(nil)

// RouterOption configures the router during construction.
type RouterOption func(*router)

// WithRouterLogger configures the logger used for failed attempts.
func WithRouterLogger(l *slog.Logger) RouterOption {
	return func(rt *router) {
		rt.logger = l
	}
}

type router struct {
	registry *auth.Registry
	provider identityProvider
	ui       hostedUI
	sessions sessions
	opts     Options
	logger   *slog.Logger
}

// New builds the chi router exposing the begin/callback route pair for each
// configured surface.
func New(registry *auth.Registry, provider identityProvider, ui hostedUI, store sessions, opts Options, routerOpts ...RouterOption) chi.Router {
	if opts.StateTTL <= 0 {
		opts.StateTTL = defaultStateTTL
	}

	rt := &router{
		registry: registry,
		provider: provider,
		ui:       ui,
		sessions: store,
		opts:     opts,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range routerOpts {
		opt(rt)
	}

	r := chi.NewRouter()
	if opts.Store != nil {
		rt.mount(r, auth.SurfaceStore, opts.Store)
	}
	if opts.Admin != nil {
		rt.mount(r, auth.SurfaceAdmin, opts.Admin)
	}
	return r
}

func (rt *router) mount(r chi.Router, surface auth.Surface, cfg *SurfaceConfig) {
	r.Get(cfg.authPath(rt.opts.Provider, surface), rt.begin(surface, cfg))
	r.Get(cfg.authCallbackPath(rt.opts.Provider, surface), rt.callback(surface, cfg))
}

// begin starts the hosted-UI flow: issue a one-time state token and redirect
// to the provider's authorization endpoint.
func (rt *router) begin(surface auth.Surface, cfg *SurfaceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := generateState()
		if err != nil {
			rt.fail(w, r, surface, cfg, err)
			return
		}
		if err := rt.sessions.StoreState(r.Context(), state, rt.opts.StateTTL); err != nil {
			rt.fail(w, r, surface, cfg, err)
			return
		}
		http.Redirect(w, r, rt.ui.AuthCodeURL(state, cfg.authCodeOptions()...), http.StatusFound)
	}
}

// callback finishes an authentication attempt. It accepts either the hosted
// UI's authorization code or direct access_token / refresh_token query
// parameters; with no credential at all the attempt fails before the
// reconciliation pipeline runs.
func (rt *router) callback(surface auth.Surface, cfg *SurfaceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		accessToken := q.Get("access_token")
		refreshToken := q.Get("refresh_token")

		if code := q.Get("code"); code != "" {
			if err := rt.sessions.ConsumeState(ctx, q.Get("state")); err != nil {
				rt.fail(w, r, surface, cfg, err)
				return
			}
			tok, err := rt.ui.Exchange(ctx, code, cfg.authCodeOptions()...)
			if err != nil {
				rt.fail(w, r, surface, cfg, err)
				return
			}
			accessToken = tok.AccessToken
			refreshToken = tok.RefreshToken
		}

		if accessToken == "" && refreshToken == "" {
			rt.fail(w, r, surface, cfg, auth.ErrMissingCredentials)
			return
		}

		if accessToken == "" {
			fresh, err := rt.provider.RefreshAccessToken(ctx, refreshToken)
			if err != nil {
				rt.fail(w, r, surface, cfg, err)
				return
			}
			accessToken = fresh
		}

		user, err := rt.provider.GetUserByAccessToken(ctx, accessToken)
		if err != nil {
			rt.fail(w, r, surface, cfg, err)
			return
		}

		strategy, err := rt.registry.Get(rt.opts.Provider, surface)
		if err != nil {
			rt.fail(w, r, surface, cfg, err)
			return
		}

		result, err := strategy.Validate(ctx, r, accessToken, refreshToken, user.RawProfile(), nil)
		if err != nil {
			rt.fail(w, r, surface, cfg, err)
			return
		}

		sessionID, err := rt.sessions.CreateSession(ctx, surface, result.ID, cfg.expiresIn())
		if err != nil {
			rt.fail(w, r, surface, cfg, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName(surface),
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(cfg.expiresIn().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   r.TLS != nil,
		})
		http.Redirect(w, r, cfg.SuccessRedirect, http.StatusFound)
	}
}

// fail logs the error and sends the caller to the surface's failure redirect;
// without one the response is a plain 401.
func (rt *router) fail(w http.ResponseWriter, r *http.Request, surface auth.Surface, cfg *SurfaceConfig, err error) {
	rt.logger.ErrorContext(r.Context(), "authentication attempt failed",
		logger.Provider(rt.opts.Provider),
		logger.Surface(surface),
		logger.Error(err),
	)
	if cfg.FailureRedirect != "" {
		http.Redirect(w, r, cfg.FailureRedirect, http.StatusFound)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func sessionCookieName(surface auth.Surface) string {
	return fmt.Sprintf("%s_session", surface)
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
