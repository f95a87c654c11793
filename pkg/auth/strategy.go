package auth

import (
	"context"
	"net/http"
)

// VerifyFunc is the signature of the pipeline entry point a strategy runs on
// callback. A custom implementation supplied at construction time replaces
// the default normalize-decide-mutate pipeline entirely; its result is passed
// through unmodified except for access-token attachment.
type VerifyFunc func(ctx context.Context, req *http.Request, accessToken, refreshToken string, raw RawProfile, extra map[string]string) (*Account, error)

// ValidateResult is what a strategy hands back to the route layer: the
// reconciled account fields plus the access token the attempt carried.
type ValidateResult struct {
	Account
	AccessToken string
}

// Strategy is the per-provider, per-surface integration point the route layer
// invokes on an authentication callback.
type Strategy struct {
	provider   string
	surface    Surface
	reconciler *Reconciler
	verify     VerifyFunc
}

// StrategyOption configures a Strategy during construction.
type StrategyOption func(*Strategy)

// WithVerify replaces the default pipeline with a custom verify callback.
// Selection happens once at configuration time, not per request.
func WithVerify(fn VerifyFunc) StrategyOption {
	return func(s *Strategy) {
		s.verify = fn
	}
}

// NewStrategy constructs a strategy for one provider on one surface.
func NewStrategy(provider string, surface Surface, reconciler *Reconciler, opts ...StrategyOption) *Strategy {
	s := &Strategy{
		provider:   provider,
		surface:    surface,
		reconciler: reconciler,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.verify == nil {
		s.verify = s.defaultVerify
	}
	return s
}

// Provider returns the provider name the strategy serves.
func (s *Strategy) Provider() string {
	return s.provider
}

// Surface returns the surface the strategy serves.
func (s *Strategy) Surface() Surface {
	return s.surface
}

// Validate runs the verify pipeline for one authentication attempt and
// attaches the original access token to the result. Errors from the pipeline
// propagate unchanged.
func (s *Strategy) Validate(ctx context.Context, req *http.Request, accessToken, refreshToken string, raw RawProfile, extra map[string]string) (*ValidateResult, error) {
	account, err := s.verify(ctx, req, accessToken, refreshToken, raw, extra)
	if err != nil {
		return nil, err
	}
	return &ValidateResult{
		Account:     *account,
		AccessToken: accessToken,
	}, nil
}

func (s *Strategy) defaultVerify(ctx context.Context, _ *http.Request, _, _ string, raw RawProfile, _ map[string]string) (*Account, error) {
	profile, err := NormalizeProfile(raw)
	if err != nil {
		return nil, err
	}
	return s.reconciler.Reconcile(ctx, profile)
}
