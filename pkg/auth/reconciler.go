package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Reconciler executes the ownership decision for one provider on one surface:
// lookup by email, classify, then create or claim the account inside a single
// store transaction. Store errors propagate unchanged so callers can react to
// the store's own taxonomy.
type Reconciler struct {
	store    Store
	provider string
	surface  Surface
	strict   StrictMode
	logger   *slog.Logger
}

// ReconcilerOption configures a Reconciler during construction.
type ReconcilerOption func(*Reconciler)

// WithStrictMode names the surface protected against silent account takeover.
func WithStrictMode(m StrictMode) ReconcilerOption {
	return func(r *Reconciler) {
		r.strict = m
	}
}

// WithLogger configures the logger for the reconciler.
func WithLogger(l *slog.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.logger = l
	}
}

// NewReconciler constructs a reconciler bound to one provider and surface for
// its whole lifetime. Defaults: no strict mode, logger discards.
func NewReconciler(store Store, provider string, surface Surface, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		store:    store,
		provider: provider,
		surface:  surface,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Surface returns the surface this reconciler operates on.
func (r *Reconciler) Surface() Surface {
	return r.surface
}

// Reconcile resolves a verified profile to a local account. The lookup and
// any mutation share one transaction, so no partial claim is ever visible
// outside it.
func (r *Reconciler) Reconcile(ctx context.Context, profile Profile) (*Account, error) {
	var result *Account

	err := r.store.RunInTransaction(ctx, func(ctx context.Context) error {
		account, err := r.store.FindByEmail(ctx, profile.Email, r.surface)
		if err != nil && !errors.Is(err, ErrAccountNotFound) {
			return err
		}

		action := Decide(account, r.surface, r.provider, r.strict)
		r.logger.DebugContext(ctx, "reconciled federated identity",
			slog.String("provider", r.provider),
			slog.String("surface", string(r.surface)),
			slog.String("action", action.String()),
		)

		switch action {
		case ActionCreate:
			result, err = r.create(ctx, profile)
		case ActionAttach:
			result, err = r.attach(ctx, account)
		case ActionAccept:
			result = account
		case ActionReject:
			err = &AlreadyExistsError{Email: profile.Email, Surface: r.surface}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Reconciler) create(ctx context.Context, profile Profile) (*Account, error) {
	return r.store.Create(ctx, &Account{
		Email:     profile.Email,
		FirstName: profile.GivenName,
		LastName:  profile.FamilyName,
		Metadata:  r.claimMetadata(),
	}, r.surface)
}

func (r *Reconciler) attach(ctx context.Context, account *Account) (*Account, error) {
	return r.store.UpdateMetadata(ctx, account.ID, r.claimMetadata(), r.surface)
}

func (r *Reconciler) claimMetadata() map[string]any {
	return map[string]any{
		MetadataKeyFederated:    true,
		MetadataKeyAuthProvider: ProviderKey(r.provider, r.surface),
	}
}
