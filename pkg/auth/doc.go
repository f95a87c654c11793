// Package auth reconciles verified federated identities with local platform
// accounts across the two commerce surfaces (admin and store).
//
// The package is built around a small reconciliation pipeline: a provider
// adapter yields a raw profile, NormalizeProfile reduces it to a canonical
// Profile, Decide classifies the attempt against the account found by email
// (create, attach, accept or reject), and a Reconciler executes the decision
// inside one store transaction.
//
// # Ownership policy
//
// An account carries two metadata markers: MetadataKeyFederated marks it as
// claimed through any federated flow, and MetadataKeyAuthProvider names the
// exact provider and surface that claimed it (e.g. "cognito.store"). A strict
// mode protects one surface: accounts created through that surface's primary
// signup flow, or already claimed by a different provider, cannot be silently
// taken over by a federated login there. The other surface stays permissive.
//
// # Usage
//
//	store := account.NewStore(pool)
//	rec := auth.NewReconciler(store, "cognito", auth.SurfaceStore,
//		auth.WithStrictMode(auth.StrictStore),
//		auth.WithLogger(logger),
//	)
//	strategy := auth.NewStrategy("cognito", auth.SurfaceStore, rec)
//	registry := auth.NewRegistry(strategy)
//
// A custom verify callback can replace the default pipeline per strategy:
//
//	auth.NewStrategy("cognito", auth.SurfaceAdmin, rec,
//		auth.WithVerify(myVerifyFunc),
//	)
//
// All services are safe for concurrent use; each authentication attempt is an
// independent unit of work with no shared mutable state.
package auth
