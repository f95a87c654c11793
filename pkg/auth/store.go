package auth

import "context"

// Store is the account persistence capability the reconciler depends on. The
// account store owns identifiers and isolation guarantees; implementations
// must return ErrAccountNotFound (or an error matching it via errors.Is) when
// no account exists for an email.
type Store interface {
	// FindByEmail retrieves the account registered under email in the
	// surface's namespace. Not-found is a valid outcome, not a failure.
	FindByEmail(ctx context.Context, email string, surface Surface) (*Account, error)

	// Create inserts a new account and returns it with the store-assigned ID.
	Create(ctx context.Context, account *Account, surface Surface) (*Account, error)

	// UpdateMetadata merges patch into the account's metadata map, keeping
	// unrelated existing keys, and returns the updated account.
	UpdateMetadata(ctx context.Context, id string, patch map[string]any, surface Surface) (*Account, error)

	// RunInTransaction executes fn inside one commit-or-rollback scope. The
	// context passed to fn carries the transaction.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
