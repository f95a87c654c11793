package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commercekit/authbridge/pkg/auth"
	"github.com/commercekit/authbridge/pkg/pg"
)

// Ensure Store implements the core's store capability.
var _ auth.Store = (*Store)(nil)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, letting every query
// run either standalone or inside the attempt's transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type txKey struct{}

// Store persists accounts for both surfaces.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a PostgreSQL-backed account store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// surfaceTable maps a surface to its namespace table.
func surfaceTable(s auth.Surface) string {
	if s == auth.SurfaceAdmin {
		return "users"
	}
	return "customers"
}

func (s *Store) querier(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return s.pool
}

// FindByEmail retrieves the account registered under email in the surface's
// namespace. Returns auth.ErrAccountNotFound when no row exists.
func (s *Store) FindByEmail(ctx context.Context, email string, surface auth.Surface) (*auth.Account, error) {
	query := fmt.Sprintf(`
		SELECT id, email, first_name, last_name, metadata
		FROM %s
		WHERE email = $1`, surfaceTable(surface))

	var account auth.Account
	err := s.querier(ctx).QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.FirstName,
		&account.LastName,
		&account.Metadata,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Create inserts a new account with a store-assigned ID.
func (s *Store) Create(ctx context.Context, account *auth.Account, surface auth.Surface) (*auth.Account, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, email, first_name, last_name, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, first_name, last_name, metadata`, surfaceTable(surface))

	metadata := account.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	var created auth.Account
	err := s.querier(ctx).QueryRow(ctx, query,
		uuid.New().String(),
		account.Email,
		account.FirstName,
		account.LastName,
		metadata,
	).Scan(
		&created.ID,
		&created.Email,
		&created.FirstName,
		&created.LastName,
		&created.Metadata,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateMetadata merges patch into the account's metadata, preserving
// unrelated keys.
func (s *Store) UpdateMetadata(ctx context.Context, id string, patch map[string]any, surface auth.Surface) (*auth.Account, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET metadata = coalesce(metadata, '{}'::jsonb) || $2
		WHERE id = $1
		RETURNING id, email, first_name, last_name, metadata`, surfaceTable(surface))

	var updated auth.Account
	err := s.querier(ctx).QueryRow(ctx, query, id, patch).Scan(
		&updated.ID,
		&updated.Email,
		&updated.FirstName,
		&updated.LastName,
		&updated.Metadata,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// RunInTransaction executes fn in a single transaction carried through the
// context. Any error rolls the transaction back.
func (s *Store) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
