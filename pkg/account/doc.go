// Package account implements the reconciliation core's account store on
// PostgreSQL via pgx.
//
// The admin and store surfaces are disjoint namespaces backed by separate
// tables ("users" and "customers") with the same shape:
//
//	CREATE TABLE customers (
//		id          uuid PRIMARY KEY,
//		email       text NOT NULL UNIQUE,
//		first_name  text NOT NULL DEFAULT '',
//		last_name   text NOT NULL DEFAULT '',
//		metadata    jsonb NOT NULL DEFAULT '{}',
//		created_at  timestamptz NOT NULL DEFAULT now()
//	);
//
// RunInTransaction carries the open transaction through the context, so the
// lookup and the mutation of one authentication attempt share a single
// commit-or-rollback scope.
package account
