// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver: connection pooling with retry, health checks and common
// error helpers, so the account store can bootstrap a resilient database
// layer with a few lines of code.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
// All configuration values are provided through environment variables so they
// can be tuned per environment without code changes; see the field tags in
// Config for variable names and defaults.
//
// Error helpers such as [IsNotFoundError] and [IsDuplicateKeyError] unwrap
// pgx and *pgconn.PgError values so error classification stays trivial inside
// business logic.
package pg
