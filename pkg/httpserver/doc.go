// Package httpserver provides a thin wrapper around net/http's Server with
// graceful shutdown, functional options, and env-driven configuration.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server exited", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, an interrupt signal arrives,
// or the listener fails.
package httpserver
