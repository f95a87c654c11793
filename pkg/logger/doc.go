// Package logger builds configured slog.Logger instances with optional
// context-driven attribute injection.
//
// The zero-configuration default is JSON output at info level on stdout.
// Use WithDevelopment for readable text logs during local work:
//
//	log := logger.New(logger.WithDevelopment("authbridge"))
//	log.Info("server starting", logger.Component("httpserver"))
//
// Context extractors let request-scoped values flow into every record
// without threading them through call sites:
//
//	log := logger.New(logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey).(string); ok {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}))
package logger
