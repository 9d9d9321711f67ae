// Package logger builds the process slog.Logger and provides attribute helpers
// so that log keys stay consistent across packages.
//
// New applies functional options on top of production-safe defaults (JSON,
// INFO, stdout) and wraps the handler with a decorator that pulls request
// scoped values such as the request ID out of the context on every call.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, "simple-form-app"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.InfoContext(ctx, "Confirmation email sent", logger.Recipient(to))
//
// RequestLogger is an http middleware that writes one access log line per
// request with method, path, status and duration.
package logger
