// Package httpserver runs the form mailer's HTTP listener with graceful
// shutdown, configurable timeouts and structured lifecycle logging via slog.
//
// Run binds the listener synchronously, so start hooks observe the real
// address, then serves until the context is cancelled or SIGINT/SIGTERM
// arrives and shuts down with a configurable deadline. Construction goes
// through New or NewFromConfig with functional options.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.LivenessHandler(nil))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithAddr(cfg.Addr()),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler implements GET /healthz: a fixed JSON payload with the
// current time and no dependency checks.
//
// # Errors
//
// Bind and serve errors are wrapped with ErrStart, shutdown errors with
// ErrShutdown. Use errors.Is to distinguish them.
package httpserver
