package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/indishmarketer/simple-form-app/modules/webform"
	"github.com/indishmarketer/simple-form-app/pkg/clientip"
	"github.com/indishmarketer/simple-form-app/pkg/config"
	"github.com/indishmarketer/simple-form-app/pkg/email"
	"github.com/indishmarketer/simple-form-app/pkg/httpserver"
	"github.com/indishmarketer/simple-form-app/pkg/logger"
	"github.com/indishmarketer/simple-form-app/pkg/requestid"
	"github.com/indishmarketer/simple-form-app/svc/pages"
	"github.com/indishmarketer/simple-form-app/svc/submission"
)

const serviceName = "simple-form-app"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, serviceName),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	sender, err := email.New(cfg.Mail)
	if err != nil {
		log.Error("invalid mail configuration", logger.Error(err))
		return err
	}

	views, err := pages.Load(cfg.ViewsDir)
	if err != nil {
		log.Error("failed to load pages", logger.Error(err), slog.String("views_dir", cfg.ViewsDir))
		return err
	}

	router := webform.Router(webform.RouterOptions{
		Pages:      views,
		Submission: submission.NewService(sender, cfg.Submission, submission.WithLogger(log)),
		Health:     httpserver.LivenessHandler(nil),
		Logger:     log,
	})

	server := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithAddr(cfg.Addr()),
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger, addr string) {
			logStartup(l, cfg, addr)
		}),
	)

	if err := server.Run(ctx, router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		return err
	}
	return nil
}

func logStartup(log *slog.Logger, cfg config.Config, addr string) {
	log.Info("server is running", slog.String("url", "http://"+addr))
	log.Info("health check available", slog.String("url", "http://"+addr+"/healthz"))

	user := "Not configured"
	if cfg.Mail.SMTPUser != "" {
		user = "Configured"
	}
	log.Info("mail configuration",
		slog.String("driver", cfg.Mail.Driver),
		logger.Group("smtp",
			slog.String("host", cfg.Mail.SMTPHost),
			slog.Int("port", cfg.Mail.SMTPPort),
			slog.String("user", user),
			slog.String("tls_mode", cfg.Mail.SMTPTLSMode),
		),
		slog.String("from", cfg.Mail.SenderEmail),
		slog.Bool("notify", cfg.Submission.NotifyTo != ""),
	)
}
