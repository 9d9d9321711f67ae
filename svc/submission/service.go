package submission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/a-h/templ"

	"github.com/indishmarketer/simple-form-app/pkg/email"
	"github.com/indishmarketer/simple-form-app/pkg/email/templates"
	"github.com/indishmarketer/simple-form-app/pkg/logger"
)

// Service turns a submission into outbound email. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	sender   email.EmailSender
	notifyTo string
	timeout  time.Duration
	clock    func() time.Time
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source used for the submitted-at timestamp.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService creates a Service that delivers through sender.
// A non-positive SendTimeout disables the per-send deadline.
func NewService(sender email.EmailSender, cfg Config, opts ...Option) *Service {
	s := &Service{
		sender:   sender,
		notifyTo: cfg.NotifyTo,
		timeout:  cfg.SendTimeout,
		clock:    time.Now,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("submission"))
	return s
}

// Submit validates sub and sends the confirmation, then the notification
// when NotifyTo is set. Sends run sequentially and a failed confirmation
// skips the notification. Every call sends again; nothing is deduplicated.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	sub = sub.Normalize()
	submittedAt := s.clock()

	if err := s.send(ctx, mailConfirmation, email.SendEmailParams{
		SendTo:  sub.Email,
		Subject: ConfirmationSubject,
		Tag:     ConfirmationTag,
	}, templates.Confirmation(sub.Name, sub.Email)); err != nil {
		return errors.Join(ErrConfirmationFailed, err)
	}

	if s.notifyTo == "" {
		return nil
	}

	if err := s.send(ctx, mailNotification, email.SendEmailParams{
		SendTo:  s.notifyTo,
		Subject: NotificationSubject,
		Tag:     NotificationTag,
	}, templates.Notification(sub.Name, sub.Email, submittedAt)); err != nil {
		return errors.Join(ErrNotificationFailed, err)
	}

	return nil
}

const (
	mailConfirmation = "confirmation"
	mailNotification = "notification"
)

func (s *Service) send(ctx context.Context, kind string, params email.SendEmailParams, body templ.Component) error {
	html, err := templates.Render(ctx, body)
	if err != nil {
		return fmt.Errorf("render %s body: %w", kind, err)
	}
	params.BodyHTML = html

	sendCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	if err := s.sender.SendEmail(sendCtx, params); err != nil {
		s.log.ErrorContext(ctx, "failed to send email",
			logger.MailKind(kind),
			logger.Recipient(params.SendTo),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return err
	}

	s.log.InfoContext(ctx, "email sent",
		logger.MailKind(kind),
		logger.Recipient(params.SendTo),
		logger.Subject(params.Subject),
		logger.Duration(time.Since(start)),
	)
	return nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
