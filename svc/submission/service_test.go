package submission_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/indishmarketer/simple-form-app/pkg/email"
	"github.com/indishmarketer/simple-form-app/pkg/validator"
	"github.com/indishmarketer/simple-form-app/svc/submission"
)

// recordingSender captures every message and fails for configured recipients.
type recordingSender struct {
	mu       sync.Mutex
	sent     []email.SendEmailParams
	failFor  map[string]error
	deadline []bool
}

func (r *recordingSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := ctx.Deadline()
	r.deadline = append(r.deadline, ok)
	if err, fail := r.failFor[params.SendTo]; fail {
		return err
	}
	r.sent = append(r.sent, params)
	return nil
}

func (r *recordingSender) messages() []email.SendEmailParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]email.SendEmailParams(nil), r.sent...)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	return m.Called(ctx, params).Error(0)
}

var fixedTime = time.Date(2024, 3, 9, 8, 7, 6, 5_000_000, time.UTC)

func newService(sender email.EmailSender, notifyTo string, opts ...submission.Option) *submission.Service {
	opts = append([]submission.Option{submission.WithClock(func() time.Time { return fixedTime })}, opts...)
	return submission.NewService(sender, submission.Config{NotifyTo: notifyTo, SendTimeout: time.Second}, opts...)
}

func TestSubmission_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sub     submission.Submission
		wantErr bool
		missing []string
	}{
		{name: "both present", sub: submission.Submission{Name: "Jane", Email: "jane@example.com"}},
		{name: "email not syntax checked", sub: submission.Submission{Name: "Jane", Email: "not-an-email"}},
		{name: "missing name", sub: submission.Submission{Email: "jane@example.com"}, wantErr: true, missing: []string{"name"}},
		{name: "missing email", sub: submission.Submission{Name: "Jane"}, wantErr: true, missing: []string{"email"}},
		{name: "whitespace name", sub: submission.Submission{Name: " \t ", Email: "jane@example.com"}, wantErr: true},
		{name: "whitespace email", sub: submission.Submission{Name: "Jane", Email: "\n"}, wantErr: true},
		{name: "both empty", wantErr: true, missing: []string{"name", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.sub.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, submission.ErrMissingFields)
				if tt.missing != nil {
					assert.Equal(t, tt.missing, validator.ExtractValidationErrors(err).Fields())
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("confirmation only without notify address", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		err := newService(sender, "").Submit(context.Background(), submission.Submission{Name: "Jane", Email: "jane@example.com"})
		require.NoError(t, err)

		msgs := sender.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, "jane@example.com", msgs[0].SendTo)
		assert.Equal(t, submission.ConfirmationSubject, msgs[0].Subject)
		assert.Contains(t, msgs[0].BodyHTML, "<h2>Hello Jane!</h2>")
		assert.Contains(t, msgs[0].BodyHTML, "We have received your email address: jane@example.com")
	})

	t.Run("confirmation then notification", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		err := newService(sender, "admin@example.com").Submit(context.Background(), submission.Submission{Name: "Jane", Email: "jane@example.com"})
		require.NoError(t, err)

		msgs := sender.messages()
		require.Len(t, msgs, 2)
		assert.Equal(t, "jane@example.com", msgs[0].SendTo)
		assert.Equal(t, "admin@example.com", msgs[1].SendTo)
		assert.Equal(t, submission.NotificationSubject, msgs[1].Subject)
		assert.Contains(t, msgs[1].BodyHTML, "<p><strong>Name:</strong> Jane</p>")
		assert.Contains(t, msgs[1].BodyHTML, "<p><strong>Email:</strong> jane@example.com</p>")
		assert.Contains(t, msgs[1].BodyHTML, "<p><strong>Submitted at:</strong> 2024-03-09T08:07:06.005Z</p>")
	})

	t.Run("values are trimmed", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		err := newService(sender, "").Submit(context.Background(), submission.Submission{Name: "  Jane ", Email: " jane@example.com\t"})
		require.NoError(t, err)

		msgs := sender.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, "jane@example.com", msgs[0].SendTo)
		assert.Contains(t, msgs[0].BodyHTML, "Hello Jane!")
	})

	t.Run("markup in input is escaped", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		err := newService(sender, "admin@example.com").Submit(context.Background(), submission.Submission{Name: "<b>Jane</b>", Email: "jane@example.com"})
		require.NoError(t, err)

		for _, m := range sender.messages() {
			assert.NotContains(t, m.BodyHTML, "<b>Jane</b>")
			assert.Contains(t, m.BodyHTML, "&lt;b&gt;Jane&lt;/b&gt;")
		}
	})

	t.Run("unicode is preserved", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		err := newService(sender, "").Submit(context.Background(), submission.Submission{Name: "José", Email: "jose@example.com"})
		require.NoError(t, err)
		assert.Contains(t, sender.messages()[0].BodyHTML, "Hello José!")
	})

	t.Run("invalid submission sends nothing", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		err := newService(sender, "admin@example.com").Submit(context.Background(), submission.Submission{Name: "Jane"})
		assert.ErrorIs(t, err, submission.ErrMissingFields)
		sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("confirmation failure skips notification", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "jane@example.com"
		})).Return(email.ErrFailedToSendEmail).Once()

		err := newService(sender, "admin@example.com").Submit(context.Background(), submission.Submission{Name: "Jane", Email: "jane@example.com"})
		assert.ErrorIs(t, err, submission.ErrConfirmationFailed)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		sender.AssertExpectations(t)
		sender.AssertNumberOfCalls(t, "SendEmail", 1)
	})

	t.Run("notification failure fails the submission", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{failFor: map[string]error{"admin@example.com": email.ErrFailedToSendEmail}}
		err := newService(sender, "admin@example.com").Submit(context.Background(), submission.Submission{Name: "Jane", Email: "jane@example.com"})
		assert.ErrorIs(t, err, submission.ErrNotificationFailed)

		msgs := sender.messages()
		require.Len(t, msgs, 1, "confirmation was still delivered")
		assert.Equal(t, "jane@example.com", msgs[0].SendTo)
	})

	t.Run("repeated submissions send again", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		svc := newService(sender, "")
		sub := submission.Submission{Name: "Jane", Email: "jane@example.com"}

		require.NoError(t, svc.Submit(context.Background(), sub))
		require.NoError(t, svc.Submit(context.Background(), sub))
		assert.Len(t, sender.messages(), 2)
	})

	t.Run("each send has a deadline", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		require.NoError(t, newService(sender, "admin@example.com").Submit(context.Background(), submission.Submission{Name: "Jane", Email: "jane@example.com"}))

		sender.mu.Lock()
		defer sender.mu.Unlock()
		assert.Equal(t, []bool{true, true}, sender.deadline)
	})

	t.Run("no deadline when timeout disabled", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{}
		svc := submission.NewService(sender, submission.Config{})
		require.NoError(t, svc.Submit(context.Background(), submission.Submission{Name: "Jane", Email: "jane@example.com"}))

		sender.mu.Lock()
		defer sender.mu.Unlock()
		assert.Equal(t, []bool{false}, sender.deadline)
	})

	t.Run("logs each send", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		sender := &recordingSender{failFor: map[string]error{"admin@example.com": errors.New("relay said no")}}

		err := newService(sender, "admin@example.com", submission.WithLogger(log)).
			Submit(context.Background(), submission.Submission{Name: "Jane", Email: "jane@example.com"})
		require.Error(t, err)

		out := buf.String()
		assert.Contains(t, out, `msg="email sent"`)
		assert.Contains(t, out, "mail_kind=confirmation")
		assert.Contains(t, out, `msg="failed to send email"`)
		assert.Contains(t, out, "mail_kind=notification")
		assert.Contains(t, out, `error="relay said no"`)
		assert.Contains(t, out, "component=submission")
	})
}
