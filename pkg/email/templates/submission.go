package templates

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
)

// TimestampLayout formats the submitted-at value in notification bodies.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Confirmation is the body sent to the person who submitted the form.
func Confirmation(name, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			"<h2>Hello ", templ.EscapeString(name), "!</h2>",
			"<p>Thank you for submitting your information.</p>",
			"<p>We have received your email address: ", templ.EscapeString(email), "</p>",
			"<p>We'll be in touch soon!</p>",
			"<hr>",
			`<p style="color: #666; font-size: 12px;">This is an automated message. Please do not reply.</p>`,
		)
	})
}

// Notification is the body sent to the administrator for every submission.
// submittedAt is rendered in UTC with millisecond precision.
func Notification(name, email string, submittedAt time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			"<h2>New submission received</h2>",
			"<p><strong>Name:</strong> ", templ.EscapeString(name), "</p>",
			"<p><strong>Email:</strong> ", templ.EscapeString(email), "</p>",
			"<p><strong>Submitted at:</strong> ", submittedAt.UTC().Format(TimestampLayout), "</p>",
		)
	})
}

func writeAll(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
