package email

import (
	"context"
	"fmt"

	"github.com/indishmarketer/simple-form-app/pkg/validator"
)

// EmailSender represents an interface for sending emails.
// Implementations make a single delivery attempt per call and are safe for
// concurrent use.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
// The sender address is owned by the EmailSender implementation.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`       // Email address of the recipient
	Subject  string `json:"subject"`       // Subject of the email
	BodyHTML string `json:"body_html"`     // HTML body of the email
	Tag      string `json:"tag,omitempty"` // Optional
}

// Validate checks that all required fields are present.
// The recipient address is not syntax-checked: the relay is the authority on
// what it accepts.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.RequiredString("SendTo", p.SendTo),
		validator.SingleLine("SendTo", p.SendTo),
		validator.RequiredString("Subject", p.Subject),
		validator.SingleLine("Subject", p.Subject),
		validator.RequiredString("BodyHTML", p.BodyHTML),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}
