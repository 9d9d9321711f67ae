// Package submission accepts form submissions and sends the resulting
// confirmation and notification emails.
package submission

import (
	"errors"
	"strings"

	"github.com/indishmarketer/simple-form-app/pkg/validator"
)

// Messages returned to the client.
const (
	MsgMissingFields = "Name and email are required"
	MsgFailure       = "Sorry, there was an error processing your request. Please try again later."
)

// Email subjects.
const (
	ConfirmationSubject = "Thank you for your submission!"
	NotificationSubject = "New Form Submission"
)

// Tags attached to outbound messages.
const (
	ConfirmationTag = "confirmation"
	NotificationTag = "notification"
)

// ThankYouPath is where a successful submission is redirected.
const ThankYouPath = "/thank-you"

// Submission is the form payload. The same fields are accepted from
// urlencoded, multipart and JSON bodies.
type Submission struct {
	Name  string `form:"name" json:"name"`
	Email string `form:"email" json:"email"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:  strings.TrimSpace(s.Name),
		Email: strings.TrimSpace(s.Email),
	}
}

// Validate reports ErrMissingFields when either field is blank.
// The email address is not syntax-checked.
func (s Submission) Validate() error {
	n := s.Normalize()
	if err := validator.Apply(
		validator.RequiredString("name", n.Name),
		validator.RequiredString("email", n.Email),
	); err != nil {
		return errors.Join(ErrMissingFields, err)
	}
	return nil
}
