package email

import "errors"

var (
	// ErrFailedToSendEmail wraps every delivery failure regardless of cause
	// (network, authentication, relay rejection).
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
	ErrInvalidConfig     = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams     = errors.New("mailer.errors.invalid_params")
)
