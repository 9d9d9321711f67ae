package submission

import "errors"

var (
	ErrMissingFields      = errors.New("submission: name and email are required")
	ErrConfirmationFailed = errors.New("submission: failed to send confirmation email")
	ErrNotificationFailed = errors.New("submission: failed to send notification email")
)
