package submission

import "time"

// Config controls message fan-out for each accepted submission.
type Config struct {
	// NotifyTo receives a copy of every submission. Empty disables the notification.
	NotifyTo string `env:"NOTIFY_TO"`
	// SendTimeout bounds each individual send.
	SendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"10s"`
}
