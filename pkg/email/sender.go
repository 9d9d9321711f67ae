package email

import (
	"fmt"
	"strings"
)

// New builds the EmailSender selected by cfg.Driver.
func New(cfg Config) (EmailSender, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverSMTP, "":
		return NewSMTPClient(cfg)
	case DriverPostmark:
		return NewPostmarkClient(cfg)
	case DriverDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown mail driver %q", ErrInvalidConfig, cfg.Driver)
	}
}

// MustNew works like New but panics on invalid configuration.
func MustNew(cfg Config) EmailSender {
	sender, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return sender
}
