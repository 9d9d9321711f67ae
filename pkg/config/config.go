package config

import (
	"net"

	"github.com/indishmarketer/simple-form-app/pkg/email"
	"github.com/indishmarketer/simple-form-app/pkg/httpserver"
	"github.com/indishmarketer/simple-form-app/svc/submission"
)

// Config is the resolved, read-only process configuration.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"production"` // development, staging or production
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	Port     string `env:"PORT" envDefault:"3000"`

	// ViewsDir overrides the embedded form and thank-you pages when set.
	ViewsDir string `env:"VIEWS_DIR"`

	HTTP       httpserver.Config
	Mail       email.Config
	Submission submission.Config
}

// Addr returns the listen address built from HOST and PORT.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
