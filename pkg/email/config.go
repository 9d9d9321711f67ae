package email

// Supported delivery drivers.
const (
	DriverSMTP     = "smtp"
	DriverPostmark = "postmark"
	DriverDev      = "dev"
)

// Supported SMTP connection security modes.
const (
	// TLSModeSTARTTLS upgrades the connection when the relay advertises
	// STARTTLS and continues in plain text otherwise.
	TLSModeSTARTTLS = "starttls"
	// TLSModeTLS uses implicit TLS from the first byte (usually port 465).
	TLSModeTLS = "tls"
	// TLSModePlain never negotiates TLS.
	TLSModePlain = "plain"
)

// Config holds email transport configuration.
// Every field has a default or may be empty: missing SMTP credentials are
// tolerated here and surface later as delivery failures.
type Config struct {
	Driver      string `env:"MAIL_DRIVER" envDefault:"smtp"`
	SenderEmail string `env:"MAIL_FROM" envDefault:"noreply@example.com"`

	SMTPHost    string `env:"SMTP_HOST" envDefault:"smtp-relay.brevo.com"`
	SMTPPort    int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser    string `env:"SMTP_USER"`
	SMTPPass    string `env:"SMTP_PASS"`
	SMTPTLSMode string `env:"SMTP_TLS_MODE" envDefault:"starttls"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	// PostmarkBaseURL overrides the API endpoint; empty keeps the library default.
	PostmarkBaseURL string `env:"POSTMARK_BASE_URL"`

	DevDir string `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
