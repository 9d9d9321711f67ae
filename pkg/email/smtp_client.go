package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
)

// smtpClient delivers messages through an SMTP relay using emersion/go-smtp.
// It opens one connection per message and holds no mutable state, so a
// single instance is shared by all requests.
type smtpClient struct {
	host      string
	addr      string
	username  string
	password  string
	from      string // header value, may include a display name
	envelope  string // bare address used for MAIL FROM
	tlsMode   string
	tlsConfig *tls.Config
}

// NewSMTPClient creates an SMTP-backed email sender.
// Empty credentials are accepted; authentication is skipped without a username.
func NewSMTPClient(cfg Config) (EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("%w: SMTPPort must be between 1 and 65535", ErrInvalidConfig)
	}

	mode := strings.ToLower(cfg.SMTPTLSMode)
	if mode == "" {
		mode = TLSModeSTARTTLS
	}
	switch mode {
	case TLSModeSTARTTLS, TLSModeTLS, TLSModePlain:
	default:
		return nil, fmt.Errorf("%w: SMTPTLSMode must be starttls, tls, or plain", ErrInvalidConfig)
	}

	envelope := cfg.SenderEmail
	if parsed, err := mail.ParseAddress(cfg.SenderEmail); err == nil {
		envelope = parsed.Address
	}

	return &smtpClient{
		host:      cfg.SMTPHost,
		addr:      net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		username:  cfg.SMTPUser,
		password:  cfg.SMTPPass,
		from:      cfg.SenderEmail,
		envelope:  envelope,
		tlsMode:   mode,
		tlsConfig: &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12},
	}, nil
}

// SendEmail performs one SMTP transaction. Dialing and every command are
// bounded by the context deadline; cancelling ctx aborts the connection.
func (c *smtpClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if err := params.Validate(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	msg, err := c.buildMessage(params, time.Now())
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	if err := c.deliver(ctx, params.SendTo, msg); err != nil {
		// Prefer the context error when the deadline is what broke the connection.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(ErrFailedToSendEmail, ctxErr, err)
		}
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}

func (c *smtpClient) deliver(ctx context.Context, to string, msg []byte) error {
	client, stops, err := c.connect(ctx)
	defer func() {
		for _, stop := range stops {
			stop()
		}
	}()
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if c.username != "" {
		_, mechs := client.Extension("AUTH")
		if err := client.Auth(c.saslClient(mechs)); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}

	if err := client.SendMail(c.envelope, []string{to}, bytes.NewReader(msg)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	// The message is accepted once DATA completes; some relays drop the
	// connection right after, so QUIT errors are ignored.
	_ = client.Quit()
	return nil
}

// connect opens a session ready for AUTH/MAIL. In starttls mode the first
// session only reads the EHLO capabilities: go-smtp upgrades a connection
// solely through NewClientStartTLS, so a relay offering STARTTLS is redialed
// and upgraded before any credentials are sent. A relay without the
// extension keeps the plaintext session.
func (c *smtpClient) connect(ctx context.Context) (*smtp.Client, []func() bool, error) {
	var stops []func() bool

	conn, stop, err := c.dial(ctx)
	if err != nil {
		return nil, stops, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	stops = append(stops, stop)

	client := smtp.NewClient(conn)
	if c.tlsMode != TLSModeSTARTTLS {
		return client, stops, nil
	}
	if ok, _ := client.Extension("STARTTLS"); !ok {
		return client, stops, nil
	}
	_ = client.Quit()
	_ = client.Close()

	conn, stop, err = c.dial(ctx)
	if err != nil {
		return nil, stops, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	stops = append(stops, stop)

	client, err = smtp.NewClientStartTLS(conn, c.tlsConfig)
	if err != nil {
		_ = conn.Close()
		return nil, stops, fmt.Errorf("failed to start TLS: %w", err)
	}
	return client, stops, nil
}

// dial connects to the relay and ties the connection to ctx: the deadline
// bounds every read and write, and cancellation closes the socket. The
// returned stop func releases the cancellation hook.
func (c *smtpClient) dial(ctx context.Context) (net.Conn, func() bool, error) {
	dialer := &net.Dialer{}

	var (
		conn net.Conn
		err  error
	)
	if c.tlsMode == TLSModeTLS {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: c.tlsConfig}
		conn, err = tlsDialer.DialContext(ctx, "tcp", c.addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", c.addr)
	}
	if err != nil {
		return nil, nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	return conn, stop, nil
}

// saslClient prefers PLAIN and falls back to LOGIN when that is all the relay offers.
func (c *smtpClient) saslClient(mechs string) sasl.Client {
	offered := strings.Fields(strings.ToUpper(mechs))
	hasPlain, hasLogin := false, false
	for _, m := range offered {
		switch m {
		case sasl.Plain:
			hasPlain = true
		case sasl.Login:
			hasLogin = true
		}
	}
	if hasLogin && !hasPlain {
		return sasl.NewLoginClient(c.username, c.password)
	}
	return sasl.NewPlainClient("", c.username, c.password)
}

// buildMessage renders the RFC 5322 message with a quoted-printable HTML body.
func (c *smtpClient) buildMessage(params SendEmailParams, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	header := func(key, value string) {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString("\r\n")
	}

	header("From", c.from)
	header("To", params.SendTo)
	header("Subject", mime.QEncoding.Encode("utf-8", params.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", c.messageID())
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	header("Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(params.BodyHTML)); err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}
	buf.WriteString("\r\n")

	return buf.Bytes(), nil
}

func (c *smtpClient) messageID() string {
	domain := c.host
	if at := strings.LastIndex(c.envelope, "@"); at >= 0 && at < len(c.envelope)-1 {
		domain = c.envelope[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}
