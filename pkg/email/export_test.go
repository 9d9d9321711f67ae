package email

import "crypto/tls"

// NewSMTPClientWithTLSConfig builds an SMTP sender that trusts tlsConfig
// instead of the system roots.
func NewSMTPClientWithTLSConfig(cfg Config, tlsConfig *tls.Config) (EmailSender, error) {
	sender, err := NewSMTPClient(cfg)
	if err != nil {
		return nil, err
	}
	sender.(*smtpClient).tlsConfig = tlsConfig
	return sender, nil
}
