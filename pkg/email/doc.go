// Package email provides a transport-agnostic interface for sending
// transactional HTML emails.
//
// # Architecture
//
// The package is built around the EmailSender interface. Three
// implementations are selected by Config.Driver through New:
//   - SMTP (default) delivers through any relay using emersion/go-smtp,
//     with optional STARTTLS upgrade or implicit TLS and SASL PLAIN/LOGIN auth
//   - Postmark delivers through the Postmark transactional API
//   - DevSender writes each message to disk as HTML plus JSON metadata
//
// Every implementation validates SendEmailParams before doing any I/O,
// makes exactly one delivery attempt and is safe for concurrent use.
//
// # Usage
//
//	sender, err := email.New(cfg)
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
//	defer cancel()
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "user@example.com",
//	    Subject:  "Welcome!",
//	    BodyHTML: html,
//	})
//
// Bodies are usually rendered from templ components:
//
//	html, err := templates.Render(ctx, templates.Confirmation(name, addr))
//
// # Configuration
//
// Config carries env tags and is embedded into the application config.
// SMTP credentials may be empty; a relay that requires them fails at send
// time rather than at startup.
//
// # Error Handling
//
//   - ErrInvalidConfig: the selected driver cannot be built from Config
//   - ErrInvalidParams: SendEmailParams failed validation
//   - ErrFailedToSendEmail: delivery failed for any reason
//
// Check them with errors.Is. The underlying cause (for example an
// *smtp.SMTPError) stays reachable through errors.As.
package email
