// Package email sends transactional mail. The Provider interface is the
// injected capability; the SMTP implementation is selected at process start
// and a no-op provider covers environments without mail credentials.
package email

// Email is a single outbound message.
type Email struct {
	To      []string
	Subject string
	HTML    string
}

type Provider interface {
	// Send delivers a prepared message.
	Send(msg *Email) error

	// SendVerification mails the account-verification link for the token.
	SendVerification(to string, token string) error

	// Close releases provider resources.
	Close() error
}
