package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	VerifyURL string // base URL for verification links
}

// SMTPProvider delivers mail through a plain SMTP relay via gomail.
type SMTPProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg SMTPConfig) (*SMTPProvider, error) {
	if cfg.Host == "" || cfg.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

func (p *SMTPProvider) Send(msg *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendVerification(to string, token string) error {
	html, err := renderVerification(verificationData{
		VerifyLink: fmt.Sprintf("%s?token=%s", p.cfg.VerifyURL, token),
	})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Verify your email address",
		HTML:    html,
	})
}

func (p *SMTPProvider) Close() error { return nil }

var _ Provider = (*SMTPProvider)(nil)

// NoopProvider is used when no SMTP credentials are configured; sends are
// dropped silently so registration still works in development.
type NoopProvider struct{}

func (NoopProvider) Send(*Email) error                     { return nil }
func (NoopProvider) SendVerification(string, string) error { return nil }
func (NoopProvider) Close() error                          { return nil }

var _ Provider = NoopProvider{}
