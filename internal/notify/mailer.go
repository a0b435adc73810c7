package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer sends notification email. Implementations must be safe for
// concurrent use; callers treat every send as best-effort.
type Mailer interface {
	SendWelcome(username, email string) error
}

// Config holds SMTP settings for the outbound mail sender.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg Config
	log *zap.Logger
}

// NewSMTPMailer creates a new SMTP-backed mailer.
func NewSMTPMailer(cfg Config, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// SendWelcome sends the signup welcome message to the user's address.
func (m *SMTPMailer) SendWelcome(username, email string) error {
	subject := "Welcome to Goodreads Clone"
	body := fmt.Sprintf("Hi, %s. Welcome to Goodreads Clone. Enjoy the books and reviews.", username)

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + email,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, []byte(msg)); err != nil {
		m.log.Warn("failed to send welcome email",
			zap.String("email", email),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	m.log.Info("welcome email sent", zap.String("email", email))
	return nil
}

// NopMailer discards all mail. Used when outbound mail is disabled.
type NopMailer struct{}

// SendWelcome implements Mailer.
func (NopMailer) SendWelcome(username, email string) error { return nil }
