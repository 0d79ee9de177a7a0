package infra

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"gestionpos/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends e-mails with a PDF attachment through an SMTP relay guarded by
// a circuit breaker.
type Mailer struct {
	host    string
	user    string
	pass    string
	from    string
	addr    string
	breaker *CircuitBreaker
	send    func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewMailer returns nil when SMTP is not configured.
func NewMailer(cfg *config.Config, breaker *CircuitBreaker) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		host:    cfg.SMTPHost,
		user:    cfg.SMTPUser,
		pass:    cfg.SMTPPassword,
		from:    from,
		addr:    fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		breaker: breaker,
		send:    func(e *email.Email, addr string, auth smtp.Auth) error { return e.Send(addr, auth) },
	}
}

// Send delivers one message. ctx is checked before dialing; net/smtp has no
// context support once the connection is open.
func (m *Mailer) Send(ctx context.Context, to, subject, body, attachmentName string, attachment []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	if len(attachment) > 0 {
		if _, err := e.Attach(bytes.NewReader(attachment), attachmentName, "application/pdf"); err != nil {
			return fmt.Errorf("mailer: adjuntar PDF: %w", err)
		}
	}

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}
	return m.breaker.Execute(func() error {
		return m.send(e, m.addr, auth)
	})
}
