package services

import (
	"log"

	"gopkg.in/gomail.v2"

	"github.com/hostelhub/hostelhub_backend/config"
)

// Mailer delivers notification emails. The demo ships two
// implementations: a real SMTP dialer and a logger that just prints what
// would have been sent.
type Mailer interface {
	Send(to, subject, body string) error
}

// NewMailerFromConfig returns an SMTP mailer when a relay host is
// configured and the logging mailer otherwise.
func NewMailerFromConfig(cfg config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		log.Println("SMTP_HOST not set, simulated email delivery enabled")
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

// LogMailer writes the email to the process log instead of sending it.
// This is where a real delivery integration (SendGrid, SES, a relay)
// would plug in.
type LogMailer struct{}

func (m *LogMailer) Send(to, subject, body string) error {
	log.Printf("[EMAIL] To: %s", to)
	log.Printf("[EMAIL] Subject: %s", subject)
	log.Printf("[EMAIL] Body: %s", body)
	return nil
}

// SMTPMailer sends mail through the configured relay using gomail.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Pass)
	return d.DialAndSend(msg)
}
