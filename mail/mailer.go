package mail

import (
	"fmt"
	"log"
	"net/smtp"
)

// Mailer delivers outbound notifications. The domain packages only build
// message content; delivery is this package's concern.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTP struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func (m SMTP) Send(to, subject, body string) error {
	auth := smtp.PlainAuth("", m.Sender, m.Password, m.Host)

	msg := "From: " + m.Sender + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n\n" +
		body

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	if err := smtp.SendMail(addr, auth, m.Sender, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	log.Printf("email sent successfully to %s", to)
	return nil
}

// Disabled is used when no SMTP credentials are configured.
type Disabled struct{}

func (Disabled) Send(to, subject, body string) error {
	log.Printf("email delivery disabled, skipping message to %s", to)
	return nil
}
