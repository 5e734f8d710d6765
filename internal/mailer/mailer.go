package mailer

import (
	"fmt"
	"log"

	"github.com/croftside/farmbase/internal/events"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer turns notification events into outbound mail via SendGrid. It is a
// plain bus subscriber; the services emitting events never see send failures.
type Mailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func New(apiKey, fromEmail, fromName string) *Mailer {
	return &Mailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Handle is registered on the event bus.
func (m *Mailer) Handle(event events.Event) {
	var subject, body string

	switch event.Name {
	case events.EventWelcomeEmail:
		subject = "Welcome to Farmbase"
		body = fmt.Sprintf("Hi %s, your account has been created. Log in to verify your email and start tracking your farms.", event.Data["name"])
	case events.EventSendVerification:
		subject = "Verify your account"
		body = fmt.Sprintf("Hi %s, your verification code is %s.", event.Data["name"], event.Data["token"])
	case events.EventSendResetToken:
		subject = "Reset your password"
		body = fmt.Sprintf("Hi %s, your password reset code is %s. If you did not request this, ignore this email.", event.Data["name"], event.Data["token"])
	default:
		return
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(event.Data["name"], event.Recipient)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := m.client.Send(message)
	if err != nil {
		log.Printf("mailer: failed to send %s to %s: %v", event.Name, event.Recipient, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("mailer: sendgrid rejected %s to %s: status %d", event.Name, event.Recipient, resp.StatusCode)
	}
}

// LogHandler is the fallback subscriber used when no SendGrid key is
// configured, so the flows stay observable in development.
func LogHandler(event events.Event) {
	log.Printf("event %s for %s: %v", event.Name, event.Recipient, event.Data)
}
