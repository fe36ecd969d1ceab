package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/houraiteahouse/recruit-mailer/internal/logger"
)

const sendEndpoint = "/v3/mail/send"

// SendGrid sends messages through the SendGrid v3 mail API.
type SendGrid struct {
	client *sendgrid.Client
	log    *logger.Logger
}

// NewSendGrid creates a SendGrid mailer with the given API key.
func NewSendGrid(apiKey string, log *logger.Logger) *SendGrid {
	return NewSendGridWithHost(apiKey, "https://api.sendgrid.com", log)
}

// NewSendGridWithHost targets an alternate API host. Used in tests.
func NewSendGridWithHost(apiKey, host string, log *logger.Logger) *SendGrid {
	request := sendgrid.GetRequest(apiKey, sendEndpoint, host)
	request.Method = http.MethodPost
	return &SendGrid{
		client: &sendgrid.Client{Request: request},
		log:    log,
	}
}

// Send validates and dispatches msg. Success with msg.Sandbox set means the
// provider accepted the message without delivering it. No retry is attempted.
func (s *SendGrid) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendWithContext(ctx, build(msg))
	if err != nil {
		return fmt.Errorf("sendgrid dispatch: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		s.log.Error().
			Int("status", resp.StatusCode).
			Str("body", resp.Body).
			Msg("sendgrid rejected message")
		return fmt.Errorf("sendgrid dispatch: unexpected status %d", resp.StatusCode)
	}

	s.log.Info().
		Str("to", msg.To).
		Bool("sandbox", msg.Sandbox).
		Int("status", resp.StatusCode).
		Msg("message dispatched")

	return nil
}

// build maps a Message onto the SendGrid v3 payload.
func build(msg *Message) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", msg.From))
	m.Subject = msg.Subject
	m.AddContent(mail.NewContent("text/html", msg.HTML))

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	if msg.BCC != "" {
		p.AddBCCs(mail.NewEmail("", msg.BCC))
	}
	m.AddPersonalizations(p)

	settings := mail.NewMailSettings()
	settings.SetSandboxMode(mail.NewSetting(msg.Sandbox))
	m.SetMailSettings(settings)

	return m
}
