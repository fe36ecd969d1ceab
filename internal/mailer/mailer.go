// Package mailer composes and dispatches transactional email through SendGrid.
package mailer

import (
	"context"
	"errors"
)

// composition errors
var (
	ErrMissingRecipient = errors.New("message recipient is required")
	ErrMissingSender    = errors.New("message sender is required")
	ErrMissingSubject   = errors.New("message subject is required")
	ErrMissingBody      = errors.New("message body is required")
)

// Message is a fully composed email ready for dispatch.
type Message struct {
	To      string
	From    string
	Subject string
	HTML    string

	// BCC is optional; empty means none.
	BCC string

	// Sandbox asks the provider to validate the message without delivering it.
	Sandbox bool
}

// Validate checks that every required field is present. A message with any
// required field empty must not be dispatched.
func (m *Message) Validate() error {
	if m.To == "" {
		return ErrMissingRecipient
	}
	if m.From == "" {
		return ErrMissingSender
	}
	if m.Subject == "" {
		return ErrMissingSubject
	}
	if m.HTML == "" {
		return ErrMissingBody
	}
	return nil
}

// Mailer dispatches a composed message.
// This allows mocking in tests.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
