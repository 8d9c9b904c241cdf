package email

import (
	"context"
	"errors"
)

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

type Provider interface {
	Send(ctx context.Context, msg Message) error
	SendTemplate(ctx context.Context, msg Message, templateName string, data any) error
}

var (
	ErrNotConfigured = errors.New("email_not_configured")
	ErrNoRecipients  = errors.New("email_no_recipients")
)

// DisabledProvider stands in when no SMTP relay is configured. Every send
// fails so callers never report an email that was not delivered.
type DisabledProvider struct{}

func (p *DisabledProvider) Send(context.Context, Message) error {
	return ErrNotConfigured
}

func (p *DisabledProvider) SendTemplate(context.Context, Message, string, any) error {
	return ErrNotConfigured
}
