package telegram

import (
	"context"
	"errors"
)

// Provider sends bot replies to a chat.
type Provider interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

var ErrNotConfigured = errors.New("telegram_not_configured")

// NoOpProvider drops replies when no bot token is configured.
type NoOpProvider struct{}

func (p *NoOpProvider) SendMessage(context.Context, int64, string) error {
	return nil
}
