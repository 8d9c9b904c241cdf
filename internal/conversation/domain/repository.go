package domain

import "context"

type Repository interface {
	SaveMessage(ctx context.Context, msg Message) error
	GetConversation(ctx context.Context, leadID string) ([]Message, error)
}
