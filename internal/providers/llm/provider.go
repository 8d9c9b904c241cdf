package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Provider returns the text of a single chat completion.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var (
	ErrNotConfigured = errors.New("llm_not_configured")
	ErrEmptyResponse = errors.New("llm_empty_response")
)
