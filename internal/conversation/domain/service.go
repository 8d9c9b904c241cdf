package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/leadflow/internal/assistant"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
)

type SendMessageRequest struct {
	LeadID  string
	Message string
	Type    string
	Lead    *leaddomain.Lead
}

type SendMessageResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type Service interface {
	Send(ctx context.Context, req SendMessageRequest) (*SendMessageResult, error)
	Conversation(ctx context.Context, leadID string) ([]Message, error)
}

// Writer drafts outbound text.
type Writer interface {
	ColdMessage(ctx context.Context, lead leaddomain.Lead, extraContext string) (string, error)
	Reply(ctx context.Context, history []assistant.Turn, message string) (string, error)
}

// ColdMailer delivers a drafted cold message to a lead.
type ColdMailer interface {
	SendColdEmail(ctx context.Context, lead leaddomain.Lead, message string) error
}

var (
	ErrLeadRequired       = errors.New("lead_required")
	ErrLeadIDRequired     = errors.New("lead_id_required")
	ErrUnsupportedMessage = errors.New("unsupported_message")
	ErrGenerationFailed   = errors.New("generation_failed")
)
