// Package assistant builds the sales prompts sent to the completion API.
package assistant

import (
	"context"
	"strings"

	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/providers/llm"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	coldMessageSystemPrompt = "You are a professional sales assistant. Generate personalized cold messages for lead generation. " +
		"Be professional, concise, and value-focused. Avoid being pushy or salesy. " +
		"Focus on how you can help solve their potential problems or add value to their business."

	replySystemPrompt = "You are a professional sales representative having a conversation with a potential client. " +
		"Be helpful, knowledgeable, and focus on understanding their needs. " +
		"Provide value in every interaction and guide the conversation towards a potential business relationship. " +
		"Keep responses concise and professional."
)

// Turn is one earlier message in a thread. Sent marks messages we sent.
type Turn struct {
	Sent    bool
	Content string
}

type Params struct {
	fx.In

	Log *zap.Logger
	LLM llm.Provider
}

type Assistant struct {
	log *zap.Logger
	llm llm.Provider
}

func New(p Params) *Assistant {
	return &Assistant{
		log: p.Log.Named("assistant"),
		llm: p.LLM,
	}
}

// ColdMessage drafts a first outreach message for a lead.
func (a *Assistant) ColdMessage(ctx context.Context, lead leaddomain.Lead, extraContext string) (string, error) {
	return a.llm.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: coldMessageSystemPrompt},
			{Role: llm.RoleUser, Content: coldMessagePrompt(lead, extraContext)},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
}

// Reply answers the latest client message given the earlier thread.
func (a *Assistant) Reply(ctx context.Context, history []Turn, message string) (string, error) {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: replySystemPrompt})
	for _, turn := range history {
		role := llm.RoleUser
		if turn.Sent {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	return a.llm.Complete(ctx, llm.CompletionRequest{
		Messages:    messages,
		MaxTokens:   400,
		Temperature: 0.8,
	})
}

func coldMessagePrompt(lead leaddomain.Lead, extraContext string) string {
	var b strings.Builder
	b.WriteString("Generate a personalized cold message for:\n")
	b.WriteString("Name: " + lead.Name + "\n")
	b.WriteString("Company: " + orUnknown(lead.Company) + "\n")
	b.WriteString("Position: " + orUnknown(lead.Position) + "\n")
	b.WriteString("Platform: " + lead.Platform + "\n")
	if extraContext = strings.TrimSpace(extraContext); extraContext != "" {
		b.WriteString("Additional context: " + extraContext + "\n")
	}
	b.WriteString("\nKeep it under 150 words and make it conversational.")
	return b.String()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
