package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/smallbiznis/leadflow/internal/assistant"
	"github.com/smallbiznis/leadflow/internal/clock"
	"github.com/smallbiznis/leadflow/internal/conversation/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/observability/logger"
	"github.com/smallbiznis/leadflow/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Repo    domain.Repository
	Writer  domain.Writer
	Mailer  domain.ColdMailer
	Clock   clock.Clock
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	repo    domain.Repository
	writer  domain.Writer
	mailer  domain.ColdMailer
	clock   clock.Clock
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("conversation.service"),
		repo:    p.Repo,
		writer:  p.Writer,
		mailer:  p.Mailer,
		clock:   p.Clock,
		metrics: p.Metrics,
	}
}

func (s *Service) Send(ctx context.Context, req domain.SendMessageRequest) (*domain.SendMessageResult, error) {
	leadID := strings.TrimSpace(req.LeadID)
	if leadID == "" && req.Lead == nil {
		return nil, domain.ErrLeadRequired
	}

	switch {
	case req.Type == domain.TypeColdMessage && req.Lead != nil:
		return s.sendColdMessage(ctx, *req.Lead, leadID, req.Message)
	case req.Type == domain.TypeConversation && leadID != "" && strings.TrimSpace(req.Message) != "":
		return s.continueConversation(ctx, leadID, req.Message)
	default:
		return nil, domain.ErrUnsupportedMessage
	}
}

// sendColdMessage drafts and emails an opener. The message is recorded
// only when the email went out.
func (s *Service) sendColdMessage(ctx context.Context, lead leaddomain.Lead, leadID, extraContext string) (*domain.SendMessageResult, error) {
	text, err := s.writer.ColdMessage(ctx, lead, extraContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	emailed := true
	if err := s.mailer.SendColdEmail(ctx, lead, text); err != nil {
		emailed = false
		logger.WithLead(s.log, lead.ID).Warn("cold email failed", zap.Error(err))
	}

	if emailed {
		if lead.ID != "" {
			leadID = lead.ID
		}
		now := s.clock.Now()
		if err := s.repo.SaveMessage(ctx, s.newMessage(leadID, text, domain.MessageSent, domain.ChannelEmail, now)); err != nil {
			return nil, err
		}
		s.metrics.RecordMessage(domain.TypeColdMessage)
	}

	return &domain.SendMessageResult{
		Success: emailed,
		Message: text,
		Type:    domain.TypeColdMessage,
	}, nil
}

func (s *Service) continueConversation(ctx context.Context, leadID, message string) (*domain.SendMessageResult, error) {
	history, err := s.repo.GetConversation(ctx, leadID)
	if err != nil {
		return nil, err
	}

	turns := make([]assistant.Turn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, assistant.Turn{
			Sent:    msg.Type == domain.MessageSent,
			Content: msg.Content,
		})
	}

	reply, err := s.writer.Reply(ctx, turns, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	now := s.clock.Now()
	if err := s.repo.SaveMessage(ctx, s.newMessage(leadID, message, domain.MessageReceived, domain.ChannelChat, now)); err != nil {
		return nil, err
	}
	if err := s.repo.SaveMessage(ctx, s.newMessage(leadID, reply, domain.MessageSent, domain.ChannelChat, now)); err != nil {
		return nil, err
	}
	s.metrics.RecordMessage(domain.TypeConversation)

	return &domain.SendMessageResult{
		Success: true,
		Message: reply,
		Type:    domain.TypeConversation,
	}, nil
}

func (s *Service) Conversation(ctx context.Context, leadID string) ([]domain.Message, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, domain.ErrLeadIDRequired
	}
	messages, err := s.repo.GetConversation(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

func (s *Service) newMessage(leadID, content string, direction domain.MessageDirection, channel string, at time.Time) domain.Message {
	return domain.Message{
		ID:        ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()).String(),
		LeadID:    leadID,
		Content:   content,
		Type:      direction,
		Timestamp: at,
		Platform:  channel,
	}
}
