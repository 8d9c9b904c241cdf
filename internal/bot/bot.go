// Package bot answers Telegram webhook updates.
package bot

import (
	"context"
	"strings"

	"github.com/smallbiznis/leadflow/internal/assistant"
	"github.com/smallbiznis/leadflow/internal/config"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/observability/logger"
	"github.com/smallbiznis/leadflow/internal/observability/metrics"
	"github.com/smallbiznis/leadflow/internal/providers/telegram"
	"github.com/smallbiznis/leadflow/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Leads requested by /generate_leads.
var (
	quickLeadsPlatform = "LinkedIn"
	quickLeadsKeywords = []string{"tech", "startup", "business"}
)

const quickLeadsCount = 5

// Command labels recorded in metrics.
const (
	commandStart         = "start"
	commandHelp          = "help"
	commandGenerateLeads = "generate_leads"
	commandStats         = "stats"
	commandChat          = "chat"
	commandCreateInvoice = "create_invoice"
	commandUnknown       = "unknown"
	commandMessage       = "message"
)

// Replier answers free-form chat text.
type Replier interface {
	Reply(ctx context.Context, history []assistant.Turn, message string) (string, error)
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   config.Config
	Telegram telegram.Provider
	Leads    leaddomain.Service
	Replier  Replier
	Deduper  *ratelimit.UpdateDeduper `optional:"true"`
	Metrics  *metrics.Metrics         `optional:"true"`
}

type Bot struct {
	log      *zap.Logger
	appURL   string
	telegram telegram.Provider
	leads    leaddomain.Service
	replier  Replier
	deduper  *ratelimit.UpdateDeduper
	metrics  *metrics.Metrics
}

func New(p Params) *Bot {
	return &Bot{
		log:      p.Log.Named("bot"),
		appURL:   p.Config.AppURL,
		telegram: p.Telegram,
		leads:    p.Leads,
		replier:  p.Replier,
		deduper:  p.Deduper,
		metrics:  p.Metrics,
	}
}

// HandleUpdate replies to one webhook update. Updates without text are
// acknowledged and ignored. The returned error is a transport failure.
func (b *Bot) HandleUpdate(ctx context.Context, update telegram.Update) error {
	msg := update.Message
	if msg == nil || strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	first, err := b.deduper.FirstSeen(ctx, update.UpdateID)
	if err != nil {
		b.log.Warn("update dedupe failed", zap.Int64("update_id", update.UpdateID), zap.Error(err))
	} else if !first {
		b.log.Debug("duplicate update dropped", zap.Int64("update_id", update.UpdateID))
		return nil
	}

	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	command := commandName(text)

	fields := []zap.Field{zap.String("command", command)}
	if msg.From != nil {
		fields = append(fields, zap.Int64("user_id", msg.From.ID))
	}
	logger.WithChat(b.log, chatID).Info("telegram message", fields...)
	b.metrics.RecordBotCommand(command)

	switch command {
	case commandStart:
		return b.telegram.SendMessage(ctx, chatID, welcomeText(b.appURL))
	case commandHelp:
		return b.telegram.SendMessage(ctx, chatID, helpText)
	case commandGenerateLeads:
		return b.generateLeads(ctx, chatID)
	case commandStats:
		return b.telegram.SendMessage(ctx, chatID, statsText(b.metrics.Snapshot(), b.appURL))
	case commandChat:
		return b.telegram.SendMessage(ctx, chatID, chatModeText)
	case commandCreateInvoice:
		return b.telegram.SendMessage(ctx, chatID, invoiceText(b.appURL))
	case commandMessage:
		return b.reply(ctx, chatID, text)
	default:
		return b.telegram.SendMessage(ctx, chatID, fallbackText(b.appURL))
	}
}

func (b *Bot) generateLeads(ctx context.Context, chatID int64) error {
	if err := b.telegram.SendMessage(ctx, chatID, generatingLeadsText); err != nil {
		return err
	}

	leads, err := b.leads.Generate(ctx, leaddomain.GenerateLeadsRequest{
		Platform: quickLeadsPlatform,
		Keywords: quickLeadsKeywords,
		Count:    quickLeadsCount,
	})
	if err != nil {
		logger.WithChat(b.log, chatID).Warn("bot lead generation failed", zap.Error(err))
		return b.telegram.SendMessage(ctx, chatID, leadsFailedText)
	}
	return b.telegram.SendMessage(ctx, chatID, leadsText(leads))
}

// reply answers plain text with the assistant, falling back to the
// dashboard notice when generation fails.
func (b *Bot) reply(ctx context.Context, chatID int64, text string) error {
	if b.replier == nil {
		return b.telegram.SendMessage(ctx, chatID, fallbackText(b.appURL))
	}
	answer, err := b.replier.Reply(ctx, nil, text)
	if err != nil {
		logger.WithChat(b.log, chatID).Warn("bot reply failed", zap.Error(err))
		return b.telegram.SendMessage(ctx, chatID, fallbackText(b.appURL))
	}
	return b.telegram.SendMessage(ctx, chatID, aiReplyText(answer))
}

// commandName maps message text to a bounded command label.
// "/start@leadbot" resolves to "start"; any "/chat..." prefix is chat mode.
func commandName(text string) string {
	if !strings.HasPrefix(text, "/") {
		return commandMessage
	}
	name := strings.TrimPrefix(strings.Fields(text)[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	name = strings.ToLower(name)

	switch {
	case name == commandStart, name == commandHelp, name == commandGenerateLeads,
		name == commandStats, name == commandCreateInvoice:
		return name
	case strings.HasPrefix(name, commandChat):
		return commandChat
	default:
		return commandUnknown
	}
}
