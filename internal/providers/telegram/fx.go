package telegram

import (
	"github.com/smallbiznis/leadflow/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.telegram",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config, log *zap.Logger) Provider {
	if cfg.Telegram.BotToken == "" {
		log.Named("providers.telegram").Warn("TELEGRAM_BOT_TOKEN not set, bot replies are dropped")
		return &NoOpProvider{}
	}
	return NewClient(Config{
		BaseURL: cfg.Telegram.APIBaseURL,
		Token:   cfg.Telegram.BotToken,
	}, nil)
}
