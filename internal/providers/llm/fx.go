package llm

import (
	"github.com/smallbiznis/leadflow/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.llm",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config, log *zap.Logger) Provider {
	if cfg.LLM.APIKey == "" {
		log.Named("providers.llm").Warn("OPENROUTER_API_KEY not set, AI generation will fail")
	}
	return NewOpenRouter(Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Referer: cfg.LLM.Referer,
		Timeout: cfg.LLM.Timeout,
	}, nil)
}
