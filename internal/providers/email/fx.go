package email

import (
	"github.com/smallbiznis/leadflow/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.email",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config, log *zap.Logger) Provider {
	if !cfg.Email.Enabled() {
		log.Named("providers.email").Warn("SMTP_HOST not set, outgoing email disabled")
		return &DisabledProvider{}
	}
	return NewSMTP(Config{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		Timeout:  cfg.Email.Timeout,
	})
}
