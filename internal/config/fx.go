package config

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(provideInvoiceConfig),
)

func provideInvoiceConfig(cfg Config, log *zap.Logger) (*InvoiceConfigHolder, error) {
	if cfg.InvoiceConfigDir != "" {
		return NewInvoiceConfigHolder(log, cfg.InvoiceConfigDir)
	}
	return NewInvoiceConfigHolder(log)
}
