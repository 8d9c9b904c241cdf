package config

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// InvoiceConfig carries the operator-tunable parts of invoice generation.
type InvoiceConfig struct {
	Template InvoiceTemplateConfig `mapstructure:"template"`
}

// InvoiceTemplateConfig is the example invoice served to UIs for pre-population.
type InvoiceTemplateConfig struct {
	ClientName  string                `mapstructure:"clientName"`
	ClientEmail string                `mapstructure:"clientEmail"`
	Items       []InvoiceTemplateItem `mapstructure:"items"`
}

type InvoiceTemplateItem struct {
	Description string  `mapstructure:"description"`
	Quantity    int64   `mapstructure:"quantity"`
	Price       float64 `mapstructure:"price"`
}

func DefaultInvoiceConfig() InvoiceConfig {
	return InvoiceConfig{
		Template: InvoiceTemplateConfig{
			Items: []InvoiceTemplateItem{
				{Description: "Lead Generation Service", Quantity: 1, Price: 500},
			},
		},
	}
}

type InvoiceConfigHolder struct {
	current atomic.Value // holds InvoiceConfig
}

// NewInvoiceConfigHolder reads invoice.yml from the given directories (or the
// default search path) and keeps watching it for changes.
func NewInvoiceConfigHolder(log *zap.Logger, dirs ...string) (*InvoiceConfigHolder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("config.invoice")

	v := viper.New()
	v.SetConfigName("invoice")
	v.SetConfigType("yml")
	if len(dirs) == 0 {
		dirs = []string{"/etc/leadflow", "."}
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		found = false
	}

	cfg, err := decodeInvoiceConfig(v)
	if err != nil {
		return nil, err
	}

	holder := &InvoiceConfigHolder{}
	holder.current.Store(cfg)

	if !found {
		log.Info("invoice config not found, using defaults")
		return holder, nil
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := decodeInvoiceConfig(v)
		if err != nil {
			log.Warn("invalid invoice config ignored", zap.String("file", e.Name), zap.Error(err))
			return
		}
		holder.current.Store(updated)
		log.Info("invoice config reloaded", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return holder, nil
}

// NewStaticInvoiceConfigHolder returns a holder pinned to cfg.
func NewStaticInvoiceConfigHolder(cfg InvoiceConfig) *InvoiceConfigHolder {
	holder := &InvoiceConfigHolder{}
	holder.current.Store(withInvoiceDefaults(cfg))
	return holder
}

func (h *InvoiceConfigHolder) Get() InvoiceConfig {
	if h == nil {
		return DefaultInvoiceConfig()
	}
	return h.current.Load().(InvoiceConfig)
}

func decodeInvoiceConfig(v *viper.Viper) (InvoiceConfig, error) {
	var cfg InvoiceConfig
	if err := v.UnmarshalKey("invoice", &cfg); err != nil {
		return InvoiceConfig{}, err
	}
	cfg = withInvoiceDefaults(cfg)
	if err := validateInvoiceConfig(cfg); err != nil {
		return InvoiceConfig{}, err
	}
	return cfg, nil
}

func withInvoiceDefaults(cfg InvoiceConfig) InvoiceConfig {
	defaults := DefaultInvoiceConfig()
	if len(cfg.Template.Items) == 0 {
		cfg.Template.Items = defaults.Template.Items
	}
	return cfg
}

func validateInvoiceConfig(cfg InvoiceConfig) error {
	for i, item := range cfg.Template.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("invoice.template.items[%d].quantity must be at least 1", i)
		}
		if item.Price < 0 {
			return fmt.Errorf("invoice.template.items[%d].price cannot be negative", i)
		}
	}
	return nil
}
