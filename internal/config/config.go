package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	AppURL      string

	InvoiceConfigDir string

	Observability ObservabilityConfig
	Email         EmailConfig
	LLM       LLMConfig
	Telegram  TelegramConfig
	RateLimit RateLimitConfig
}

// ObservabilityConfig drives logging and trace export.
type ObservabilityConfig struct {
	LogLevel       string
	LogFormat      string
	TracingEnabled bool
	OTLPEndpoint   string
	OTLPProtocol   string
	SamplingRatio  float64
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Enabled reports whether an SMTP relay is configured.
func (c EmailConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Referer string
	Timeout time.Duration
}

type TelegramConfig struct {
	BotToken      string
	WebhookSecret string
	APIBaseURL    string
}

type RateLimitConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Rate          int64
	Burst         int64
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	appURL := strings.TrimRight(getenv("APP_URL", "http://localhost:8080"), "/")

	cfg := Config{
		AppName:          getenv("APP_SERVICE", "leadflow"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      getenv("ENVIRONMENT", "development"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		AppURL:           appURL,
		InvoiceConfigDir: strings.TrimSpace(getenv("INVOICE_CONFIG_DIR", "")),
		Observability: ObservabilityConfig{
			LogLevel:       strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL", "info"))),
			LogFormat:      strings.ToLower(strings.TrimSpace(getenv("LOG_FORMAT", ""))),
			TracingEnabled: getenvBool("OTEL_ENABLED", false),
			OTLPEndpoint:   strings.TrimSpace(getenv("OTEL_EXPORTER_OTLP_ENDPOINT", getenv("OTLP_ENDPOINT", "localhost:4317"))),
			OTLPProtocol:   strings.ToLower(strings.TrimSpace(getenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", getenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")))),
			SamplingRatio:  getenvFloat("OTEL_SAMPLING_RATIO", 0.1),
		},
		Email: EmailConfig{
			Host:     strings.TrimSpace(getenv("SMTP_HOST", "")),
			Port:     int(getenvInt64("SMTP_PORT", 587)),
			Username: strings.TrimSpace(getenv("SMTP_USER", "")),
			Password: getenv("SMTP_PASS", ""),
			From:     strings.TrimSpace(getenv("SMTP_FROM", "")),
			Timeout:  getenvDuration("SMTP_TIMEOUT", 15*time.Second),
		},
		LLM: LLMConfig{
			BaseURL: strings.TrimRight(getenv("AI_BASE_URL", "https://openrouter.ai/api/v1"), "/"),
			APIKey:  strings.TrimSpace(getenv("OPENROUTER_API_KEY", "")),
			Model:   getenv("AI_MODEL", "openai/gpt-4o-mini"),
			Referer: appURL,
			Timeout: getenvDuration("AI_TIMEOUT", 30*time.Second),
		},
		Telegram: TelegramConfig{
			BotToken:      strings.TrimSpace(getenv("TELEGRAM_BOT_TOKEN", "")),
			WebhookSecret: strings.TrimSpace(getenv("TELEGRAM_WEBHOOK_SECRET", "")),
			APIBaseURL:    strings.TrimRight(getenv("TELEGRAM_API_URL", "https://api.telegram.org"), "/"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       getenvBool("RATE_LIMIT_ENABLED", false),
			RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getenv("REDIS_PASSWORD", ""),
			RedisDB:       int(getenvInt64("REDIS_DB", 0)),
			Rate:          getenvInt64("RATE_LIMIT_RATE", 5),
			Burst:         getenvInt64("RATE_LIMIT_BURST", 20),
		},
	}

	// The sender defaults to the SMTP account, matching most relays.
	if cfg.Email.From == "" {
		cfg.Email.From = cfg.Email.Username
	}

	return cfg
}

// IsProduction reports whether the service runs in production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt64(key string, def int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
