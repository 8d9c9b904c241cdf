package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_URL", "https://leads.example.com/")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_USER", "sales@example.com")
	t.Setenv("SMTP_FROM", "")

	cfg := Load()

	assert.Equal(t, "https://leads.example.com", cfg.AppURL)
	assert.Equal(t, "sales@example.com", cfg.Email.From)
	assert.False(t, cfg.Email.Enabled())
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, cfg.AppURL, cfg.LLM.Referer)
}

func TestLoadObservability(t *testing.T) {
	t.Setenv("LOG_LEVEL", " DEBUG ")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTLP_ENDPOINT", "collector:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "HTTP")
	t.Setenv("OTEL_SAMPLING_RATIO", "0.5")

	obs := Load().Observability

	assert.Equal(t, "debug", obs.LogLevel)
	assert.Equal(t, "", obs.LogFormat)
	assert.True(t, obs.TracingEnabled)
	assert.Equal(t, "collector:4317", obs.OTLPEndpoint)
	assert.Equal(t, "http", obs.OTLPProtocol)
	assert.Equal(t, 0.5, obs.SamplingRatio)
}

func TestGetenvHelpers(t *testing.T) {
	t.Setenv("LF_BOOL", "yes")
	t.Setenv("LF_INT", "nope")
	t.Setenv("LF_FLOAT", "half")
	t.Setenv("LF_DURATION", "-3s")

	assert.True(t, getenvBool("LF_BOOL", false))
	assert.Equal(t, int64(7), getenvInt64("LF_INT", 7))
	assert.Equal(t, 0.25, getenvFloat("LF_FLOAT", 0.25))
	assert.Equal(t, time.Second, getenvDuration("LF_DURATION", time.Second))
}
