package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "leadflow"

// Dispatch outcomes recorded for invoice emails.
const (
	DispatchDelivered = "delivered"
	DispatchFailed    = "failed"
	DispatchSkipped   = "skipped"
)

// Metrics exposes application-level instruments on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	invoicesGenerated prometheus.Counter
	invoiceDispatch   *prometheus.CounterVec
	leadsGenerated    prometheus.Counter
	messages          *prometheus.CounterVec
	botCommands       *prometheus.CounterVec
	rateLimitDenied   *prometheus.CounterVec
}

// Stats is a point-in-time view of the business counters.
type Stats struct {
	LeadsGenerated    int64
	MessagesSent      int64
	InvoicesGenerated int64
	InvoicesSent      int64
}

// ConversionRate is the share of generated leads that ended in a sent invoice, in percent.
func (s Stats) ConversionRate() float64 {
	if s.LeadsGenerated <= 0 {
		return 0
	}
	return float64(s.InvoicesSent) / float64(s.LeadsGenerated) * 100
}

// New registers all instruments on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		invoicesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_generated_total",
			Help:      "Invoices rendered.",
		}),
		invoiceDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_dispatch_total",
			Help:      "Invoice email dispatch attempts by outcome.",
		}, []string{"outcome"}),
		leadsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_generated_total",
			Help:      "Mock leads generated.",
		}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Outreach and conversation messages by type.",
		}, []string{"type"}),
		botCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bot_commands_total",
			Help:      "Telegram bot commands handled.",
		}, []string{"command"}),
		rateLimitDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_denied_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"scope"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.invoicesGenerated,
		m.invoiceDispatch,
		m.leadsGenerated,
		m.messages,
		m.botCommands,
		m.rateLimitDenied,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordInvoiceGenerated() {
	if m == nil {
		return
	}
	m.invoicesGenerated.Inc()
}

func (m *Metrics) RecordInvoiceDispatch(outcome string) {
	if m == nil {
		return
	}
	m.invoiceDispatch.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordLeadsGenerated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.leadsGenerated.Add(float64(n))
}

func (m *Metrics) RecordMessage(messageType string) {
	if m == nil {
		return
	}
	m.messages.WithLabelValues(strings.TrimSpace(messageType)).Inc()
}

func (m *Metrics) RecordBotCommand(command string) {
	if m == nil {
		return
	}
	m.botCommands.WithLabelValues(command).Inc()
}

func (m *Metrics) RecordRateLimitDenied(scope string) {
	if m == nil {
		return
	}
	m.rateLimitDenied.WithLabelValues(scope).Inc()
}

// Snapshot reads the business counters back from the registry.
func (m *Metrics) Snapshot() Stats {
	if m == nil {
		return Stats{}
	}

	var messagesSent int64
	for _, messageType := range []string{"cold_message", "conversation"} {
		messagesSent += counterValue(m.messages.WithLabelValues(messageType))
	}

	return Stats{
		LeadsGenerated:    counterValue(m.leadsGenerated),
		MessagesSent:      messagesSent,
		InvoicesGenerated: counterValue(m.invoicesGenerated),
		InvoicesSent:      counterValue(m.invoiceDispatch.WithLabelValues(DispatchDelivered)),
	}
}

func counterValue(c prometheus.Counter) int64 {
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		return 0
	}
	return int64(metric.GetCounter().GetValue())
}
