package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/leadflow/internal/observability/context"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinMiddlewareAssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	var seen string
	r := gin.New()
	r.Use(GinMiddleware(zap.New(core), MiddlewareConfig{}))
	r.GET("/api/ping", func(c *gin.Context) {
		seen = obscontext.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-Id"))

	entries := logs.FilterMessage("http_request").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "/api/ping", entries[0].ContextMap()["route"])
		assert.Equal(t, seen, entries[0].ContextMap()["request_id"])
	}
}

func TestGinMiddlewareKeepsIncomingRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(GinMiddleware(zap.NewNop(), MiddlewareConfig{}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
}

func TestLogRequestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	logRequest(log, "/metrics", http.StatusOK, nil)
	logRequest(log, "/api/invoice", http.StatusInternalServerError, nil)

	all := logs.All()
	if assert.Len(t, all, 2) {
		assert.Equal(t, zapcore.DebugLevel, all[0].Level)
		assert.Equal(t, zapcore.ErrorLevel, all[1].Level)
	}
}

func TestGinMiddlewareLogsRequestOutcome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core), MiddlewareConfig{}))
	r.POST("/api/generate-invoice", func(c *gin.Context) {
		c.Set(obscontext.KeyInvoiceID, "INV-1792056600000")
		c.Set(obscontext.KeyEmailSent, true)
		c.Status(http.StatusOK)
	})
	r.POST("/api/generate-leads", func(c *gin.Context) {
		c.Set(obscontext.KeyRateLimitScope, "leads")
		c.Set(obscontext.KeyRateLimited, true)
		c.Status(http.StatusTooManyRequests)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/generate-invoice", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/generate-leads", nil))

	entries := logs.FilterMessage("http_request").All()
	if assert.Len(t, entries, 2) {
		invoice := entries[0].ContextMap()
		assert.Equal(t, "INV-1792056600000", invoice["invoice_id"])
		assert.Equal(t, true, invoice["email_sent"])
		assert.NotContains(t, invoice, "ratelimit_scope")

		limited := entries[1].ContextMap()
		assert.Equal(t, "leads", limited["ratelimit_scope"])
		assert.NotContains(t, limited, "invoice_id")
	}
}
