package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotReflectsCounters(t *testing.T) {
	m := New()

	m.RecordLeadsGenerated(10)
	m.RecordLeadsGenerated(0)
	m.RecordMessage("cold_message")
	m.RecordMessage("conversation")
	m.RecordMessage("conversation")
	m.RecordInvoiceGenerated()
	m.RecordInvoiceGenerated()
	m.RecordInvoiceDispatch(DispatchDelivered)
	m.RecordInvoiceDispatch(DispatchFailed)

	stats := m.Snapshot()
	assert.Equal(t, int64(10), stats.LeadsGenerated)
	assert.Equal(t, int64(3), stats.MessagesSent)
	assert.Equal(t, int64(2), stats.InvoicesGenerated)
	assert.Equal(t, int64(1), stats.InvoicesSent)
	assert.InDelta(t, 10.0, stats.ConversionRate(), 0.0001)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordInvoiceGenerated()
	m.RecordBotCommand("/start")
	assert.Equal(t, Stats{}, m.Snapshot())
	assert.Zero(t, Stats{}.ConversionRate())
}

func TestGinMiddlewareCountsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(GinMiddleware(m))
	r.GET("/api/invoice", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/invoice", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/invoice", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unknown", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, _ := io.ReadAll(w.Body)
	assert.True(t, strings.Contains(string(body), "leadflow_http_requests_total"))
}
