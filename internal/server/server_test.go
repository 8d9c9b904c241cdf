package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/leadflow/internal/assistant"
	"github.com/smallbiznis/leadflow/internal/bot"
	"github.com/smallbiznis/leadflow/internal/config"
	convdomain "github.com/smallbiznis/leadflow/internal/conversation/domain"
	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/observability"
	obsmetrics "github.com/smallbiznis/leadflow/internal/observability/metrics"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInvoiceService struct {
	req    invoicedomain.GenerateInvoiceRequest
	result *invoicedomain.GenerateInvoiceResult
	err    error
}

func (f *fakeInvoiceService) Generate(_ context.Context, req invoicedomain.GenerateInvoiceRequest) (*invoicedomain.GenerateInvoiceResult, error) {
	f.req = req
	return f.result, f.err
}

func (f *fakeInvoiceService) Template(context.Context) invoicedomain.InvoiceTemplate {
	return invoicedomain.InvoiceTemplate{
		Items: []invoicedomain.LineItem{
			{Description: "Lead Generation Service", Quantity: 1, UnitPrice: 50000, LineTotal: 50000},
		},
		Total: 50000,
		Date:  "2026-10-15",
	}
}

type fakeLeadService struct {
	req   leaddomain.GenerateLeadsRequest
	leads []leaddomain.Lead
	err   error
}

func (f *fakeLeadService) Generate(_ context.Context, req leaddomain.GenerateLeadsRequest) ([]leaddomain.Lead, error) {
	f.req = req
	return f.leads, f.err
}

func (f *fakeLeadService) List(context.Context) ([]leaddomain.Lead, error) {
	return f.leads, f.err
}

type fakeConversationService struct {
	req      convdomain.SendMessageRequest
	result   *convdomain.SendMessageResult
	messages []convdomain.Message
	err      error
}

func (f *fakeConversationService) Send(_ context.Context, req convdomain.SendMessageRequest) (*convdomain.SendMessageResult, error) {
	f.req = req
	return f.result, f.err
}

func (f *fakeConversationService) Conversation(_ context.Context, leadID string) ([]convdomain.Message, error) {
	if leadID == "" {
		return nil, convdomain.ErrLeadIDRequired
	}
	return f.messages, f.err
}

type fakeTelegram struct {
	sent []string
	err  error
}

func (f *fakeTelegram) SendMessage(_ context.Context, _ int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

type fakeReplier struct{}

func (fakeReplier) Reply(context.Context, []assistant.Turn, string) (string, error) {
	return "ok", nil
}

const testAppURL = "https://leads.example.com"

type testServer struct {
	srv          *Server
	invoices     *fakeInvoiceService
	leads        *fakeLeadService
	conversation *fakeConversationService
	telegram     *fakeTelegram
	metrics      *obsmetrics.Metrics
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{AppName: "leadflow", AppVersion: "test", AppURL: testAppURL}
	for _, fn := range mutate {
		fn(&cfg)
	}

	ts := &testServer{
		invoices:     &fakeInvoiceService{},
		leads:        &fakeLeadService{},
		conversation: &fakeConversationService{},
		telegram:     &fakeTelegram{},
		metrics:      obsmetrics.New(),
	}
	log := zap.NewNop()
	engine := NewEngine(observability.Config{LogLevel: "debug"}, log, ts.metrics)
	b := bot.New(bot.Params{
		Log:      log,
		Config:   cfg,
		Telegram: ts.telegram,
		Leads:    ts.leads,
		Replier:  fakeReplier{},
		Metrics:  ts.metrics,
	})
	ts.srv = NewServer(ServerParams{
		Gin:             engine,
		Cfg:             cfg,
		Log:             log,
		InvoiceSvc:      ts.invoices,
		LeadSvc:         ts.leads,
		ConversationSvc: ts.conversation,
		Bot:             b,
		Metrics:         ts.metrics,
	})
	return ts
}

func (ts *testServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ts.srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

