package service

import (
	"context"
	"fmt"

	"github.com/smallbiznis/leadflow/internal/clock"
	"github.com/smallbiznis/leadflow/internal/config"
	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	"github.com/smallbiznis/leadflow/internal/invoice/format"
	"github.com/smallbiznis/leadflow/internal/observability/logger"
	"github.com/smallbiznis/leadflow/internal/observability/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log        *zap.Logger
	Clock      clock.Clock
	Renderer   invoicedomain.Renderer
	Dispatcher invoicedomain.Dispatcher    `optional:"true"`
	InvoiceCfg *config.InvoiceConfigHolder `optional:"true"`
	Metrics    *metrics.Metrics            `optional:"true"`
}

type Service struct {
	log        *zap.Logger
	clock      clock.Clock
	renderer   invoicedomain.Renderer
	dispatcher invoicedomain.Dispatcher
	invoiceCfg *config.InvoiceConfigHolder
	metrics    *metrics.Metrics

	stamps stampSource
}

func NewService(p ServiceParam) invoicedomain.Service {
	clk := p.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Service{
		log:        p.Log.Named("invoice.service"),
		clock:      clk,
		renderer:   p.Renderer,
		dispatcher: p.Dispatcher,
		invoiceCfg: p.InvoiceCfg,
		metrics:    p.Metrics,
	}
}

func (s *Service) Generate(ctx context.Context, req invoicedomain.GenerateInvoiceRequest) (*invoicedomain.GenerateInvoiceResult, error) {
	clientName := req.ClientName
	if clientName == "" {
		return nil, invoicedomain.ErrInvalidClientName
	}
	clientEmail := req.ClientEmail
	if clientEmail == "" {
		return nil, invoicedomain.ErrInvalidClientEmail
	}
	if req.Items == nil {
		return nil, invoicedomain.ErrInvalidItems
	}

	ctx, span := otel.Tracer("leadflow/invoice").Start(ctx, "invoice.generate")
	defer span.End()

	now := s.clock.Now()
	id, err := s.nextInvoiceID(now)
	if err != nil {
		span.SetStatus(codes.Error, "id generation failed")
		return nil, fmt.Errorf("%w: %v", invoicedomain.ErrRenderFailed, err)
	}

	items, err := NormalizeItems(req.Items)
	if err != nil {
		span.SetStatus(codes.Error, "invalid items")
		return nil, err
	}
	total, err := ComputeTotal(items)
	if err != nil {
		span.SetStatus(codes.Error, "invalid items")
		return nil, err
	}
	invoice := invoicedomain.Invoice{
		ID:          id,
		ClientName:  clientName,
		ClientEmail: clientEmail,
		Items:       items,
		Total:       total,
		Date:        now,
		Status:      invoicedomain.InvoiceStatusDraft,
	}
	span.SetAttributes(
		attribute.String("invoice.id", invoice.ID),
		attribute.Int("invoice.items", len(items)),
		attribute.Bool("invoice.send_email", req.SendEmail),
	)

	doc, err := s.render(ctx, invoice)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		logger.WithInvoice(s.log, invoice.ID).Error("invoice render failed", zap.Error(err))
		return nil, err
	}
	s.metrics.RecordInvoiceGenerated()

	result := &invoicedomain.GenerateInvoiceResult{
		Document: doc,
		Filename: invoice.Filename(),
	}
	if req.SendEmail {
		result.Dispatched = s.dispatch(ctx, &invoice, doc)
	} else {
		s.metrics.RecordInvoiceDispatch(metrics.DispatchSkipped)
	}
	result.Invoice = invoice

	logger.WithInvoice(s.log, invoice.ID).Info("invoice generated",
		zap.Int("items", len(items)),
		zap.String("total", invoice.Total.String()),
		zap.Bool("email_requested", req.SendEmail),
		zap.Bool("email_sent", result.Dispatched),
	)

	return result, nil
}

func (s *Service) Template(ctx context.Context) invoicedomain.InvoiceTemplate {
	cfg := s.invoiceCfg.Get().Template

	raw := make([]invoicedomain.RawLineItem, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		raw = append(raw, invoicedomain.RawLineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	items, err := NormalizeItems(raw)
	if err != nil {
		s.log.Warn("invoice template items out of range", zap.Error(err))
		items = []invoicedomain.LineItem{}
	}
	total, err := ComputeTotal(items)
	if err != nil {
		s.log.Warn("invoice template total out of range", zap.Error(err))
		items, total = []invoicedomain.LineItem{}, 0
	}

	return invoicedomain.InvoiceTemplate{
		ClientName:  cfg.ClientName,
		ClientEmail: cfg.ClientEmail,
		Items:       items,
		Total:       total,
		Date:        format.FormatDate(s.clock.Now()),
	}
}
