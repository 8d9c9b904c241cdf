package service

import (
	"context"
	"errors"
	"fmt"

	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	"github.com/smallbiznis/leadflow/internal/observability/logger"
	"github.com/smallbiznis/leadflow/internal/observability/metrics"
	"go.uber.org/zap"
)

func (s *Service) render(ctx context.Context, invoice invoicedomain.Invoice) (doc []byte, err error) {
	if s.renderer == nil {
		return nil, fmt.Errorf("%w: renderer not configured", invoicedomain.ErrRenderFailed)
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: panic: %v", invoicedomain.ErrRenderFailed, r)
		}
	}()

	doc, err = s.renderer.Render(ctx, invoice)
	if err != nil {
		if errors.Is(err, invoicedomain.ErrRenderFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", invoicedomain.ErrRenderFailed, err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: empty document", invoicedomain.ErrRenderFailed)
	}
	return doc, nil
}

// dispatch hands the document to the notification collaborator. Failures
// are logged and leave the invoice in draft.
func (s *Service) dispatch(ctx context.Context, invoice *invoicedomain.Invoice, doc []byte) (delivered bool) {
	log := logger.WithInvoice(s.log, invoice.ID)

	if s.dispatcher == nil {
		log.Warn("invoice email requested but no dispatcher configured")
		s.metrics.RecordInvoiceDispatch(metrics.DispatchFailed)
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("invoice dispatch panicked", zap.Any("panic", r))
			s.metrics.RecordInvoiceDispatch(metrics.DispatchFailed)
			delivered = false
		}
	}()

	if err := s.dispatcher.SendInvoice(ctx, *invoice, doc); err != nil {
		log.Warn("invoice dispatch failed", zap.Error(err))
		s.metrics.RecordInvoiceDispatch(metrics.DispatchFailed)
		return false
	}

	if err := invoice.MarkSent(); err != nil {
		log.Warn("invoice status transition rejected", zap.Error(err))
		s.metrics.RecordInvoiceDispatch(metrics.DispatchFailed)
		return false
	}

	s.metrics.RecordInvoiceDispatch(metrics.DispatchDelivered)
	return true
}
