// Package notification sends the outbound emails of the lead and invoice flows.
package notification

import (
	"context"
	"errors"
	"strings"

	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	"github.com/smallbiznis/leadflow/internal/invoice/format"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/observability/logger"
	"github.com/smallbiznis/leadflow/internal/providers/email"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const signature = "Lead Generation Team"

var ErrMissingRecipient = errors.New("missing_recipient")

type Params struct {
	fx.In

	Log   *zap.Logger
	Email email.Provider
}

type Service struct {
	log   *zap.Logger
	email email.Provider
}

func New(p Params) *Service {
	return &Service{
		log:   p.Log.Named("notification.service"),
		email: p.Email,
	}
}

// SendInvoice emails the rendered invoice to the client as a PDF attachment.
func (s *Service) SendInvoice(ctx context.Context, invoice invoicedomain.Invoice, document []byte) error {
	to := strings.TrimSpace(invoice.ClientEmail)
	if to == "" {
		return ErrMissingRecipient
	}

	msg := email.Message{
		To:      []string{to},
		Subject: "Invoice #" + invoice.ID,
		Attachments: []email.Attachment{
			{Filename: invoice.Filename(), ContentType: "application/pdf", Data: document},
		},
	}
	data := map[string]string{
		"ClientName": invoice.ClientName,
		"InvoiceID":  invoice.ID,
		"Total":      format.FormatMoney(invoice.Total),
	}

	if err := s.email.SendTemplate(ctx, msg, "invoice", data); err != nil {
		return err
	}
	logger.WithInvoice(s.log, invoice.ID).Info("invoice emailed")
	return nil
}

// SendColdEmail delivers an AI-drafted outreach message to a lead.
func (s *Service) SendColdEmail(ctx context.Context, lead leaddomain.Lead, message string) error {
	to := strings.TrimSpace(lead.Email)
	if to == "" {
		return ErrMissingRecipient
	}

	subject := "Partnership Opportunity"
	if company := strings.TrimSpace(lead.Company); company != "" {
		subject += " - " + company
	}

	data := map[string]string{
		"Name":      lead.Name,
		"Body":      message,
		"Signature": signature,
	}

	if err := s.email.SendTemplate(ctx, email.Message{To: []string{to}, Subject: subject}, "cold_email", data); err != nil {
		return err
	}
	logger.WithLead(s.log, lead.ID).Info("cold email sent")
	return nil
}
