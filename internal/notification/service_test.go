package notification

import (
	"context"
	"testing"
	"time"

	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/providers/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockEmail struct {
	mock.Mock
}

func (m *mockEmail) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockEmail) SendTemplate(ctx context.Context, msg email.Message, name string, data any) error {
	return m.Called(ctx, msg, name, data).Error(0)
}

func TestSendInvoice(t *testing.T) {
	provider := &mockEmail{}
	svc := New(Params{Log: zap.NewNop(), Email: provider})

	inv := invoicedomain.Invoice{
		ID:          "INV-1",
		ClientName:  "Acme",
		ClientEmail: "billing@acme.test",
		Total:       20000,
		Date:        time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Status:      invoicedomain.InvoiceStatusDraft,
	}
	doc := []byte("%PDF-1.3")

	provider.On("SendTemplate", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return assert.ObjectsAreEqual([]string{"billing@acme.test"}, msg.To) &&
			msg.Subject == "Invoice #INV-1" &&
			len(msg.Attachments) == 1 &&
			msg.Attachments[0].Filename == "invoice_INV-1.pdf" &&
			msg.Attachments[0].ContentType == "application/pdf" &&
			string(msg.Attachments[0].Data) == "%PDF-1.3"
	}), "invoice", map[string]string{
		"ClientName": "Acme",
		"InvoiceID":  "INV-1",
		"Total":      "$200.00",
	}).Return(nil).Once()

	require.NoError(t, svc.SendInvoice(context.Background(), inv, doc))
	provider.AssertExpectations(t)
}

func TestSendInvoicePropagatesProviderError(t *testing.T) {
	provider := &mockEmail{}
	provider.On("SendTemplate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(email.ErrNotConfigured)
	svc := New(Params{Log: zap.NewNop(), Email: provider})

	err := svc.SendInvoice(context.Background(), invoicedomain.Invoice{ID: "INV-2", ClientEmail: "a@x.io"}, nil)
	assert.ErrorIs(t, err, email.ErrNotConfigured)
}

func TestSendColdEmail(t *testing.T) {
	tests := []struct {
		name        string
		company     string
		wantSubject string
	}{
		{name: "with company", company: "TechCorp", wantSubject: "Partnership Opportunity - TechCorp"},
		{name: "without company", company: "", wantSubject: "Partnership Opportunity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockEmail{}
			provider.On("SendTemplate", mock.Anything, email.Message{
				To:      []string{"contact0@techcorp.com"},
				Subject: tt.wantSubject,
			}, "cold_email", map[string]string{
				"Name":      "John Smith",
				"Body":      "Hi John",
				"Signature": "Lead Generation Team",
			}).Return(nil).Once()

			svc := New(Params{Log: zap.NewNop(), Email: provider})
			err := svc.SendColdEmail(context.Background(), leaddomain.Lead{
				ID:      "1",
				Name:    "John Smith",
				Email:   "contact0@techcorp.com",
				Company: tt.company,
			}, "Hi John")
			require.NoError(t, err)
			provider.AssertExpectations(t)
		})
	}
}

func TestMissingRecipient(t *testing.T) {
	provider := &mockEmail{}
	svc := New(Params{Log: zap.NewNop(), Email: provider})

	assert.ErrorIs(t, svc.SendColdEmail(context.Background(), leaddomain.Lead{Name: "x"}, "m"), ErrMissingRecipient)
	assert.ErrorIs(t, svc.SendInvoice(context.Background(), invoicedomain.Invoice{ID: "INV-3"}, nil), ErrMissingRecipient)
	provider.AssertNotCalled(t, "SendTemplate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
