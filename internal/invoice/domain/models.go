// Package domain contains the invoice model and its collaborator contracts.
package domain

import (
	"time"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

// Invoice is built per request, rendered once and then discarded.
type Invoice struct {
	ID          string        `json:"id"`
	ClientName  string        `json:"clientName"`
	ClientEmail string        `json:"clientEmail"`
	Items       []LineItem    `json:"items"`
	Total       Money         `json:"total"`
	Date        time.Time     `json:"date"`
	Status      InvoiceStatus `json:"status"`
}

// LineItem is a normalized invoice line. LineTotal is always derived.
type LineItem struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   Money  `json:"price"`
	LineTotal   Money  `json:"total"`
}

// RawLineItem is a line item as received from a caller. Fields hold whatever
// JSON decoding produced and are coerced during normalization.
type RawLineItem struct {
	Description any
	Quantity    any
	Price       any
}

// MarkSent moves a draft invoice to sent.
func (inv *Invoice) MarkSent() error {
	if inv.Status != InvoiceStatusDraft {
		return ErrInvalidStatusTransition
	}
	inv.Status = InvoiceStatusSent
	return nil
}

// Filename is the attachment name used for the rendered document.
func (inv Invoice) Filename() string {
	return "invoice_" + inv.ID + ".pdf"
}

// InvoiceTemplate is the example invoice offered to UIs.
type InvoiceTemplate struct {
	ClientName  string     `json:"clientName"`
	ClientEmail string     `json:"clientEmail"`
	Items       []LineItem `json:"items"`
	Total       Money      `json:"total"`
	Date        string     `json:"date"`
}
