package domain

import (
	"context"
	"errors"
)

type Service interface {
	Generate(ctx context.Context, req GenerateInvoiceRequest) (*GenerateInvoiceResult, error)
	Template(ctx context.Context) InvoiceTemplate
}

type GenerateInvoiceRequest struct {
	ClientName  string
	ClientEmail string
	Items       []RawLineItem
	SendEmail   bool
}

type GenerateInvoiceResult struct {
	Invoice    Invoice
	Document   []byte
	Filename   string
	Dispatched bool
}

// Renderer turns an invoice into a printable document.
type Renderer interface {
	Render(ctx context.Context, invoice Invoice) ([]byte, error)
}

// Dispatcher delivers a rendered invoice to its client.
type Dispatcher interface {
	SendInvoice(ctx context.Context, invoice Invoice, document []byte) error
}

var (
	ErrInvalidClientName       = errors.New("invalid_client_name")
	ErrInvalidClientEmail      = errors.New("invalid_client_email")
	ErrInvalidItems            = errors.New("invalid_items")
	ErrRenderFailed            = errors.New("render_failed")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
)
