package render

import (
	"context"

	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
)

// Engine turns a layout into document bytes.
type Engine interface {
	RenderInvoice(ctx context.Context, layout Layout) ([]byte, error)
}

type Renderer struct {
	engine Engine
}

func NewRenderer(engine Engine) invoicedomain.Renderer {
	return &Renderer{engine: engine}
}

func (r *Renderer) Render(ctx context.Context, inv invoicedomain.Invoice) ([]byte, error) {
	return r.engine.RenderInvoice(ctx, BuildLayout(inv))
}
