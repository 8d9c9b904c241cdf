package pdf

import (
	"context"

	"github.com/smallbiznis/leadflow/internal/invoice/render"
)

// Provider renders invoice layouts to PDF.
type Provider interface {
	RenderInvoice(ctx context.Context, layout render.Layout) ([]byte, error)
}
