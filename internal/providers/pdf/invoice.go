package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/leadflow/internal/invoice/render"
)

type PDFProvider struct {
	author string
}

func New() Provider {
	return &PDFProvider{author: "leadflow"}
}

// RenderInvoice lays the invoice out top to bottom. Long item lists flow
// onto further pages, each carrying a page counter.
func (p *PDFProvider) RenderInvoice(ctx context.Context, layout render.Layout) (out []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("pdf engine panic: %v", r)
		}
	}()

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		WithCreationDate(layout.CreatedAt).
		WithTitle("Invoice "+layout.Number, true).
		WithAuthor(p.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRow(15,
		text.NewCol(12, layout.Title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(12).Add(
			text.New("Invoice #: "+layout.Number, props.Text{Top: 0}),
			text.New("Date: "+layout.IssuedAt, props.Text{Top: 5}),
			text.New("Status: "+layout.Status, props.Text{Top: 10}),
		),
	)

	m.AddRow(25,
		col.New(12).Add(
			text.New("Bill To:", props.Text{Style: fontstyle.Bold, Size: 12}),
			text.New(layout.BillTo.Name, props.Text{Top: 6}),
			text.New(layout.BillTo.Email, props.Text{Top: 11}),
		),
	)

	header := make([]props.Text, len(layout.Columns))
	for i := range layout.Columns {
		header[i] = props.Text{Style: fontstyle.Bold, Size: 10, Align: columnAlign(i)}
	}
	m.AddRow(10, tableRow(layout.Columns, header)...)
	m.AddRows(line.NewRow(2))

	cell := props.Text{Size: 10}
	for _, item := range layout.Items {
		values := []string{item.Description, item.Quantity, item.UnitPrice, item.LineTotal}
		styles := make([]props.Text, len(values))
		for i := range values {
			styles[i] = cell
			styles[i].Align = columnAlign(i)
		}
		m.AddRow(8, tableRow(values, styles)...)
	}

	m.AddRows(line.NewRow(4))
	m.AddRow(12,
		col.New(6),
		text.NewCol(6, "Total: "+layout.Total, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return doc.GetBytes(), nil
}

// Column widths on maroto's 12-unit grid: description, qty, price, total.
var columnSizes = []int{6, 2, 2, 2}

func tableRow(values []string, styles []props.Text) []core.Col {
	cols := make([]core.Col, 0, len(values))
	for i, value := range values {
		size := 2
		if i < len(columnSizes) {
			size = columnSizes[i]
		}
		cols = append(cols, text.NewCol(size, value, styles[i]))
	}
	return cols
}

func columnAlign(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}
