package render

import (
	"strings"
	"time"

	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	"github.com/smallbiznis/leadflow/internal/invoice/format"
)

// Layout is the fully formatted content of an invoice document, in reading
// order. It is a pure function of the invoice.
type Layout struct {
	Title     string
	Number    string
	IssuedAt  string
	Status    string
	BillTo    Party
	Columns   []string
	Items     []Line
	Total     string
	CreatedAt time.Time
}

type Party struct {
	Name  string
	Email string
}

// Line is a formatted item row. All values except Description are
// right-aligned by engines.
type Line struct {
	Description string
	Quantity    string
	UnitPrice   string
	LineTotal   string
}

// BuildLayout formats an invoice for rendering.
func BuildLayout(inv invoicedomain.Invoice) Layout {
	lines := make([]Line, 0, len(inv.Items))
	for _, item := range inv.Items {
		lines = append(lines, Line{
			Description: item.Description,
			Quantity:    format.FormatQuantity(item.Quantity),
			UnitPrice:   format.FormatMoney(item.UnitPrice),
			LineTotal:   format.FormatMoney(item.LineTotal),
		})
	}

	return Layout{
		Title:    "INVOICE",
		Number:   inv.ID,
		IssuedAt: format.FormatDate(inv.Date),
		Status:   strings.ToUpper(string(inv.Status)),
		BillTo: Party{
			Name:  inv.ClientName,
			Email: inv.ClientEmail,
		},
		Columns:   []string{"Description", "Qty", "Price", "Total"},
		Items:     lines,
		Total:     format.FormatMoney(inv.Total),
		CreatedAt: inv.Date,
	}
}
