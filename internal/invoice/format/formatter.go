package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/smallbiznis/leadflow/internal/invoice/domain"
)

const (
	InvoiceIDPrefix = "INV-"
	DateLayout      = "2006-01-02"
	CurrencySymbol  = "$"
)

// FormatInvoiceID renders "INV-<stamp>" from a per-process unique
// millisecond stamp.
func FormatInvoiceID(stamp int64) (string, error) {
	if stamp <= 0 {
		return "", fmt.Errorf("invalid invoice stamp: %d", stamp)
	}
	return InvoiceIDPrefix + strconv.FormatInt(stamp, 10), nil
}

// FormatMoney renders an amount as "$1234.50".
func FormatMoney(amount domain.Money) string {
	return CurrencySymbol + amount.String()
}

// FormatDate renders a date in UTC as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// FormatQuantity renders a quantity as a plain integer.
func FormatQuantity(qty int64) string {
	return strconv.FormatInt(qty, 10)
}
