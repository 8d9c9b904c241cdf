package service

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
)

var (
	leadingIntRe   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloatRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// NormalizeItems coerces caller-supplied lines into invoice lines. Unusable
// quantities become 1 and unusable prices become 0. Amounts that do not fit
// in int64 cents are rejected with ErrInvalidItems.
func NormalizeItems(raw []invoicedomain.RawLineItem) ([]invoicedomain.LineItem, error) {
	items := make([]invoicedomain.LineItem, 0, len(raw))
	for i, r := range raw {
		qty := coerceQuantity(r.Quantity)
		price, err := coercePrice(r.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d price: %w", invoicedomain.ErrInvalidItems, i, err)
		}
		lineTotal, err := price.Times(qty)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d total: %w", invoicedomain.ErrInvalidItems, i, err)
		}
		items = append(items, invoicedomain.LineItem{
			Description: coerceDescription(r.Description),
			Quantity:    qty,
			UnitPrice:   price,
			LineTotal:   lineTotal,
		})
	}
	return items, nil
}

// ComputeTotal sums line totals. An empty list totals zero.
func ComputeTotal(items []invoicedomain.LineItem) (invoicedomain.Money, error) {
	var total invoicedomain.Money
	for _, item := range items {
		sum, err := total.Plus(item.LineTotal)
		if err != nil {
			return 0, fmt.Errorf("%w: total: %w", invoicedomain.ErrInvalidItems, err)
		}
		total = sum
	}
	return total, nil
}

// coerceQuantity yields a positive integer. Zero is treated like a missing
// quantity and becomes 1.
func coerceQuantity(v any) int64 {
	var qty int64
	switch value := v.(type) {
	case int:
		qty = int64(value)
	case int32:
		qty = int64(value)
	case int64:
		qty = value
	case float32:
		qty = truncFloat(float64(value))
	case float64:
		qty = truncFloat(value)
	case json.Number:
		qty = parseLeadingInt(value.String())
	case string:
		qty = parseLeadingInt(value)
	}
	if qty <= 0 {
		return 1
	}
	return qty
}

func truncFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0
	}
	return int64(math.Trunc(f))
}

func parseLeadingInt(s string) int64 {
	match := leadingIntRe.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	n, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// coercePrice yields a non-negative amount rounded to cents.
func coercePrice(v any) (invoicedomain.Money, error) {
	var price decimal.Decimal
	switch value := v.(type) {
	case int:
		price = decimal.NewFromInt(int64(value))
	case int32:
		price = decimal.NewFromInt(int64(value))
	case int64:
		price = decimal.NewFromInt(value)
	case float32:
		price = decimalFromFloat(float64(value))
	case float64:
		price = decimalFromFloat(value)
	case json.Number:
		price = parseLeadingDecimal(value.String())
	case string:
		price = parseLeadingDecimal(value)
	default:
		return 0, nil
	}
	if price.IsNegative() {
		return 0, nil
	}
	return invoicedomain.MoneyFromDecimal(price)
}

func decimalFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseLeadingDecimal(s string) decimal.Decimal {
	match := leadingFloatRe.FindString(strings.TrimSpace(s))
	if match == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func coerceDescription(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		if raw, err := json.Marshal(value); err == nil {
			return string(raw)
		}
		return fmt.Sprint(value)
	}
}
