package domain

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrAmountOutOfRange reports an amount that does not fit in int64 cents.
var ErrAmountOutOfRange = errors.New("amount_out_of_range")

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// Money is an amount in integer minor units (cents).
type Money int64

// MoneyFromDecimal rounds d to the nearest cent.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	return fromCents(d.Shift(2).Round(0))
}

func fromCents(cents decimal.Decimal) (Money, error) {
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, ErrAmountOutOfRange
	}
	return Money(cents.IntPart()), nil
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Times multiplies the amount by an integer quantity.
func (m Money) Times(qty int64) (Money, error) {
	return fromCents(decimal.NewFromInt(int64(m)).Mul(decimal.NewFromInt(qty)))
}

// Plus adds two amounts.
func (m Money) Plus(other Money) (Money, error) {
	return fromCents(decimal.NewFromInt(int64(m)).Add(decimal.NewFromInt(int64(other))))
}

// String formats the amount with exactly two decimals.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a plain JSON number in major units.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}
