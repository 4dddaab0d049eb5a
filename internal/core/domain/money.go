package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MinorUnitPrecision is the number of decimal places held by Money (cents).
const MinorUnitPrecision = 2

var hundred = decimal.NewFromInt(100)

// Money is an amount expressed in integer minor units (cents).
// Conversion to and from decimal display values only happens at the boundary.
type Money int64

// NewMoneyFromDecimal converts a display value to Money, rounding half-even to cents.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.RoundBank(MinorUnitPrecision).Shift(MinorUnitPrecision).IntPart())
}

// NewMoneyFromCents rounds an amount already expressed in cents (possibly fractional)
// half-even to a whole number of cents.
func NewMoneyFromCents(cents decimal.Decimal) Money {
	return Money(cents.RoundBank(0).IntPart())
}

// RoundingMode selects how fractional cents are resolved.
type RoundingMode string

const (
	// RoundHalfEven (banker's rounding) avoids bias when many rounded values are summed.
	RoundHalfEven RoundingMode = "half_even"
	// RoundHalfUp rounds halves away from zero, matching amounts printed on issued invoices.
	RoundHalfUp RoundingMode = "half_up"
)

// IsValid reports whether r is a supported mode.
func (r RoundingMode) IsValid() bool {
	return r == RoundHalfEven || r == RoundHalfUp
}

// RoundCents rounds a fractional cent amount to whole cents using the mode.
// Unknown modes round half-even.
func (r RoundingMode) RoundCents(cents decimal.Decimal) Money {
	if r == RoundHalfUp {
		return Money(cents.Round(0).IntPart())
	}
	return NewMoneyFromCents(cents)
}

// ParseMoney parses a display string such as "450.00".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return NewMoneyFromDecimal(d), nil
}

// MustParseMoney is ParseMoney that panics on error. Intended for constants and tests.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the raw minor-unit count.
func (m Money) Cents() int64 { return int64(m) }

// Decimal returns the display value (e.g. 487.13).
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MinorUnitPrecision)
}

// CentsDecimal returns the minor-unit count as a decimal, for full-precision intermediate math.
func (m Money) CentsDecimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// MulDecimal multiplies by d and returns the unrounded result in cents.
func (m Money) MulDecimal(d decimal.Decimal) decimal.Decimal {
	return m.CentsDecimal().Mul(d)
}

func (m Money) Add(o Money) Money { return m + o }
func (m Money) Sub(o Money) Money { return m - o }
func (m Money) Neg() Money        { return -m }

func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsZero() bool     { return m == 0 }

// String formats with two decimals, e.g. "37.13".
func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitPrecision)
}

// MarshalJSON emits the display value as a JSON string to avoid float drift in clients.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid money amount %s: %w", string(data), err)
	}
	*m = NewMoneyFromDecimal(d)
	return nil
}

// MaxMoney returns the larger of a and b.
func MaxMoney(a, b Money) Money {
	if a > b {
		return a
	}
	return b
}

// SumMoney adds up a list of amounts.
func SumMoney(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}

// PercentOf converts a percentage (e.g. 50 for 50%) to a ratio.
func PercentOf(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// DateOnly normalizes t to midnight UTC of its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
