// Package pricing derives sale totals from line items and a discount/tax
// policy. Compute is a pure function: it has no storage dependencies and
// never mutates its input.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Line is one cart line as seen by the calculator.
type Line struct {
	UnitPrice       decimal.Decimal
	Quantity        int
	DiscountPercent decimal.Decimal
}

// Totals is the breakdown of a sale's money amounts, rounded to 2 decimal
// places. Total = Subtotal - DiscountAmount + TaxAmount.
type Totals struct {
	LineTotals     []decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Compute calculates per-line totals and the sale-level breakdown.
// Percentages outside [0,100] are clamped; negative unit prices and
// non-positive quantities are rejected.
func Compute(lines []Line, overallDiscountPercent, taxPercent decimal.Decimal) (*Totals, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("at least one line item is required")
	}

	overallDiscountPercent = clampPercent(overallDiscountPercent)
	taxPercent = clampPercent(taxPercent)

	t := &Totals{
		LineTotals: make([]decimal.Decimal, 0, len(lines)),
		Subtotal:   decimal.Zero,
	}
	for i, l := range lines {
		if l.Quantity < 1 {
			return nil, fmt.Errorf("line %d: quantity must be at least 1", i)
		}
		if l.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("line %d: unit price cannot be negative", i)
		}
		lineDiscount := clampPercent(l.DiscountPercent)
		lineTotal := l.UnitPrice.
			Mul(decimal.NewFromInt(int64(l.Quantity))).
			Mul(hundred.Sub(lineDiscount)).
			Div(hundred).
			Round(2)
		t.LineTotals = append(t.LineTotals, lineTotal)
		t.Subtotal = t.Subtotal.Add(lineTotal)
	}

	t.DiscountAmount = t.Subtotal.Mul(overallDiscountPercent).Div(hundred).Round(2)
	taxable := t.Subtotal.Sub(t.DiscountAmount)
	t.TaxAmount = taxable.Mul(taxPercent).Div(hundred).Round(2)
	t.Total = taxable.Add(t.TaxAmount)

	return t, nil
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
