package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeCashSaleScenario(t *testing.T) {
	// 3 units at 5.99, no discount, 8.5% tax.
	totals, err := Compute([]Line{
		{UnitPrice: dec("5.99"), Quantity: 3},
	}, decimal.Zero, dec("8.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !totals.Subtotal.Equal(dec("17.97")) {
		t.Errorf("Subtotal = %s, want 17.97", totals.Subtotal)
	}
	if !totals.DiscountAmount.Equal(decimal.Zero) {
		t.Errorf("DiscountAmount = %s, want 0", totals.DiscountAmount)
	}
	if !totals.TaxAmount.Equal(dec("1.53")) {
		t.Errorf("TaxAmount = %s, want 1.53", totals.TaxAmount)
	}
	if !totals.Total.Equal(dec("19.50")) {
		t.Errorf("Total = %s, want 19.50", totals.Total)
	}
}

func TestComputeLineDiscount(t *testing.T) {
	totals, err := Compute([]Line{
		{UnitPrice: dec("10.00"), Quantity: 2, DiscountPercent: dec("50")},
		{UnitPrice: dec("4.25"), Quantity: 1},
	}, decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !totals.LineTotals[0].Equal(dec("10.00")) {
		t.Errorf("LineTotals[0] = %s, want 10.00", totals.LineTotals[0])
	}
	if !totals.LineTotals[1].Equal(dec("4.25")) {
		t.Errorf("LineTotals[1] = %s, want 4.25", totals.LineTotals[1])
	}
	if !totals.Subtotal.Equal(dec("14.25")) {
		t.Errorf("Subtotal = %s, want 14.25", totals.Subtotal)
	}
}

func TestComputeOverallDiscountAndTax(t *testing.T) {
	totals, err := Compute([]Line{
		{UnitPrice: dec("100.00"), Quantity: 1},
	}, dec("10"), dec("20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !totals.DiscountAmount.Equal(dec("10.00")) {
		t.Errorf("DiscountAmount = %s, want 10.00", totals.DiscountAmount)
	}
	if !totals.TaxAmount.Equal(dec("18.00")) {
		t.Errorf("TaxAmount = %s, want 18.00", totals.TaxAmount)
	}
	if !totals.Total.Equal(dec("108.00")) {
		t.Errorf("Total = %s, want 108.00", totals.Total)
	}
}

func TestComputeClampsPercentages(t *testing.T) {
	totals, err := Compute([]Line{
		{UnitPrice: dec("50.00"), Quantity: 1, DiscountPercent: dec("-20")},
	}, dec("150"), dec("-5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Line discount clamps to 0, overall discount to 100, tax to 0.
	if !totals.Subtotal.Equal(dec("50.00")) {
		t.Errorf("Subtotal = %s, want 50.00", totals.Subtotal)
	}
	if !totals.DiscountAmount.Equal(dec("50.00")) {
		t.Errorf("DiscountAmount = %s, want 50.00", totals.DiscountAmount)
	}
	if !totals.Total.Equal(decimal.Zero) {
		t.Errorf("Total = %s, want 0", totals.Total)
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
	}{
		{"empty lines", nil},
		{"zero quantity", []Line{{UnitPrice: dec("5.00"), Quantity: 0}}},
		{"negative quantity", []Line{{UnitPrice: dec("5.00"), Quantity: -2}}},
		{"negative price", []Line{{UnitPrice: dec("-1.00"), Quantity: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.lines, decimal.Zero, decimal.Zero); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestComputeTotalsReconcile(t *testing.T) {
	lines := []Line{
		{UnitPrice: dec("12.40"), Quantity: 3, DiscountPercent: dec("5")},
		{UnitPrice: dec("0.99"), Quantity: 7},
		{UnitPrice: dec("230.00"), Quantity: 1, DiscountPercent: dec("12.5")},
	}
	totals, err := Compute(lines, dec("7.5"), dec("16"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := decimal.Zero
	for _, lt := range totals.LineTotals {
		sum = sum.Add(lt)
	}
	if !sum.Equal(totals.Subtotal) {
		t.Errorf("sum of line totals %s != subtotal %s", sum, totals.Subtotal)
	}
	want := totals.Subtotal.Sub(totals.DiscountAmount).Add(totals.TaxAmount)
	if !totals.Total.Equal(want) {
		t.Errorf("Total = %s, want subtotal-discount+tax = %s", totals.Total, want)
	}
}
