package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySalesReport is the per-day aggregate row, keyed by calendar date.
// It is derived data: every field is a running sum maintained by sale
// commits and can be rebuilt from the sales table.
type DailySalesReport struct {
	ID                uuid.UUID       `json:"id"`
	ReportDate        time.Time       `json:"report_date"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalTransactions int64           `json:"total_transactions"`
	CashSales         decimal.Decimal `json:"cash_sales"`
	CardSales         decimal.Decimal `json:"card_sales"`
	InsuranceSales    decimal.Decimal `json:"insurance_sales"`
	TotalTax          decimal.Decimal `json:"total_tax"`
	TotalDiscount     decimal.Decimal `json:"total_discount"`
	NetSales          decimal.Decimal `json:"net_sales"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Delta is the increment one committed sale contributes to its day's report.
type Delta struct {
	TotalSales        decimal.Decimal
	TotalTransactions int64
	CashSales         decimal.Decimal
	CardSales         decimal.Decimal
	InsuranceSales    decimal.Decimal
	TotalTax          decimal.Decimal
	TotalDiscount     decimal.Decimal
	NetSales          decimal.Decimal
}

// SaleDelta builds the rollup increment for one sale. Net sales is the
// taxable amount, total minus tax. The payment method selects which
// per-method bucket receives the sale total; unknown methods contribute to
// the overall totals only.
func SaleDelta(total, tax, discount decimal.Decimal, paymentMethod string) Delta {
	d := Delta{
		TotalSales:        total,
		TotalTransactions: 1,
		CashSales:         decimal.Zero,
		CardSales:         decimal.Zero,
		InsuranceSales:    decimal.Zero,
		TotalTax:          tax,
		TotalDiscount:     discount,
		NetSales:          total.Sub(tax),
	}
	switch paymentMethod {
	case "CASH":
		d.CashSales = total
	case "CARD":
		d.CardSales = total
	case "INSURANCE":
		d.InsuranceSales = total
	}
	return d
}

// DayOf normalizes a timestamp to midnight of its calendar day, the natural
// key of the daily report table.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
