package customer

import "github.com/shopspring/decimal"

var pointsDivisor = decimal.NewFromInt(10)

// PointsEarned returns the loyalty points accrued by a sale: one point per
// whole 10 units of currency spent, rounded down.
func PointsEarned(saleTotal decimal.Decimal) int64 {
	if saleTotal.IsNegative() {
		return 0
	}
	return saleTotal.Div(pointsDivisor).Floor().IntPart()
}
