package customer

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPointsEarned(t *testing.T) {
	tests := []struct {
		total string
		want  int64
	}{
		{"97.00", 9},
		{"100.00", 10},
		{"9.99", 0},
		{"10.00", 1},
		{"0", 0},
		{"-5.00", 0},
		{"1049.95", 104},
	}
	for _, tt := range tests {
		got := PointsEarned(decimal.RequireFromString(tt.total))
		if got != tt.want {
			t.Errorf("PointsEarned(%s) = %d, want %d", tt.total, got, tt.want)
		}
	}
}
