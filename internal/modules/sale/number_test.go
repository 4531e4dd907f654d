package sale

import (
	"testing"
	"time"
)

func TestFormatSaleNumber(t *testing.T) {
	ts := time.Unix(1756400000, 0)

	tests := []struct {
		seq  int64
		want string
	}{
		{1, "SALE-1756400000-000001"},
		{42, "SALE-1756400000-000042"},
		{999999, "SALE-1756400000-999999"},
	}
	for _, tt := range tests {
		if got := FormatSaleNumber(ts, tt.seq); got != tt.want {
			t.Errorf("FormatSaleNumber(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}
