package sale

import (
	"fmt"
	"time"
)

// FormatSaleNumber renders the display form of a sale number:
// SALE-<unix timestamp>-<zero-padded sequence>. The sequence comes from a
// storage-backed counter, so numbers stay unique across processes even when
// two sales share a timestamp.
func FormatSaleNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("SALE-%d-%06d", t.Unix(), seq)
}
