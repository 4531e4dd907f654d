package report

import (
	"context"
	"database/sql"
	"time"
)

// Repository defines data access for daily sales reports.
type Repository interface {
	// Increment applies a sale's delta to the report row for day, creating
	// the row if it does not exist. The increment happens at the storage
	// layer so concurrent same-day sales cannot lose updates.
	Increment(ctx context.Context, tx *sql.Tx, day time.Time, d Delta) error

	GetByDate(ctx context.Context, day time.Time) (*DailySalesReport, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*DailySalesReport, error)
}
