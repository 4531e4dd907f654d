package sale

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmaflow/pharmapos-backend/internal/modules/audit"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/inventory"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/report"
)

// Repository persists sales. Record is the atomic unit of work: allocation,
// sale rows, loyalty, audit, and rollup commit together or not at all.
type Repository interface {
	Record(ctx context.Context, s *Sale) (*Sale, error)
	GetByID(ctx context.Context, id string) (*Sale, error)
	GetByNumber(ctx context.Context, saleNumber string) (*Sale, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Sale, error)
}

// BatchAllocator decrements batch stock for one line item inside the sale
// transaction. Implemented by the inventory module's repository.
type BatchAllocator interface {
	AllocateBatches(ctx context.Context, tx *sql.Tx, medicineID uuid.UUID, quantity int) ([]inventory.Allocation, error)
}

// LoyaltyApplier credits a customer's spend and points inside the sale
// transaction. Implemented by the customer module's repository.
type LoyaltyApplier interface {
	ApplyLoyalty(ctx context.Context, tx *sql.Tx, customerID uuid.UUID, saleTotal decimal.Decimal) error
}

// AuditAppender writes the sale's audit entry inside the sale transaction.
// Implemented by the audit module's repository.
type AuditAppender interface {
	Append(ctx context.Context, tx *sql.Tx, e *audit.Entry) error
}

// ReportIncrementer folds the sale into its day's aggregate row inside the
// sale transaction. Implemented by the report module's repository.
type ReportIncrementer interface {
	Increment(ctx context.Context, tx *sql.Tx, day time.Time, d report.Delta) error
}
