package inventory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Repository defines data access for inventory batches.
type Repository interface {
	CreateBatch(ctx context.Context, b *Batch) error
	ListBatches(ctx context.Context, medicineID string) ([]*Batch, error)
	AvailableStock(ctx context.Context, medicineID string) (int, error)
	SoftDeleteBatch(ctx context.Context, id string) error
	ListLowStock(ctx context.Context) ([]*LowStockItem, error)

	// AllocateBatches locks the eligible batches for a medicine inside the
	// caller's transaction, plans a FIFO allocation, and applies the
	// deductions. It returns *InsufficientStockError without mutating any
	// batch when the request cannot be covered.
	AllocateBatches(ctx context.Context, tx *sql.Tx, medicineID uuid.UUID, quantity int) ([]Allocation, error)
}
