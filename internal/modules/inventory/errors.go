package inventory

import (
	"fmt"

	"github.com/google/uuid"
)

// InsufficientStockError reports that the eligible batches for a medicine
// cannot cover a requested quantity. The allocation that raised it has made
// no mutations.
type InsufficientStockError struct {
	MedicineID uuid.UUID
	Requested  int
	Available  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for medicine %s: requested %d, available %d",
		e.MedicineID, e.Requested, e.Available)
}
