package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Batch is a distinct received quantity of a medicine with its own cost,
// receipt date, and expiry date. The sum of non-deleted batch quantities for
// a medicine is its total available stock.
type Batch struct {
	ID             uuid.UUID       `json:"id"`
	MedicineID     uuid.UUID       `json:"medicine_id"`
	SupplierID     *uuid.UUID      `json:"supplier_id,omitempty"`
	QuantityOnHand int             `json:"quantity_on_hand"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	LotNumber      string          `json:"lot_number,omitempty"`
	ReceivedAt     time.Time       `json:"received_at"`
	ExpiresAt      *time.Time      `json:"expires_at,omitempty"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Allocation is one step of an allocation plan: take Quantity units from the
// batch identified by BatchID.
type Allocation struct {
	BatchID  uuid.UUID `json:"batch_id"`
	Quantity int       `json:"quantity"`
}

// ReceiveBatchRequest is the payload for recording a stock receipt.
type ReceiveBatchRequest struct {
	MedicineID string          `json:"medicine_id"`
	SupplierID string          `json:"supplier_id,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	LotNumber  string          `json:"lot_number,omitempty"`
	ExpiresAt  *time.Time      `json:"expires_at,omitempty"`
}

// LowStockItem reports a medicine whose available stock has fallen to or
// below its reorder level.
type LowStockItem struct {
	MedicineID   uuid.UUID `json:"medicine_id"`
	Name         string    `json:"name"`
	ReorderLevel int       `json:"reorder_level"`
	Available    int       `json:"available"`
}
