package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Medicine is an item in the pharmacy's master catalog. The POS core treats
// it as reference data: sales snapshot its price but never mutate it.
type Medicine struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int             `json:"reorder_level"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateMedicineRequest is the payload for adding a medicine to the catalog.
type CreateMedicineRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int             `json:"reorder_level"`
}

// UpdatePriceRequest is the payload for changing a medicine's reference price.
type UpdatePriceRequest struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
}
