package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines data access for the medicine catalog.
type Repository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id string) (*Medicine, error)
	List(ctx context.Context, activeOnly bool) ([]*Medicine, error)
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error
}
