package customer

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines data access for customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)

	// ApplyLoyalty increments a customer's cumulative spend by saleTotal and
	// their points by PointsEarned(saleTotal), inside the caller's
	// transaction. Exactly-once execution per sale is guaranteed by
	// transaction membership, not by idempotency logic here.
	ApplyLoyalty(ctx context.Context, tx *sql.Tx, customerID uuid.UUID, saleTotal decimal.Decimal) error
}
