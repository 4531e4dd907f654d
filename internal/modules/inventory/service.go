package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service defines inventory business logic for batches and stock levels.
type Service interface {
	ReceiveBatch(ctx context.Context, req ReceiveBatchRequest) (*Batch, error)
	ListBatches(ctx context.Context, medicineID string) ([]*Batch, error)
	AvailableStock(ctx context.Context, medicineID string) (int, error)
	RemoveBatch(ctx context.Context, id string) error
	ListLowStock(ctx context.Context) ([]*LowStockItem, error)
}

type service struct{ repo Repository }

// NewService creates a new inventory service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ReceiveBatch(ctx context.Context, req ReceiveBatchRequest) (*Batch, error) {
	medicineID, err := uuid.Parse(req.MedicineID)
	if err != nil {
		return nil, fmt.Errorf("invalid medicine_id: %w", err)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than zero")
	}
	if req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("unit_cost cannot be negative")
	}

	b := &Batch{
		ID:             uuid.New(),
		MedicineID:     medicineID,
		QuantityOnHand: req.Quantity,
		UnitCost:       req.UnitCost,
		LotNumber:      req.LotNumber,
		ReceivedAt:     time.Now(),
		ExpiresAt:      req.ExpiresAt,
	}
	if req.SupplierID != "" {
		sid, err := uuid.Parse(req.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("invalid supplier_id: %w", err)
		}
		b.SupplierID = &sid
	}

	if err := s.repo.CreateBatch(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ListBatches(ctx context.Context, medicineID string) ([]*Batch, error) {
	return s.repo.ListBatches(ctx, medicineID)
}

func (s *service) AvailableStock(ctx context.Context, medicineID string) (int, error) {
	return s.repo.AvailableStock(ctx, medicineID)
}

func (s *service) RemoveBatch(ctx context.Context, id string) error {
	return s.repo.SoftDeleteBatch(ctx, id)
}

func (s *service) ListLowStock(ctx context.Context) ([]*LowStockItem, error) {
	return s.repo.ListLowStock(ctx)
}
