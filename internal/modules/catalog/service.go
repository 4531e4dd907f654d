package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines catalog business logic.
type Service interface {
	CreateMedicine(ctx context.Context, req CreateMedicineRequest) (*Medicine, error)
	GetMedicine(ctx context.Context, id string) (*Medicine, error)
	ListMedicines(ctx context.Context, activeOnly bool) ([]*Medicine, error)
	UpdatePrice(ctx context.Context, id string, req UpdatePriceRequest) (*Medicine, error)
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateMedicine(ctx context.Context, req CreateMedicineRequest) (*Medicine, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("unit_price cannot be negative")
	}
	if req.ReorderLevel < 0 {
		return nil, fmt.Errorf("reorder_level cannot be negative")
	}

	m := &Medicine{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		ReorderLevel: req.ReorderLevel,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetMedicine(ctx context.Context, id string) (*Medicine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListMedicines(ctx context.Context, activeOnly bool) ([]*Medicine, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *service) UpdatePrice(ctx context.Context, id string, req UpdatePriceRequest) (*Medicine, error) {
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("unit_price cannot be negative")
	}
	if req.UnitPrice.Equal(decimal.Zero) {
		return nil, fmt.Errorf("unit_price must be greater than zero")
	}
	if err := s.repo.UpdatePrice(ctx, id, req.UnitPrice); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
