package sale

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pharmaflow/pharmapos-backend/internal/modules/catalog"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/inventory"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/pricing"
)

// MedicineCatalog supplies reference data for cart validation and price
// snapshots. Implemented by the catalog module's repository.
type MedicineCatalog interface {
	GetByID(ctx context.Context, id string) (*catalog.Medicine, error)
}

// Service is the sale orchestrator: the only operation exposed to callers.
type Service interface {
	// ProcessSale validates the cart, allocates stock FIFO across batches,
	// records the sale, updates loyalty, writes the audit entry, and rolls
	// the sale into the daily report — as one atomic unit. It returns the
	// persisted sale, or a *ValidationError, *inventory.InsufficientStockError,
	// or *PersistenceError with zero partial effects.
	ProcessSale(ctx context.Context, req ProcessSaleRequest) (*Sale, error)

	GetSale(ctx context.Context, id string) (*Sale, error)
	GetSaleByNumber(ctx context.Context, saleNumber string) (*Sale, error)
	ListCustomerSales(ctx context.Context, customerID string) ([]*Sale, error)
}

type service struct {
	repo    Repository
	catalog MedicineCatalog
	logger  *zap.Logger
}

// NewService creates the sale orchestrator.
func NewService(repo Repository, medicineCatalog MedicineCatalog, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, catalog: medicineCatalog, logger: logger}
}

func (s *service) ProcessSale(ctx context.Context, req ProcessSaleRequest) (*Sale, error) {
	sl, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	recorded, err := s.repo.Record(ctx, sl)
	if err != nil {
		var insufficient *inventory.InsufficientStockError
		if errors.As(err, &insufficient) {
			s.logger.Warn("sale aborted: insufficient stock",
				zap.String("medicine_id", insufficient.MedicineID.String()),
				zap.Int("requested", insufficient.Requested),
				zap.Int("available", insufficient.Available))
			return nil, insufficient
		}
		s.logger.Error("sale aborted: persistence failure", zap.Error(err))
		return nil, &PersistenceError{Err: err}
	}

	s.logger.Info("sale committed",
		zap.String("sale_number", recorded.SaleNumber),
		zap.String("total", recorded.Total.String()),
		zap.String("payment_method", string(recorded.PaymentMethod)),
		zap.Int("items", len(recorded.Items)))
	return recorded, nil
}

// validate builds the fully-priced Sale or returns a *ValidationError. No
// side effects happen here; allocation and persistence run later inside one
// transaction.
func (s *service) validate(ctx context.Context, req ProcessSaleRequest) (*Sale, error) {
	if len(req.Items) == 0 {
		return nil, validationf("at least one line item is required")
	}

	saleType := TypeInStore
	if req.Type != "" {
		switch SaleType(strings.ToUpper(req.Type)) {
		case TypeInStore:
			saleType = TypeInStore
		case TypeOnline:
			saleType = TypeOnline
		default:
			return nil, validationf("invalid type: %s (allowed: IN_STORE, ONLINE)", req.Type)
		}
	}

	method := PaymentMethod(strings.ToUpper(req.PaymentMethod))
	switch method {
	case PaymentCash, PaymentCard, PaymentInsurance:
	default:
		return nil, validationf("invalid payment_method: %s (allowed: CASH, CARD, INSURANCE)", req.PaymentMethod)
	}
	if method != PaymentCash && req.PaymentReference == "" {
		return nil, validationf("payment_reference is required for %s payments", method)
	}

	lines := make([]pricing.Line, 0, len(req.Items))
	items := make([]*LineItem, 0, len(req.Items))
	for i, ci := range req.Items {
		if ci.Quantity <= 0 {
			return nil, validationf("item %d: quantity must be greater than zero", i)
		}
		medicineID, err := uuid.Parse(ci.MedicineID)
		if err != nil {
			return nil, validationf("item %d: invalid medicine_id %q", i, ci.MedicineID)
		}
		med, err := s.catalog.GetByID(ctx, ci.MedicineID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, validationf("item %d: unknown medicine %s", i, ci.MedicineID)
			}
			return nil, &PersistenceError{Err: err}
		}

		lines = append(lines, pricing.Line{
			UnitPrice:       med.UnitPrice,
			Quantity:        ci.Quantity,
			DiscountPercent: ci.DiscountPercent,
		})
		items = append(items, &LineItem{
			ID:              uuid.New(),
			MedicineID:      medicineID,
			Quantity:        ci.Quantity,
			UnitPrice:       med.UnitPrice,
			DiscountPercent: ci.DiscountPercent,
		})
	}

	totals, err := pricing.Compute(lines, req.DiscountPercent, req.TaxPercent)
	if err != nil {
		return nil, validationf("%s", err)
	}
	for i, item := range items {
		item.LineTotal = totals.LineTotals[i]
	}

	sl := &Sale{
		ID:               uuid.New(),
		Type:             saleType,
		Subtotal:         totals.Subtotal,
		Discount:         totals.DiscountAmount,
		Tax:              totals.TaxAmount,
		Total:            totals.Total,
		PaymentMethod:    method,
		PaymentReference: req.PaymentReference,
		Items:            items,
	}
	if req.CustomerID != "" {
		uid, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, validationf("invalid customer_id: %s", req.CustomerID)
		}
		sl.CustomerID = &uid
	}
	if req.EmployeeID != "" {
		uid, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return nil, validationf("invalid employee_id: %s", req.EmployeeID)
		}
		sl.EmployeeID = &uid
	}
	return sl, nil
}

func (s *service) GetSale(ctx context.Context, id string) (*Sale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetSaleByNumber(ctx context.Context, saleNumber string) (*Sale, error) {
	return s.repo.GetByNumber(ctx, saleNumber)
}

func (s *service) ListCustomerSales(ctx context.Context, customerID string) ([]*Sale, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}
