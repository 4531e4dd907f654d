package sale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmaflow/pharmapos-backend/internal/modules/catalog"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/inventory"
)

var (
	paracetamolID = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	ibuprofenID   = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	customerID    = uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000001")
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeCatalog map[string]*catalog.Medicine

func (f fakeCatalog) GetByID(_ context.Context, id string) (*catalog.Medicine, error) {
	m, ok := f[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return m, nil
}

type fakeRepo struct {
	recorded  *Sale
	recordErr error
}

func (f *fakeRepo) Record(_ context.Context, s *Sale) (*Sale, error) {
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	f.recorded = s
	s.SaleNumber = "SALE-1756400000-000001"
	return s, nil
}

func (f *fakeRepo) GetByID(context.Context, string) (*Sale, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeRepo) GetByNumber(context.Context, string) (*Sale, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeRepo) ListByCustomer(context.Context, string) ([]*Sale, error) {
	return nil, fmt.Errorf("not implemented")
}

func testCatalog() fakeCatalog {
	return fakeCatalog{
		paracetamolID.String(): {ID: paracetamolID, Name: "Paracetamol 500mg", UnitPrice: dec("5.99"), IsActive: true},
		ibuprofenID.String():   {ID: ibuprofenID, Name: "Ibuprofen 200mg", UnitPrice: dec("8.50"), IsActive: true},
	}
}

func TestProcessSaleValidation(t *testing.T) {
	tests := []struct {
		name string
		req  ProcessSaleRequest
	}{
		{
			name: "empty cart",
			req:  ProcessSaleRequest{PaymentMethod: "CASH"},
		},
		{
			name: "zero quantity",
			req: ProcessSaleRequest{
				Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 0}},
				PaymentMethod: "CASH",
			},
		},
		{
			name: "negative quantity",
			req: ProcessSaleRequest{
				Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: -1}},
				PaymentMethod: "CASH",
			},
		},
		{
			name: "unknown medicine",
			req: ProcessSaleRequest{
				Items:         []CartItem{{MedicineID: uuid.NewString(), Quantity: 1}},
				PaymentMethod: "CASH",
			},
		},
		{
			name: "malformed medicine id",
			req: ProcessSaleRequest{
				Items:         []CartItem{{MedicineID: "not-a-uuid", Quantity: 1}},
				PaymentMethod: "CASH",
			},
		},
		{
			name: "invalid payment method",
			req: ProcessSaleRequest{
				Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 1}},
				PaymentMethod: "BARTER",
			},
		},
		{
			name: "card payment without reference",
			req: ProcessSaleRequest{
				Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 1}},
				PaymentMethod: "CARD",
			},
		},
		{
			name: "insurance payment without reference",
			req: ProcessSaleRequest{
				Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 1}},
				PaymentMethod: "INSURANCE",
			},
		},
		{
			name: "invalid sale type",
			req: ProcessSaleRequest{
				Type:          "PHONE",
				Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 1}},
				PaymentMethod: "CASH",
			},
		},
		{
			name: "malformed customer id",
			req: ProcessSaleRequest{
				CustomerID:    "nope",
				Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 1}},
				PaymentMethod: "CASH",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, testCatalog(), nil)
			_, err := svc.ProcessSale(context.Background(), tt.req)
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if repo.recorded != nil {
				t.Error("rejected request reached the repository")
			}
		})
	}
}

func TestProcessSaleCashScenario(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, testCatalog(), nil)

	s, err := svc.ProcessSale(context.Background(), ProcessSaleRequest{
		Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 3}},
		TaxPercent:    dec("8.5"),
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Type != TypeInStore {
		t.Errorf("Type = %s, want IN_STORE default", s.Type)
	}
	if s.PaymentMethod != PaymentCash {
		t.Errorf("PaymentMethod = %s, want CASH", s.PaymentMethod)
	}
	if !s.Subtotal.Equal(dec("17.97")) {
		t.Errorf("Subtotal = %s, want 17.97", s.Subtotal)
	}
	if !s.Tax.Equal(dec("1.53")) {
		t.Errorf("Tax = %s, want 1.53", s.Tax)
	}
	if !s.Total.Equal(dec("19.50")) {
		t.Errorf("Total = %s, want 19.50", s.Total)
	}
	if len(s.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(s.Items))
	}
	item := s.Items[0]
	if item.MedicineID != paracetamolID || item.Quantity != 3 {
		t.Errorf("line item = %+v, want 3 units of %s", item, paracetamolID)
	}
	if !item.UnitPrice.Equal(dec("5.99")) {
		t.Errorf("UnitPrice snapshot = %s, want 5.99", item.UnitPrice)
	}
	if !item.LineTotal.Equal(dec("17.97")) {
		t.Errorf("LineTotal = %s, want 17.97", item.LineTotal)
	}
	if repo.recorded == nil {
		t.Fatal("sale never reached the repository")
	}
}

func TestProcessSaleTotalsReconcileAcrossLines(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, testCatalog(), nil)

	s, err := svc.ProcessSale(context.Background(), ProcessSaleRequest{
		CustomerID: customerID.String(),
		Items: []CartItem{
			{MedicineID: paracetamolID.String(), Quantity: 2, DiscountPercent: dec("10")},
			{MedicineID: ibuprofenID.String(), Quantity: 4},
		},
		DiscountPercent:  dec("5"),
		TaxPercent:       dec("16"),
		PaymentMethod:    "CARD",
		PaymentReference: "TXN-829441",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.LineTotal)
	}
	if !sum.Equal(s.Subtotal) {
		t.Errorf("sum of line totals %s != subtotal %s", sum, s.Subtotal)
	}
	want := s.Subtotal.Sub(s.Discount).Add(s.Tax)
	if !s.Total.Equal(want) {
		t.Errorf("Total = %s, want subtotal-discount+tax = %s", s.Total, want)
	}
	if s.CustomerID == nil || *s.CustomerID != customerID {
		t.Errorf("CustomerID = %v, want %s", s.CustomerID, customerID)
	}
}

func TestProcessSaleInsufficientStockPassthrough(t *testing.T) {
	stockErr := &inventory.InsufficientStockError{
		MedicineID: paracetamolID,
		Requested:  12,
		Available:  10,
	}
	repo := &fakeRepo{recordErr: stockErr}
	svc := NewService(repo, testCatalog(), nil)

	_, err := svc.ProcessSale(context.Background(), ProcessSaleRequest{
		Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 12}},
		PaymentMethod: "CASH",
	})

	var insufficient *inventory.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want *inventory.InsufficientStockError", err)
	}
	if insufficient.Requested != 12 || insufficient.Available != 10 {
		t.Errorf("error detail = %+v, want requested=12 available=10", insufficient)
	}
}

func TestProcessSaleWrapsPersistenceFailures(t *testing.T) {
	repo := &fakeRepo{recordErr: fmt.Errorf("connection reset")}
	svc := NewService(repo, testCatalog(), nil)

	_, err := svc.ProcessSale(context.Background(), ProcessSaleRequest{
		Items:         []CartItem{{MedicineID: paracetamolID.String(), Quantity: 1}},
		PaymentMethod: "CASH",
	})

	var persistence *PersistenceError
	if !errors.As(err, &persistence) {
		t.Fatalf("err = %v, want *PersistenceError", err)
	}
}
