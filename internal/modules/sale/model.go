package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleType indicates where the sale originated.
type SaleType string

const (
	TypeInStore SaleType = "IN_STORE"
	TypeOnline  SaleType = "ONLINE"
)

// PaymentMethod represents how a sale was paid.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "CASH"
	PaymentCard      PaymentMethod = "CARD"
	PaymentInsurance PaymentMethod = "INSURANCE"
)

// Sale is the durable record of one completed POS transaction. A sale and
// its line items are created exactly once and never updated or deleted.
type Sale struct {
	ID               uuid.UUID       `json:"id"`
	SaleNumber       string          `json:"sale_number"`
	Type             SaleType        `json:"type"`
	CustomerID       *uuid.UUID      `json:"customer_id,omitempty"`
	EmployeeID       *uuid.UUID      `json:"employee_id,omitempty"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	Items            []*LineItem     `json:"items,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// LineItem is a single medicine position within a sale, with the unit price
// snapshot taken at sale time.
type LineItem struct {
	ID              uuid.UUID       `json:"id"`
	SaleID          uuid.UUID       `json:"sale_id"`
	MedicineID      uuid.UUID       `json:"medicine_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	LineTotal       decimal.Decimal `json:"line_total"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CartItem describes one requested medicine position in a sale request.
type CartItem struct {
	MedicineID      string          `json:"medicine_id"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent,omitempty"`
}

// ProcessSaleRequest is the payload for the single core operation: turn a
// cart plus customer/payment context into a committed sale.
type ProcessSaleRequest struct {
	Type             string          `json:"type,omitempty"` // IN_STORE (default) or ONLINE
	CustomerID       string          `json:"customer_id,omitempty"`
	EmployeeID       string          `json:"employee_id,omitempty"`
	Items            []CartItem      `json:"items"`
	DiscountPercent  decimal.Decimal `json:"discount_percent,omitempty"`
	TaxPercent       decimal.Decimal `json:"tax_percent,omitempty"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference string          `json:"payment_reference,omitempty"`
}
