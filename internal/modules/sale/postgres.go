package sale

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaflow/pharmapos-backend/internal/modules/audit"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/report"
)

type postgresRepo struct {
	db        *sql.DB
	allocator BatchAllocator
	loyalty   LoyaltyApplier
	auditLog  AuditAppender
	reports   ReportIncrementer
}

// NewPostgresRepository creates the sale repository. The collaborators run
// inside the same storage transaction as the sale rows themselves.
func NewPostgresRepository(db *sql.DB, allocator BatchAllocator, loyalty LoyaltyApplier,
	auditLog AuditAppender, reports ReportIncrementer) Repository {
	return &postgresRepo{
		db:        db,
		allocator: allocator,
		loyalty:   loyalty,
		auditLog:  auditLog,
		reports:   reports,
	}
}

// Record commits the sale as one atomic unit: batch deductions, the sale
// header and line items, the customer's loyalty update, the audit entry, and
// the daily rollup increment. Read-committed isolation plus the FOR UPDATE
// lock taken by the allocator keeps concurrent sales for the same medicine
// from consuming stock only one of them can take.
func (r *postgresRepo) Record(ctx context.Context, s *Sale) (*Sale, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, item := range s.Items {
		if _, err := r.allocator.AllocateBatches(ctx, tx, item.MedicineID, item.Quantity); err != nil {
			return nil, err
		}
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT nextval('sale_number_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next sale number: %w", err)
	}
	s.CreatedAt = time.Now()
	s.SaleNumber = FormatSaleNumber(s.CreatedAt, seq)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sales
		  (id, sale_number, sale_type, customer_id, employee_id,
		   subtotal, discount, tax, total, payment_method, payment_reference, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		s.ID, s.SaleNumber, s.Type, s.CustomerID, s.EmployeeID,
		s.Subtotal, s.Discount, s.Tax, s.Total, s.PaymentMethod,
		nullIfEmpty(s.PaymentReference), s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	for _, item := range s.Items {
		item.SaleID = s.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sale_line_items
			  (id, sale_id, medicine_id, quantity, unit_price, discount_percent, line_total)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			item.ID, s.ID, item.MedicineID, item.Quantity,
			item.UnitPrice, item.DiscountPercent, item.LineTotal)
		if err != nil {
			return nil, fmt.Errorf("insert sale_line_item: %w", err)
		}
	}

	if s.CustomerID != nil {
		if err := r.loyalty.ApplyLoyalty(ctx, tx, *s.CustomerID, s.Total); err != nil {
			return nil, fmt.Errorf("apply loyalty: %w", err)
		}
	}

	detail, _ := json.Marshal(map[string]interface{}{
		"sale_number": s.SaleNumber,
		"total":       s.Total,
		"items":       len(s.Items),
	})
	entry := &audit.Entry{
		ActorID:    s.EmployeeID,
		Action:     audit.ActionSaleCreated,
		EntityType: "sale",
		EntityID:   s.ID.String(),
		Detail:     detail,
	}
	if err := r.auditLog.Append(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("append audit entry: %w", err)
	}

	delta := report.SaleDelta(s.Total, s.Tax, s.Discount, string(s.PaymentMethod))
	if err := r.reports.Increment(ctx, tx, s.CreatedAt, delta); err != nil {
		return nil, fmt.Errorf("increment daily report: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Sale, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	s, err := r.scanSale(r.db.QueryRowContext(ctx, `
		SELECT id, sale_number, sale_type, customer_id, employee_id,
		       subtotal, discount, tax, total, payment_method, payment_reference, created_at
		FROM sales WHERE id=$1`, uid))
	if err != nil {
		return nil, err
	}
	s.Items, err = r.listItems(ctx, s.ID)
	return s, err
}

func (r *postgresRepo) GetByNumber(ctx context.Context, saleNumber string) (*Sale, error) {
	s, err := r.scanSale(r.db.QueryRowContext(ctx, `
		SELECT id, sale_number, sale_type, customer_id, employee_id,
		       subtotal, discount, tax, total, payment_method, payment_reference, created_at
		FROM sales WHERE sale_number=$1`, saleNumber))
	if err != nil {
		return nil, err
	}
	s.Items, err = r.listItems(ctx, s.ID)
	return s, err
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]*Sale, error) {
	uid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sale_number, sale_type, customer_id, employee_id,
		       subtotal, discount, tax, total, payment_method, payment_reference, created_at
		FROM sales WHERE customer_id=$1 ORDER BY created_at DESC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sales []*Sale
	for rows.Next() {
		s, err := r.scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// ── helpers ──────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scanSale(row rowScanner) (*Sale, error) {
	s := &Sale{}
	var customerID, employeeID, paymentRef sql.NullString
	err := row.Scan(&s.ID, &s.SaleNumber, &s.Type, &customerID, &employeeID,
		&s.Subtotal, &s.Discount, &s.Tax, &s.Total, &s.PaymentMethod,
		&paymentRef, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		uid, _ := uuid.Parse(customerID.String)
		s.CustomerID = &uid
	}
	if employeeID.Valid {
		uid, _ := uuid.Parse(employeeID.String)
		s.EmployeeID = &uid
	}
	if paymentRef.Valid {
		s.PaymentReference = paymentRef.String
	}
	return s, nil
}

func (r *postgresRepo) listItems(ctx context.Context, saleID uuid.UUID) ([]*LineItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sale_id, medicine_id, quantity, unit_price, discount_percent, line_total, created_at
		FROM sale_line_items WHERE sale_id=$1 ORDER BY created_at ASC, id ASC`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*LineItem
	for rows.Next() {
		item := &LineItem{}
		if err := rows.Scan(&item.ID, &item.SaleID, &item.MedicineID, &item.Quantity,
			&item.UnitPrice, &item.DiscountPercent, &item.LineTotal, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
