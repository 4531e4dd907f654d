package migrations

import (
	"database/sql"
	"fmt"
)

// Run creates the database schema required by the POS backend. Every
// statement is idempotent so Run is safe to call on every startup.
func Run(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS medicines (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			unit_price NUMERIC(12,2) NOT NULL,
			reorder_level INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_batches (
			id UUID PRIMARY KEY,
			medicine_id UUID NOT NULL REFERENCES medicines(id),
			supplier_id UUID,
			quantity_on_hand INTEGER NOT NULL CHECK (quantity_on_hand >= 0),
			unit_cost NUMERIC(12,2) NOT NULL DEFAULT 0,
			lot_number TEXT NOT NULL DEFAULT '',
			received_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at TIMESTAMPTZ,
			deleted_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_batches_medicine_received
			ON inventory_batches (medicine_id, received_at, id)
			WHERE deleted_at IS NULL`,
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			total_spent NUMERIC(12,2) NOT NULL DEFAULT 0,
			loyalty_points BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE SEQUENCE IF NOT EXISTS sale_number_seq`,
		`CREATE TABLE IF NOT EXISTS sales (
			id UUID PRIMARY KEY,
			sale_number TEXT NOT NULL UNIQUE,
			sale_type TEXT NOT NULL,
			customer_id UUID REFERENCES customers(id),
			employee_id UUID,
			subtotal NUMERIC(12,2) NOT NULL,
			discount NUMERIC(12,2) NOT NULL DEFAULT 0,
			tax NUMERIC(12,2) NOT NULL DEFAULT 0,
			total NUMERIC(12,2) NOT NULL,
			payment_method TEXT NOT NULL,
			payment_reference TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sale_line_items (
			id UUID PRIMARY KEY,
			sale_id UUID NOT NULL REFERENCES sales(id),
			medicine_id UUID NOT NULL REFERENCES medicines(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			unit_price NUMERIC(12,2) NOT NULL,
			discount_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
			line_total NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_line_items_sale ON sale_line_items (sale_id)`,
		`CREATE TABLE IF NOT EXISTS daily_sales_reports (
			id UUID PRIMARY KEY,
			report_date DATE NOT NULL UNIQUE,
			total_sales NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_transactions BIGINT NOT NULL DEFAULT 0,
			cash_sales NUMERIC(14,2) NOT NULL DEFAULT 0,
			card_sales NUMERIC(14,2) NOT NULL DEFAULT 0,
			insurance_sales NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_tax NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_discount NUMERIC(14,2) NOT NULL DEFAULT 0,
			net_sales NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS audit_log_entries (
			id UUID PRIMARY KEY,
			actor_id UUID,
			action TEXT NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			detail JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_audit_entries_created ON audit_log_entries (created_at)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
