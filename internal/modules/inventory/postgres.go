package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateBatch(ctx context.Context, b *Batch) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_batches
		  (id, medicine_id, supplier_id, quantity_on_hand, unit_cost, lot_number, received_at, expires_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		b.ID, b.MedicineID, b.SupplierID, b.QuantityOnHand, b.UnitCost,
		b.LotNumber, b.ReceivedAt, b.ExpiresAt)
	return err
}

func (r *postgresRepo) ListBatches(ctx context.Context, medicineID string) ([]*Batch, error) {
	uid, err := uuid.Parse(medicineID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, medicine_id, supplier_id, quantity_on_hand, unit_cost, lot_number,
		       received_at, expires_at, deleted_at, created_at, updated_at
		FROM inventory_batches
		WHERE medicine_id=$1 AND deleted_at IS NULL
		ORDER BY received_at ASC, id ASC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var batches []*Batch
	for rows.Next() {
		b := &Batch{}
		var supplierID sql.NullString
		var expiresAt, deletedAt sql.NullTime
		if err := rows.Scan(&b.ID, &b.MedicineID, &supplierID, &b.QuantityOnHand,
			&b.UnitCost, &b.LotNumber, &b.ReceivedAt, &expiresAt, &deletedAt,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if supplierID.Valid {
			sid, _ := uuid.Parse(supplierID.String)
			b.SupplierID = &sid
		}
		if expiresAt.Valid {
			t := expiresAt.Time
			b.ExpiresAt = &t
		}
		if deletedAt.Valid {
			t := deletedAt.Time
			b.DeletedAt = &t
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *postgresRepo) AvailableStock(ctx context.Context, medicineID string) (int, error) {
	uid, err := uuid.Parse(medicineID)
	if err != nil {
		return 0, err
	}
	var available int
	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity_on_hand), 0)
		FROM inventory_batches
		WHERE medicine_id=$1 AND deleted_at IS NULL`, uid).Scan(&available)
	return available, err
}

func (r *postgresRepo) SoftDeleteBatch(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory_batches SET deleted_at=$1, updated_at=$1
		WHERE id=$2 AND deleted_at IS NULL`, time.Now(), uid)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("batch %s not found", id)
	}
	return nil
}

func (r *postgresRepo) ListLowStock(ctx context.Context) ([]*LowStockItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.name, m.reorder_level, COALESCE(SUM(b.quantity_on_hand), 0) AS available
		FROM medicines m
		LEFT JOIN inventory_batches b ON b.medicine_id = m.id AND b.deleted_at IS NULL
		WHERE m.is_active = TRUE
		GROUP BY m.id, m.name, m.reorder_level
		HAVING COALESCE(SUM(b.quantity_on_hand), 0) <= m.reorder_level
		ORDER BY m.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*LowStockItem
	for rows.Next() {
		item := &LowStockItem{}
		if err := rows.Scan(&item.MedicineID, &item.Name, &item.ReorderLevel, &item.Available); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AllocateBatches runs inside the caller's transaction. The FOR UPDATE lock
// serialises concurrent sales against the same medicine's batches, so the
// plan computed here cannot observe stock another transaction is consuming.
func (r *postgresRepo) AllocateBatches(ctx context.Context, tx *sql.Tx, medicineID uuid.UUID, quantity int) ([]Allocation, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id, received_at, quantity_on_hand
		FROM inventory_batches
		WHERE medicine_id=$1 AND deleted_at IS NULL AND quantity_on_hand > 0
		ORDER BY received_at ASC, id ASC
		FOR UPDATE`, medicineID)
	if err != nil {
		return nil, err
	}

	var batches []*Batch
	available := 0
	for rows.Next() {
		b := &Batch{MedicineID: medicineID}
		if err := rows.Scan(&b.ID, &b.ReceivedAt, &b.QuantityOnHand); err != nil {
			rows.Close()
			return nil, err
		}
		available += b.QuantityOnHand
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	plan, leftover, err := PlanAllocation(batches, quantity)
	if err != nil {
		return nil, err
	}
	if leftover > 0 {
		return nil, &InsufficientStockError{MedicineID: medicineID, Requested: quantity, Available: available}
	}

	for _, alloc := range plan {
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory_batches
			SET quantity_on_hand = quantity_on_hand - $1, updated_at = NOW()
			WHERE id = $2 AND quantity_on_hand >= $1`,
			alloc.Quantity, alloc.BatchID)
		if err != nil {
			return nil, err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			// The conditional update refused to go negative; surface it as an
			// allocation failure so the whole transaction aborts.
			return nil, &InsufficientStockError{MedicineID: medicineID, Requested: quantity, Available: available}
		}
	}

	return plan, nil
}
