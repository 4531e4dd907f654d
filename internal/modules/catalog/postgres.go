package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, m *Medicine) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medicines (id, name, description, unit_price, reorder_level, is_active)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.Name, m.Description, m.UnitPrice, m.ReorderLevel, m.IsActive)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Medicine, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	m := &Medicine{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, description, unit_price, reorder_level, is_active, created_at, updated_at
		FROM medicines WHERE id=$1`, uid).
		Scan(&m.ID, &m.Name, &m.Description, &m.UnitPrice, &m.ReorderLevel,
			&m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresRepo) List(ctx context.Context, activeOnly bool) ([]*Medicine, error) {
	query := `SELECT id, name, description, unit_price, reorder_level, is_active, created_at, updated_at
	          FROM medicines`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var meds []*Medicine
	for rows.Next() {
		m := &Medicine{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.UnitPrice,
			&m.ReorderLevel, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}

func (r *postgresRepo) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE medicines SET unit_price=$1, updated_at=$2 WHERE id=$3`,
		price, time.Now(), uid)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("medicine %s not found", id)
	}
	return nil
}
