package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, phone, email, total_spent, loyalty_points)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, c.Name, c.Phone, c.Email, c.TotalSpent, c.LoyaltyPoints)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Customer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	c := &Customer{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, email, total_spent, loyalty_points, created_at, updated_at
		FROM customers WHERE id=$1`, uid).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.TotalSpent,
			&c.LoyaltyPoints, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, phone, email, total_spent, loyalty_points, created_at, updated_at
		FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var customers []*Customer
	for rows.Next() {
		c := &Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.TotalSpent,
			&c.LoyaltyPoints, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *postgresRepo) ApplyLoyalty(ctx context.Context, tx *sql.Tx, customerID uuid.UUID, saleTotal decimal.Decimal) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE customers
		SET total_spent = total_spent + $1,
		    loyalty_points = loyalty_points + $2,
		    updated_at = NOW()
		WHERE id = $3`,
		saleTotal, PointsEarned(saleTotal), customerID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("customer %s not found", customerID)
	}
	return nil
}
