package report

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Increment(ctx context.Context, tx *sql.Tx, day time.Time, d Delta) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO daily_sales_reports
		  (id, report_date, total_sales, total_transactions, cash_sales, card_sales,
		   insurance_sales, total_tax, total_discount, net_sales)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (report_date) DO UPDATE SET
		  total_sales        = daily_sales_reports.total_sales + EXCLUDED.total_sales,
		  total_transactions = daily_sales_reports.total_transactions + EXCLUDED.total_transactions,
		  cash_sales         = daily_sales_reports.cash_sales + EXCLUDED.cash_sales,
		  card_sales         = daily_sales_reports.card_sales + EXCLUDED.card_sales,
		  insurance_sales    = daily_sales_reports.insurance_sales + EXCLUDED.insurance_sales,
		  total_tax          = daily_sales_reports.total_tax + EXCLUDED.total_tax,
		  total_discount     = daily_sales_reports.total_discount + EXCLUDED.total_discount,
		  net_sales          = daily_sales_reports.net_sales + EXCLUDED.net_sales,
		  updated_at         = NOW()`,
		uuid.New(), DayOf(day), d.TotalSales, d.TotalTransactions, d.CashSales,
		d.CardSales, d.InsuranceSales, d.TotalTax, d.TotalDiscount, d.NetSales)
	return err
}

func (r *postgresRepo) GetByDate(ctx context.Context, day time.Time) (*DailySalesReport, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, report_date, total_sales, total_transactions, cash_sales, card_sales,
		       insurance_sales, total_tax, total_discount, net_sales, created_at, updated_at
		FROM daily_sales_reports WHERE report_date=$1`, DayOf(day)))
}

func (r *postgresRepo) ListRange(ctx context.Context, from, to time.Time) ([]*DailySalesReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, report_date, total_sales, total_transactions, cash_sales, card_sales,
		       insurance_sales, total_tax, total_discount, net_sales, created_at, updated_at
		FROM daily_sales_reports
		WHERE report_date >= $1 AND report_date <= $2
		ORDER BY report_date ASC`, DayOf(from), DayOf(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var reports []*DailySalesReport
	for rows.Next() {
		rep, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*DailySalesReport, error) {
	rep := &DailySalesReport{}
	err := row.Scan(&rep.ID, &rep.ReportDate, &rep.TotalSales, &rep.TotalTransactions,
		&rep.CashSales, &rep.CardSales, &rep.InsuranceSales, &rep.TotalTax,
		&rep.TotalDiscount, &rep.NetSales, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rep, nil
}
