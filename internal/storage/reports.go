package storage

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"
)

// MonthlyTotals sums amounts of the given kind within year, grouped by
// two-digit month in ascending order. Months without rows are omitted.
func (db *DB) MonthlyTotals(ctx context.Context, kind models.Kind, year int) ([]models.PeriodTotal, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	return db.periodTotals(ctx, `
		SELECT strftime('%m', date) AS month, SUM(amount)
		FROM `+table+`
		WHERE strftime('%Y', date) = ?
		GROUP BY month
		ORDER BY month`, fmt.Sprintf("%04d", year))
}

// YearlyTotals sums amounts of the given kind grouped by four-digit year in
// ascending order, across every year present.
func (db *DB) YearlyTotals(ctx context.Context, kind models.Kind) ([]models.PeriodTotal, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	return db.periodTotals(ctx, `
		SELECT strftime('%Y', date) AS year, SUM(amount)
		FROM `+table+`
		GROUP BY year
		ORDER BY year`)
}

// Total sums every amount of the given kind; an empty table sums to 0.
func (db *DB) Total(ctx context.Context, kind models.Kind) (float64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	var total float64
	err = db.conn.QueryRowContext(ctx, "SELECT COALESCE(SUM(amount), 0.0) FROM "+table).Scan(&total)
	return total, err
}

func (db *DB) periodTotals(ctx context.Context, query string, args ...any) ([]models.PeriodTotal, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []models.PeriodTotal{}
	for rows.Next() {
		var pt models.PeriodTotal
		if err := rows.Scan(&pt.Period, &pt.Total); err != nil {
			return nil, err
		}
		totals = append(totals, pt)
	}
	return totals, rows.Err()
}
