package storage

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"
)

// CreateIncome inserts an income row and returns it with its assigned ID.
// Callers are expected to have validated amount and date.
func (db *DB) CreateIncome(ctx context.Context, amount float64, date, source string) (*models.Income, error) {
	result, err := db.conn.ExecContext(ctx,
		"INSERT INTO income (amount, date, source) VALUES (?, ?, ?)",
		amount, date, source,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Income{ID: id, Amount: amount, Date: date, Source: source}, nil
}

// ListIncome returns every income row in insertion order.
func (db *DB) ListIncome(ctx context.Context) ([]models.Income, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT id, amount, date, source FROM income ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	income := []models.Income{}
	for rows.Next() {
		var i models.Income
		if err := rows.Scan(&i.ID, &i.Amount, &i.Date, &i.Source); err != nil {
			return nil, err
		}
		income = append(income, i)
	}
	return income, rows.Err()
}

// CreateExpense inserts an expense row and returns it with its assigned ID.
func (db *DB) CreateExpense(ctx context.Context, amount float64, date, category, description string) (*models.Expense, error) {
	result, err := db.conn.ExecContext(ctx,
		"INSERT INTO expenses (amount, date, category, description) VALUES (?, ?, ?, ?)",
		amount, date, category, description,
	)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Expense{ID: id, Amount: amount, Date: date, Category: category, Description: description}, nil
}

// ListExpenses returns every expense row in insertion order.
func (db *DB) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, amount, date, category, description FROM expenses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Date, &e.Category, &e.Description); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Count returns the number of rows of the given kind.
func (db *DB) Count(ctx context.Context, kind models.Kind) (int, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	var count int
	err = db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
	return count, err
}

func tableFor(kind models.Kind) (string, error) {
	switch kind {
	case models.KindIncome:
		return "income", nil
	case models.KindExpense:
		return "expenses", nil
	}
	return "", fmt.Errorf("storage: unknown kind %q", kind)
}
