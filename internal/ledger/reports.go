package ledger

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"
)

// MonthlyIncomeReport totals income per month of year, ascending.
// Months without income are absent rather than zero.
func (l *Ledger) MonthlyIncomeReport(ctx context.Context, year int) ([]models.PeriodTotal, error) {
	return l.Monthly(ctx, models.KindIncome, year)
}

// MonthlyExpenseReport totals expenses per month of year, ascending.
func (l *Ledger) MonthlyExpenseReport(ctx context.Context, year int) ([]models.PeriodTotal, error) {
	return l.Monthly(ctx, models.KindExpense, year)
}

// YearlyIncomeReport totals income per year across all years, ascending.
func (l *Ledger) YearlyIncomeReport(ctx context.Context) ([]models.PeriodTotal, error) {
	return l.Yearly(ctx, models.KindIncome)
}

// YearlyExpenseReport totals expenses per year across all years, ascending.
func (l *Ledger) YearlyExpenseReport(ctx context.Context) ([]models.PeriodTotal, error) {
	return l.Yearly(ctx, models.KindExpense)
}

// Monthly is the monthly report for either kind.
func (l *Ledger) Monthly(ctx context.Context, kind models.Kind, year int) ([]models.PeriodTotal, error) {
	totals, err := l.db.MonthlyTotals(ctx, kind, year)
	if err != nil {
		return nil, fmt.Errorf("monthly %s report: %w", kind, err)
	}
	return totals, nil
}

// Yearly is the yearly report for either kind.
func (l *Ledger) Yearly(ctx context.Context, kind models.Kind) ([]models.PeriodTotal, error) {
	totals, err := l.db.YearlyTotals(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("yearly %s report: %w", kind, err)
	}
	return totals, nil
}

// Balance sums all income and all expenses.
func (l *Ledger) Balance(ctx context.Context) (models.Balance, error) {
	var b models.Balance
	var err error
	if b.Income, err = l.db.Total(ctx, models.KindIncome); err != nil {
		return b, fmt.Errorf("total income: %w", err)
	}
	if b.Expenses, err = l.db.Total(ctx, models.KindExpense); err != nil {
		return b, fmt.Errorf("total expenses: %w", err)
	}
	b.Net = b.Income - b.Expenses
	return b, nil
}
