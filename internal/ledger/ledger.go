// Package ledger records income and expenses and aggregates them into
// monthly and yearly reports. Every write passes the validation gate first.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"
	"finance-tracker/internal/validate"
)

var (
	// ErrValidation is wrapped by every rejected write.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidAmount means the amount was zero or negative.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", ErrValidation)
	// ErrInvalidDate means the date was not a real YYYY-MM-DD date.
	ErrInvalidDate = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
)

// Ledger is the transaction store and report engine over one database.
type Ledger struct {
	db     *storage.DB
	logger *slog.Logger
}

// New returns a Ledger over db. A nil logger discards output.
func New(db *storage.DB, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Ledger{db: db, logger: logger.With("component", "ledger")}
}

func check(amount float64, date string) error {
	if !validate.IsPositiveNumber(amount) {
		return ErrInvalidAmount
	}
	if !validate.IsValidDate(date) {
		return ErrInvalidDate
	}
	return nil
}

// AddIncome records income after validating amount and date. A rejected
// record is not written.
func (l *Ledger) AddIncome(ctx context.Context, amount float64, date, source string) (*models.Income, error) {
	if err := check(amount, date); err != nil {
		l.logger.DebugContext(ctx, "income rejected", "error", err)
		return nil, err
	}
	income, err := l.db.CreateIncome(ctx, amount, date, source)
	if err != nil {
		return nil, fmt.Errorf("create income: %w", err)
	}
	l.logger.InfoContext(ctx, "income added", "id", income.ID, "date", date)
	return income, nil
}

// AddExpense records an expense after validating amount and date.
// description may be empty.
func (l *Ledger) AddExpense(ctx context.Context, amount float64, date, category, description string) (*models.Expense, error) {
	if err := check(amount, date); err != nil {
		l.logger.DebugContext(ctx, "expense rejected", "error", err)
		return nil, err
	}
	expense, err := l.db.CreateExpense(ctx, amount, date, category, description)
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	l.logger.InfoContext(ctx, "expense added", "id", expense.ID, "date", date, "category", category)
	return expense, nil
}

// AllIncome returns every income record in insertion order.
func (l *Ledger) AllIncome(ctx context.Context) ([]models.Income, error) {
	income, err := l.db.ListIncome(ctx)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	return income, nil
}

// AllExpenses returns every expense record in insertion order.
func (l *Ledger) AllExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := l.db.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}
