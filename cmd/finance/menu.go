package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/export"
	"finance-tracker/internal/ledger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/prompt"
)

// errQuit ends the session without an error exit.
var errQuit = errors.New("quit")

type app struct {
	prompt *prompt.Prompter
	out    io.Writer
	auth   *auth.Service
	ledger *ledger.Ledger
	user   *models.User
}

func (a *app) run(ctx context.Context) error {
	err := a.loginLoop(ctx)
	if err == nil {
		err = a.mainLoop(ctx)
	}
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		fmt.Fprintln(a.out, "Goodbye.")
		return nil
	}
	return err
}

func (a *app) loginLoop(ctx context.Context) error {
	for a.user == nil {
		fmt.Fprint(a.out, "\n1. Login\n2. Sign Up\n3. Exit\n")
		choice, err := a.prompt.Line("Choose option: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.login(ctx)
		case "2":
			err = a.signup(ctx)
		case "3":
			return errQuit
		default:
			fmt.Fprintln(a.out, "Invalid choice. Try again.")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) credentials(userLabel string) (string, string, error) {
	username, err := a.prompt.Line(userLabel)
	if err != nil {
		return "", "", err
	}
	password, err := a.prompt.Password("Password: ")
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (a *app) login(ctx context.Context) error {
	username, password, err := a.credentials("Username: ")
	if err != nil {
		return err
	}
	user, err := a.auth.Login(ctx, username, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		fmt.Fprintln(a.out, "Invalid username or password.")
		return nil
	}
	if err != nil {
		return err
	}
	a.user = user
	fmt.Fprintf(a.out, "Welcome, %s.\n", user.Username)
	return nil
}

func (a *app) signup(ctx context.Context) error {
	username, password, err := a.credentials("Choose a username: ")
	if err != nil {
		return err
	}
	_, err = a.auth.CreateUser(ctx, username, password)
	switch {
	case errors.Is(err, auth.ErrUserExists):
		fmt.Fprintln(a.out, "Username already exists. Try another.")
	case errors.Is(err, auth.ErrEmptyUsername):
		fmt.Fprintln(a.out, "Username cannot be empty.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(a.out, "Account created. You can now log in.")
	}
	return nil
}

const mainMenu = `
1. Add Income
2. Add Expense
3. View All Income
4. View All Expenses
5. Monthly Report
6. Yearly Report
7. Export Income
8. Export Expenses
9. Balance
0. Exit
`

func (a *app) mainLoop(ctx context.Context) error {
	actions := map[string]func(context.Context) error{
		"1": a.addIncome,
		"2": a.addExpense,
		"3": a.viewIncome,
		"4": a.viewExpenses,
		"5": a.monthlyReport,
		"6": a.yearlyReport,
		"7": a.exportIncome,
		"8": a.exportExpenses,
		"9": a.balance,
	}
	for {
		fmt.Fprint(a.out, mainMenu)
		choice, err := a.prompt.Line("Choose option: ")
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)
		if choice == "0" {
			return errQuit
		}
		action, ok := actions[choice]
		if !ok {
			fmt.Fprintln(a.out, "Invalid choice. Try again.")
			continue
		}
		if err := action(ctx); err != nil {
			return err
		}
	}
}

// readAmount returns ok=false after telling the user the input was not a number.
func (a *app) readAmount(label string) (float64, bool, error) {
	s, err := a.prompt.Line(label)
	if err != nil {
		return 0, false, err
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		fmt.Fprintln(a.out, "Please enter a valid number for amount.")
		return 0, false, nil
	}
	return amount, true, nil
}

// reportRejection prints validation failures and passes other errors through.
func (a *app) reportRejection(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		fmt.Fprintln(a.out, "Amount must be positive.")
	case errors.Is(err, ledger.ErrInvalidDate):
		fmt.Fprintln(a.out, "Invalid date. Use YYYY-MM-DD.")
	default:
		return err
	}
	return nil
}

func (a *app) addIncome(ctx context.Context) error {
	amount, ok, err := a.readAmount("Amount: ")
	if err != nil || !ok {
		return err
	}
	date, err := a.prompt.Line("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	source, err := a.prompt.Line("Source: ")
	if err != nil {
		return err
	}
	if _, err := a.ledger.AddIncome(ctx, amount, strings.TrimSpace(date), source); err != nil {
		return a.reportRejection(err)
	}
	fmt.Fprintln(a.out, "Income added.")
	return nil
}

func (a *app) addExpense(ctx context.Context) error {
	amount, ok, err := a.readAmount("Amount: ")
	if err != nil || !ok {
		return err
	}
	date, err := a.prompt.Line("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	category, err := a.prompt.Line("Category (Food, Travel, Bills, etc.): ")
	if err != nil {
		return err
	}
	description, err := a.prompt.Line("Description (optional): ")
	if err != nil {
		return err
	}
	if _, err := a.ledger.AddExpense(ctx, amount, strings.TrimSpace(date), category, description); err != nil {
		return a.reportRejection(err)
	}
	fmt.Fprintln(a.out, "Expense added.")
	return nil
}

func (a *app) viewIncome(ctx context.Context) error {
	income, err := a.ledger.AllIncome(ctx)
	if err != nil {
		return err
	}
	if len(income) == 0 {
		fmt.Fprintln(a.out, "No income records found.")
		return nil
	}
	for _, i := range income {
		fmt.Fprintf(a.out, "%4d  %s  %10.2f  %s\n", i.ID, i.Date, i.Amount, i.Source)
	}
	return nil
}

func (a *app) viewExpenses(ctx context.Context) error {
	expenses, err := a.ledger.AllExpenses(ctx)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Fprintln(a.out, "No expense records found.")
		return nil
	}
	for _, e := range expenses {
		fmt.Fprintf(a.out, "%4d  %s  %10.2f  %s  %s\n", e.ID, e.Date, e.Amount, e.Category, e.Description)
	}
	return nil
}

func (a *app) monthlyReport(ctx context.Context) error {
	s, err := a.prompt.Line("Year (e.g. 2024): ")
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 1 || year > 9999 {
		fmt.Fprintln(a.out, "Please enter a four-digit year.")
		return nil
	}

	income, err := a.ledger.MonthlyIncomeReport(ctx, year)
	if err != nil {
		return err
	}
	expenses, err := a.ledger.MonthlyExpenseReport(ctx, year)
	if err != nil {
		return err
	}
	a.printTotals(fmt.Sprintf("Monthly Income Report (%d)", year), income)
	a.printTotals(fmt.Sprintf("Monthly Expense Report (%d)", year), expenses)
	return nil
}

func (a *app) yearlyReport(ctx context.Context) error {
	income, err := a.ledger.YearlyIncomeReport(ctx)
	if err != nil {
		return err
	}
	expenses, err := a.ledger.YearlyExpenseReport(ctx)
	if err != nil {
		return err
	}
	a.printTotals("Yearly Income Report", income)
	a.printTotals("Yearly Expense Report", expenses)
	return nil
}

func (a *app) printTotals(title string, totals []models.PeriodTotal) {
	fmt.Fprintf(a.out, "\n%s:\n", title)
	if len(totals) == 0 {
		fmt.Fprintln(a.out, "  no records")
		return
	}
	for _, t := range totals {
		fmt.Fprintf(a.out, "  %s: %.2f\n", t.Period, t.Total)
	}
}

func (a *app) exportPath(def string) (string, error) {
	path, err := a.prompt.Line(fmt.Sprintf("File (.csv or .xlsx) [%s]: ", def))
	if err != nil {
		return "", err
	}
	if path = strings.TrimSpace(path); path == "" {
		path = def
	}
	return path, nil
}

func (a *app) exportIncome(ctx context.Context) error {
	path, err := a.exportPath("income.csv")
	if err != nil {
		return err
	}
	income, err := a.ledger.AllIncome(ctx)
	if err != nil {
		return err
	}
	if err := export.IncomeToFile(income, path); err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "Exported %d income records to %s.\n", len(income), path)
	return nil
}

func (a *app) exportExpenses(ctx context.Context) error {
	path, err := a.exportPath("expenses.csv")
	if err != nil {
		return err
	}
	expenses, err := a.ledger.AllExpenses(ctx)
	if err != nil {
		return err
	}
	if err := export.ExpensesToFile(expenses, path); err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "Exported %d expense records to %s.\n", len(expenses), path)
	return nil
}

func (a *app) balance(ctx context.Context) error {
	b, err := a.ledger.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Income:   %.2f\nExpenses: %.2f\nNet:      %.2f\n", b.Income, b.Expenses, b.Net)
	return nil
}
