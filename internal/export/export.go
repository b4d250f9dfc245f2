// Package export writes stored records to flat tabular files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"finance-tracker/internal/models"
)

// Format is an output file format.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// FormatFor picks the format from path's extension; anything that is not
// .xlsx is written as CSV.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return XLSX
	}
	return CSV
}

var (
	incomeHeader  = []string{"ID", "Amount", "Date", "Source"}
	expenseHeader = []string{"ID", "Amount", "Date", "Category", "Description"}
)

type table struct {
	sheet  string
	header []string
	rows   [][]any
}

func incomeTable(records []models.Income) table {
	t := table{sheet: "Income", header: incomeHeader, rows: make([][]any, 0, len(records))}
	for _, r := range records {
		t.rows = append(t.rows, []any{r.ID, r.Amount, r.Date, r.Source})
	}
	return t
}

func expenseTable(records []models.Expense) table {
	t := table{sheet: "Expenses", header: expenseHeader, rows: make([][]any, 0, len(records))}
	for _, r := range records {
		t.rows = append(t.rows, []any{r.ID, r.Amount, r.Date, r.Category, r.Description})
	}
	return t
}

// WriteIncomeCSV writes the income header and one row per record to w.
func WriteIncomeCSV(w io.Writer, records []models.Income) error {
	return writeCSV(w, incomeTable(records))
}

// WriteExpensesCSV writes the expense header and one row per record to w.
func WriteExpensesCSV(w io.Writer, records []models.Expense) error {
	return writeCSV(w, expenseTable(records))
}

// WriteIncomeXLSX writes income records as a single-sheet workbook to w.
func WriteIncomeXLSX(w io.Writer, records []models.Income) error {
	return writeXLSX(w, incomeTable(records))
}

// WriteExpensesXLSX writes expense records as a single-sheet workbook to w.
func WriteExpensesXLSX(w io.Writer, records []models.Expense) error {
	return writeXLSX(w, expenseTable(records))
}

// IncomeToFile overwrites path with the income records, in the format
// implied by its extension.
func IncomeToFile(records []models.Income, path string) error {
	return toFile(path, incomeTable(records))
}

// ExpensesToFile overwrites path with the expense records.
func ExpensesToFile(records []models.Expense, path string) error {
	return toFile(path, expenseTable(records))
}

func toFile(path string, t table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	if FormatFor(path) == XLSX {
		return writeXLSX(f, t)
	}
	return writeCSV(f, t)
}

func writeCSV(w io.Writer, t table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return err
	}
	record := make([]string, len(t.header))
	for _, row := range t.rows {
		for i, v := range row {
			record[i] = cellString(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cellString(v any) string {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	}
	return fmt.Sprint(v)
}
