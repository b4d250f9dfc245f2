package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"finance-tracker/internal/export"
	"finance-tracker/internal/models"
)

// ReportResponse is the body of the report endpoints.
type ReportResponse struct {
	Kind   models.Kind          `json:"kind"`
	Year   int                  `json:"year,omitempty"`
	Totals []models.PeriodTotal `json:"totals"`
}

func kindFromPath(w http.ResponseWriter, r *http.Request) (models.Kind, bool) {
	kind := models.Kind(r.PathValue("kind"))
	if !kind.Valid() {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown record kind %q", kind), nil)
		return "", false
	}
	return kind, true
}

// MonthlyReport totals one kind per month of ?year= (default: current year).
func (h *Handlers) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}

	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1 || y > 9999 {
			writeError(w, http.StatusBadRequest, "year must be a four-digit number", nil)
			return
		}
		year = y
	}

	totals, err := h.ledger.Monthly(r.Context(), kind, year)
	if err != nil {
		h.internalError(w, r, "monthly report", err)
		return
	}
	writeJSON(w, http.StatusOK, ReportResponse{Kind: kind, Year: year, Totals: totals})
}

// YearlyReport totals one kind per year.
func (h *Handlers) YearlyReport(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}
	totals, err := h.ledger.Yearly(r.Context(), kind)
	if err != nil {
		h.internalError(w, r, "yearly report", err)
		return
	}
	writeJSON(w, http.StatusOK, ReportResponse{Kind: kind, Totals: totals})
}

// Balance returns total income, total expenses and the difference.
func (h *Handlers) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledger.Balance(r.Context())
	if err != nil {
		h.internalError(w, r, "balance", err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// Export downloads one kind as CSV, or as XLSX with ?format=xlsx.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromPath(w, r)
	if !ok {
		return
	}

	format := export.CSV
	switch r.URL.Query().Get("format") {
	case "", string(export.CSV):
	case string(export.XLSX):
		format = export.XLSX
	default:
		writeError(w, http.StatusBadRequest, "format must be csv or xlsx", nil)
		return
	}

	var buf bytes.Buffer
	var err error
	switch kind {
	case models.KindIncome:
		var records []models.Income
		if records, err = h.ledger.AllIncome(r.Context()); err == nil {
			if format == export.XLSX {
				err = export.WriteIncomeXLSX(&buf, records)
			} else {
				err = export.WriteIncomeCSV(&buf, records)
			}
		}
	case models.KindExpense:
		var records []models.Expense
		if records, err = h.ledger.AllExpenses(r.Context()); err == nil {
			if format == export.XLSX {
				err = export.WriteExpensesXLSX(&buf, records)
			} else {
				err = export.WriteExpensesCSV(&buf, records)
			}
		}
	}
	if err != nil {
		h.internalError(w, r, "export", err)
		return
	}

	contentType := "text/csv; charset=utf-8"
	if format == export.XLSX {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.%s", kind, format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}
