package handlers

import (
	"errors"
	"net/http"

	"finance-tracker/internal/ledger"
)

type incomeRequest struct {
	Amount float64 `json:"amount" validate:"positive"`
	Date   string  `json:"date" validate:"isodate"`
	Source string  `json:"source" validate:"required"`
}

type expenseRequest struct {
	Amount      float64 `json:"amount" validate:"positive"`
	Date        string  `json:"date" validate:"isodate"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
}

// ListIncome returns every income record.
func (h *Handlers) ListIncome(w http.ResponseWriter, r *http.Request) {
	income, err := h.ledger.AllIncome(r.Context())
	if err != nil {
		h.internalError(w, r, "list income", err)
		return
	}
	writeJSON(w, http.StatusOK, income)
}

// CreateIncome records a new income entry.
func (h *Handlers) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if !h.decode(w, r, &req) {
		return
	}
	income, err := h.ledger.AddIncome(r.Context(), req.Amount, req.Date, req.Source)
	if errors.Is(err, ledger.ErrValidation) {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err != nil {
		h.internalError(w, r, "create income", err)
		return
	}
	writeJSON(w, http.StatusCreated, income)
}

// ListExpenses returns every expense record.
func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.ledger.AllExpenses(r.Context())
	if err != nil {
		h.internalError(w, r, "list expenses", err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

// CreateExpense records a new expense.
func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !h.decode(w, r, &req) {
		return
	}
	expense, err := h.ledger.AddExpense(r.Context(), req.Amount, req.Date, req.Category, req.Description)
	if errors.Is(err, ledger.ErrValidation) {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err != nil {
		h.internalError(w, r, "create expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}
