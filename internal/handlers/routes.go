package handlers

import "net/http"

// Routes registers the API on a new ServeMux. Everything except signup
// sits behind AuthMiddleware.
func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/signup", h.Signup)

	protected := func(fn http.HandlerFunc) http.Handler {
		return h.AuthMiddleware(fn)
	}
	mux.Handle("GET /api/me", protected(h.Me))
	mux.Handle("GET /api/income", protected(h.ListIncome))
	mux.Handle("POST /api/income", protected(h.CreateIncome))
	mux.Handle("GET /api/expenses", protected(h.ListExpenses))
	mux.Handle("POST /api/expenses", protected(h.CreateExpense))
	mux.Handle("GET /api/reports/monthly/{kind}", protected(h.MonthlyReport))
	mux.Handle("GET /api/reports/yearly/{kind}", protected(h.YearlyReport))
	mux.Handle("GET /api/balance", protected(h.Balance))
	mux.Handle("GET /api/export/{kind}", protected(h.Export))

	return mux
}
