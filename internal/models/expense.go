package models

// Expense represents money spent. Date is the canonical YYYY-MM-DD form.
type Expense struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Income represents money received from a source.
type Income struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Source string  `json:"source"`
}
