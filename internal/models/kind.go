package models

// Kind selects one of the two transaction tables.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expenses"
)

// Valid reports whether k names a known transaction table.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}
