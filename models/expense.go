package models

// Expense type discriminator values.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Expense struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        Date    `json:"date"`
	Type        string  `json:"type"`
	UserID      int     `json:"user_id"`
}
