package models

type CreateExpense struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        Date    `json:"date"`
	Type        string  `json:"type"`
}

type CreateUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
