package model

import "time"

// Expense represents a single cash expense from the database.
type Expense struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExpenseFilter narrows expense queries. Zero values mean "no filter".
type ExpenseFilter struct {
	Date     *time.Time // expenses on this calendar day
	Month    *time.Time // expenses within this calendar month (any day of the month)
	Category string
	Limit    int
	Offset   int
}

// ExpensePage is a paged expense listing.
type ExpensePage struct {
	Expenses []Expense `json:"data"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
