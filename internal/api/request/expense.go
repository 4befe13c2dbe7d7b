package request

// CreateExpenseRequest is the payload for recording an expense.
type CreateExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

// UpdateExpenseRequest is the payload for editing an expense.
type UpdateExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

// CreateCategoryRequest is the payload for adding an expense category.
type CreateCategoryRequest struct {
	Name         string  `json:"name"`
	MonthlyLimit float64 `json:"monthly_limit"`
}

// UpdateCategoryRequest is the payload for editing an expense category.
type UpdateCategoryRequest struct {
	Name         string  `json:"name"`
	MonthlyLimit float64 `json:"monthly_limit"`
}
