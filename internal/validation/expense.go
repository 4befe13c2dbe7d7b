package validation

import (
	"strings"

	"fintrack/internal/api/request"
)

func ValidateCreateExpense(req request.CreateExpenseRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}
	if req.Amount < 0.01 {
		errors["amount"] = "amount must be at least 0.01"
	}
	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if !validDate(req.Date) {
		errors["date"] = "date must be YYYY-MM-DD or RFC3339"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func ValidateUpdateExpense(req request.UpdateExpenseRequest) error {
	return ValidateCreateExpense(request.CreateExpenseRequest(req))
}

func ValidateCreateCategory(req request.CreateCategoryRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.MonthlyLimit < 0 {
		errors["monthly_limit"] = "monthly limit cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func ValidateUpdateCategory(req request.UpdateCategoryRequest) error {
	return ValidateCreateCategory(request.CreateCategoryRequest(req))
}
