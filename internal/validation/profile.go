package validation

import (
	"strings"

	"fintrack/internal/api/request"
)

func ValidateUpdateProfile(req request.UpdateProfileRequest) error {
	errors := make(map[string]string)

	if req.MonthlySalary != nil && *req.MonthlySalary < 0 {
		errors["monthly_salary"] = "monthly salary cannot be negative"
	}
	if req.Allocations.Crypto < 0 || req.Allocations.MF < 0 || req.Allocations.Expenses < 0 {
		errors["allocations"] = "allocations cannot be negative"
	}
	if req.Currency != "" && len(strings.TrimSpace(req.Currency)) != 3 {
		errors["currency"] = "currency must be a 3-letter code"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func ValidateLogin(req request.LoginRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.PIN) == "" {
		errors["pin"] = "pin is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
