package validation

import (
	"strings"

	"fintrack/internal/api/request"
)

func ValidateCreateFund(req request.CreateFundRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.FundName) == "" {
		errors["fund_name"] = "fund name is required"
	}
	if strings.TrimSpace(req.SchemeCode) == "" {
		errors["scheme_code"] = "scheme code is required"
	}
	if req.InvestedAmount < 0 {
		errors["invested_amount"] = "invested amount cannot be negative"
	}
	if req.Units < 0 {
		errors["units"] = "units cannot be negative"
	}
	if strings.TrimSpace(req.PurchaseDate) == "" {
		errors["purchase_date"] = "purchase date is required"
	} else if !validDate(req.PurchaseDate) {
		errors["purchase_date"] = "purchase date must be YYYY-MM-DD or RFC3339"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func ValidateUpdateFund(req request.UpdateFundRequest) error {
	return ValidateCreateFund(request.CreateFundRequest(req))
}

func ValidateInstallment(req request.InstallmentRequest) error {
	errors := make(map[string]string)

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}
	if req.NAV <= 0 {
		errors["nav"] = "purchase NAV must be positive"
	}
	if req.PurchaseDate != "" && !validDate(req.PurchaseDate) {
		errors["purchase_date"] = "purchase date must be YYYY-MM-DD or RFC3339"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
