package validation

import (
	"strings"

	"fintrack/internal/api/request"
)

func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.TokenSymbol) == "" {
		errors["token_symbol"] = "token symbol is required"
	}
	if strings.TrimSpace(req.TokenName) == "" {
		errors["token_name"] = "token name is required"
	}
	if req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.InvestedAmount < 0 {
		errors["invested_amount"] = "invested amount cannot be negative"
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

func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	return ValidateCreateHolding(request.CreateHoldingRequest(req))
}

func ValidateSyncWallet(req request.SyncWalletRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.WalletAddress) == "" {
		errors["wallet_address"] = "wallet address is required"
	}
	for _, holding := range req.Holdings {
		if strings.TrimSpace(holding.TokenSymbol) == "" {
			errors["holdings"] = "every holding needs a token symbol"
			break
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func ValidateSaveCredentials(req request.SaveCredentialsRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.APIKey) == "" {
		errors["api_key"] = "API key is required"
	}
	if strings.TrimSpace(req.APISecret) == "" {
		errors["api_secret"] = "API secret is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
