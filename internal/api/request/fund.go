package request

// CreateFundRequest is the payload for adding a mutual fund position.
// PurchaseDate accepts "2006-01-02" or RFC3339.
type CreateFundRequest struct {
	FundName       string  `json:"fund_name"`
	SchemeCode     string  `json:"scheme_code"`
	InvestedAmount float64 `json:"invested_amount"`
	Units          float64 `json:"units"`
	ExpectedValue  float64 `json:"expected_value"`
	PurchaseDate   string  `json:"purchase_date"`
}

// UpdateFundRequest is the payload for editing a mutual fund position.
type UpdateFundRequest struct {
	FundName       string  `json:"fund_name"`
	SchemeCode     string  `json:"scheme_code"`
	InvestedAmount float64 `json:"invested_amount"`
	Units          float64 `json:"units"`
	ExpectedValue  float64 `json:"expected_value"`
	PurchaseDate   string  `json:"purchase_date"`
}

// InstallmentRequest is the payload for recording one SIP installment
// against an existing fund.
type InstallmentRequest struct {
	Amount       float64 `json:"amount"`
	NAV          float64 `json:"nav"`
	PurchaseDate string  `json:"purchase_date"`
}
