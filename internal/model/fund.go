package model

import "time"

// MutualFund represents a mutual fund position from the database.
// Valuation fields (current value, gain, return percentage) are derived at
// read time and never stored; see MutualFundResponse.
type MutualFund struct {
	ID             string
	FundName       string
	SchemeCode     string
	InvestedAmount float64
	Units          float64
	CurrentNAV     float64
	ExpectedValue  float64
	PurchaseDate   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MutualFundResponse is the API shape of a mutual fund position, including
// the derived valuation fields.
type MutualFundResponse struct {
	ID               string    `json:"id"`
	FundName         string    `json:"fund_name"`
	SchemeCode       string    `json:"scheme_code"`
	InvestedAmount   float64   `json:"invested_amount"`
	Units            float64   `json:"units"`
	CurrentNAV       float64   `json:"current_nav"`
	ExpectedValue    float64   `json:"expected_value"`
	PurchaseDate     time.Time `json:"purchase_date"`
	CurrentValue     float64   `json:"current_value"`
	Gain             float64   `json:"gain"`
	ReturnPercentage float64   `json:"return_percentage"`
	AvgCost          float64   `json:"avg_cost"`
}
