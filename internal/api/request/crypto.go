package request

// CreateHoldingRequest is the payload for adding a crypto holding.
type CreateHoldingRequest struct {
	TokenSymbol    string  `json:"token_symbol"`
	TokenName      string  `json:"token_name"`
	Quantity       float64 `json:"quantity"`
	InvestedAmount float64 `json:"invested_amount"`
	Network        string  `json:"network"`
	WalletAddress  string  `json:"wallet_address"`
	PurchaseDate   string  `json:"purchase_date"`
}

// UpdateHoldingRequest is the payload for editing a crypto holding.
type UpdateHoldingRequest struct {
	TokenSymbol    string  `json:"token_symbol"`
	TokenName      string  `json:"token_name"`
	Quantity       float64 `json:"quantity"`
	InvestedAmount float64 `json:"invested_amount"`
	Network        string  `json:"network"`
	WalletAddress  string  `json:"wallet_address"`
	PurchaseDate   string  `json:"purchase_date"`
}
