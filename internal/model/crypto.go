package model

import "time"

// CryptoHolding represents a crypto position from the database.
type CryptoHolding struct {
	ID             string
	TokenSymbol    string
	TokenName      string
	Quantity       float64
	InvestedAmount float64
	Network        string
	WalletAddress  string
	CurrentPrice   float64
	PurchaseDate   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CryptoHoldingResponse is the API shape of a crypto position, including
// the derived valuation fields.
type CryptoHoldingResponse struct {
	ID               string    `json:"id"`
	TokenSymbol      string    `json:"token_symbol"`
	TokenName        string    `json:"token_name"`
	Quantity         float64   `json:"quantity"`
	InvestedAmount   float64   `json:"invested_amount"`
	Network          string    `json:"network"`
	WalletAddress    string    `json:"wallet_address"`
	CurrentPrice     float64   `json:"current_price"`
	PurchaseDate     time.Time `json:"purchase_date"`
	CurrentValue     float64   `json:"current_value"`
	Gain             float64   `json:"gain"`
	ReturnPercentage float64   `json:"return_percentage"`
	AvgBuyPrice      float64   `json:"avg_buy_price"`
}

// AggregatedHoldings groups crypto positions by their source for the
// wallet-integration overview.
type AggregatedHoldings struct {
	All     []CryptoHoldingResponse `json:"all"`
	Binance []CryptoHoldingResponse `json:"binance"`
	Wallet  []CryptoHoldingResponse `json:"wallet"`
}
