package request

// SaveCredentialsRequest is the payload for storing Binance API credentials.
// The secret is encrypted before it reaches the database.
type SaveCredentialsRequest struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

// WalletHolding is one token balance reported by a connected browser wallet.
type WalletHolding struct {
	TokenSymbol string  `json:"token_symbol"`
	TokenName   string  `json:"token_name"`
	Quantity    float64 `json:"quantity"`
	Network     string  `json:"network"`
}

// SyncWalletRequest is the payload for syncing a browser wallet's balances.
// The balances are read client-side; the server only prices and stores them.
type SyncWalletRequest struct {
	WalletAddress string          `json:"wallet_address"`
	Holdings      []WalletHolding `json:"holdings"`
}
