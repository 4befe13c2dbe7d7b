package model

import "time"

// ExchangeCredential holds stored Binance API credentials. The secret is
// fernet-encrypted at rest and only decrypted at the moment of the signed
// balance call.
type ExchangeCredential struct {
	ID              string
	APIKey          string
	SecretEncrypted string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
