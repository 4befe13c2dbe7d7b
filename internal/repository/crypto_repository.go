package repository

import (
	"database/sql"
	"fmt"

	"fintrack/internal/apperrors"
	"fintrack/internal/model"
)

// CryptoRepository provides data access methods for the crypto_holding table.
type CryptoRepository struct {
	db *sql.DB
}

// NewCryptoRepository creates a new CryptoRepository with the provided database connection.
func NewCryptoRepository(db *sql.DB) *CryptoRepository {
	return &CryptoRepository{db: db}
}

const cryptoColumns = `id, token_symbol, token_name, quantity, invested_amount, network, wallet_address, current_price, purchase_date, created_at, updated_at`

func scanHolding(scanner interface{ Scan(...any) error }) (model.CryptoHolding, error) {
	var h model.CryptoHolding
	var purchaseDate, createdAt, updatedAt string

	err := scanner.Scan(
		&h.ID,
		&h.TokenSymbol,
		&h.TokenName,
		&h.Quantity,
		&h.InvestedAmount,
		&h.Network,
		&h.WalletAddress,
		&h.CurrentPrice,
		&purchaseDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.CryptoHolding{}, err
	}

	if h.PurchaseDate, err = ParseTime(purchaseDate); err != nil {
		return model.CryptoHolding{}, err
	}
	if h.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.CryptoHolding{}, err
	}
	if h.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.CryptoHolding{}, err
	}

	return h, nil
}

// GetAllHoldings retrieves all crypto holdings, newest first.
func (r *CryptoRepository) GetAllHoldings() ([]model.CryptoHolding, error) {
	query := `SELECT ` + cryptoColumns + ` FROM crypto_holding ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query crypto holdings: %w", err)
	}
	defer rows.Close()

	holdings := []model.CryptoHolding{}
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crypto holding: %w", err)
		}
		holdings = append(holdings, holding)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crypto holdings: %w", err)
	}

	return holdings, nil
}

// GetHolding retrieves a single crypto holding by ID.
func (r *CryptoRepository) GetHolding(holdingID string) (model.CryptoHolding, error) {
	query := `SELECT ` + cryptoColumns + ` FROM crypto_holding WHERE id = ?`

	holding, err := scanHolding(r.db.QueryRow(query, holdingID))
	if err == sql.ErrNoRows {
		return model.CryptoHolding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.CryptoHolding{}, fmt.Errorf("failed to get crypto holding: %w", err)
	}

	return holding, nil
}

// FindBySymbolAndNetwork looks up a holding by token symbol and network.
// Used by the exchange sync to upsert by identity rather than ID.
func (r *CryptoRepository) FindBySymbolAndNetwork(symbol, network string) (model.CryptoHolding, error) {
	query := `SELECT ` + cryptoColumns + ` FROM crypto_holding WHERE token_symbol = ? AND network = ?`

	holding, err := scanHolding(r.db.QueryRow(query, symbol, network))
	if err == sql.ErrNoRows {
		return model.CryptoHolding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.CryptoHolding{}, fmt.Errorf("failed to find crypto holding: %w", err)
	}

	return holding, nil
}

// FindBySymbolAndWallet looks up a holding by token symbol and wallet
// address. Used by the wallet sync to upsert by identity rather than ID.
func (r *CryptoRepository) FindBySymbolAndWallet(symbol, walletAddress string) (model.CryptoHolding, error) {
	query := `SELECT ` + cryptoColumns + ` FROM crypto_holding WHERE token_symbol = ? AND wallet_address = ?`

	holding, err := scanHolding(r.db.QueryRow(query, symbol, walletAddress))
	if err == sql.ErrNoRows {
		return model.CryptoHolding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.CryptoHolding{}, fmt.Errorf("failed to find crypto holding: %w", err)
	}

	return holding, nil
}

// CreateHolding inserts a new crypto holding record.
func (r *CryptoRepository) CreateHolding(holding *model.CryptoHolding) error {
	query := `
		INSERT INTO crypto_holding (` + cryptoColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		holding.ID,
		holding.TokenSymbol,
		holding.TokenName,
		holding.Quantity,
		holding.InvestedAmount,
		holding.Network,
		holding.WalletAddress,
		holding.CurrentPrice,
		FormatTime(holding.PurchaseDate),
		FormatTime(holding.CreatedAt),
		FormatTime(holding.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create crypto holding: %w", err)
	}

	return nil
}

// UpdateHolding writes the full mutable state of a crypto holding back by ID.
// Returns ErrHoldingNotFound when no row matches.
func (r *CryptoRepository) UpdateHolding(holding *model.CryptoHolding) error {
	query := `
		UPDATE crypto_holding
		SET token_symbol = ?, token_name = ?, quantity = ?, invested_amount = ?,
		    network = ?, wallet_address = ?, current_price = ?, purchase_date = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		holding.TokenSymbol,
		holding.TokenName,
		holding.Quantity,
		holding.InvestedAmount,
		holding.Network,
		holding.WalletAddress,
		holding.CurrentPrice,
		FormatTime(holding.PurchaseDate),
		FormatTime(holding.UpdatedAt),
		holding.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update crypto holding: %w", err)
	}

	return requireRow(result, apperrors.ErrHoldingNotFound)
}

// UpdateCurrentPrice persists a freshly fetched price for one holding. A
// missing holding surfaces as ErrHoldingNotFound, never as a crash.
func (r *CryptoRepository) UpdateCurrentPrice(holdingID string, price float64, updatedAt string) error {
	result, err := r.db.Exec(
		`UPDATE crypto_holding SET current_price = ?, updated_at = ? WHERE id = ?`,
		price, updatedAt, holdingID,
	)
	if err != nil {
		return fmt.Errorf("failed to update price: %w", err)
	}

	return requireRow(result, apperrors.ErrHoldingNotFound)
}

// DeleteHolding removes a crypto holding by ID.
func (r *CryptoRepository) DeleteHolding(holdingID string) error {
	result, err := r.db.Exec(`DELETE FROM crypto_holding WHERE id = ?`, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete crypto holding: %w", err)
	}

	return requireRow(result, apperrors.ErrHoldingNotFound)
}
