package repository

import (
	"database/sql"
	"fmt"

	"fintrack/internal/apperrors"
	"fintrack/internal/model"
)

// FundRepository provides data access methods for the mutual_fund table.
type FundRepository struct {
	db *sql.DB
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

const fundColumns = `id, fund_name, scheme_code, invested_amount, units, current_nav, expected_value, purchase_date, created_at, updated_at`

func scanFund(scanner interface{ Scan(...any) error }) (model.MutualFund, error) {
	var f model.MutualFund
	var purchaseDate, createdAt, updatedAt string

	err := scanner.Scan(
		&f.ID,
		&f.FundName,
		&f.SchemeCode,
		&f.InvestedAmount,
		&f.Units,
		&f.CurrentNAV,
		&f.ExpectedValue,
		&purchaseDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.MutualFund{}, err
	}

	if f.PurchaseDate, err = ParseTime(purchaseDate); err != nil {
		return model.MutualFund{}, err
	}
	if f.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.MutualFund{}, err
	}
	if f.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.MutualFund{}, err
	}

	return f, nil
}

// GetAllFunds retrieves all mutual funds, newest first.
func (r *FundRepository) GetAllFunds() ([]model.MutualFund, error) {
	query := `SELECT ` + fundColumns + ` FROM mutual_fund ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query mutual funds: %w", err)
	}
	defer rows.Close()

	funds := []model.MutualFund{}
	for rows.Next() {
		fund, err := scanFund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mutual fund: %w", err)
		}
		funds = append(funds, fund)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mutual funds: %w", err)
	}

	return funds, nil
}

// GetFund retrieves a single mutual fund by ID.
func (r *FundRepository) GetFund(fundID string) (model.MutualFund, error) {
	query := `SELECT ` + fundColumns + ` FROM mutual_fund WHERE id = ?`

	fund, err := scanFund(r.db.QueryRow(query, fundID))
	if err == sql.ErrNoRows {
		return model.MutualFund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.MutualFund{}, fmt.Errorf("failed to get mutual fund: %w", err)
	}

	return fund, nil
}

// CreateFund inserts a new mutual fund record.
func (r *FundRepository) CreateFund(fund *model.MutualFund) error {
	query := `
		INSERT INTO mutual_fund (` + fundColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		fund.ID,
		fund.FundName,
		fund.SchemeCode,
		fund.InvestedAmount,
		fund.Units,
		fund.CurrentNAV,
		fund.ExpectedValue,
		FormatTime(fund.PurchaseDate),
		FormatTime(fund.CreatedAt),
		FormatTime(fund.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create mutual fund: %w", err)
	}

	return nil
}

// UpdateFund writes the full mutable state of a mutual fund back by ID.
// Returns ErrFundNotFound when no row matches.
func (r *FundRepository) UpdateFund(fund *model.MutualFund) error {
	query := `
		UPDATE mutual_fund
		SET fund_name = ?, scheme_code = ?, invested_amount = ?, units = ?,
		    current_nav = ?, expected_value = ?, purchase_date = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		fund.FundName,
		fund.SchemeCode,
		fund.InvestedAmount,
		fund.Units,
		fund.CurrentNAV,
		fund.ExpectedValue,
		FormatTime(fund.PurchaseDate),
		FormatTime(fund.UpdatedAt),
		fund.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mutual fund: %w", err)
	}

	return requireRow(result, apperrors.ErrFundNotFound)
}

// UpdateCurrentNAV persists a freshly fetched NAV for one fund. A missing
// fund surfaces as ErrFundNotFound, never as a crash: bulk refreshes race
// with deletes and must treat a vanished holding as a per-item failure.
func (r *FundRepository) UpdateCurrentNAV(fundID string, nav float64, updatedAt string) error {
	result, err := r.db.Exec(
		`UPDATE mutual_fund SET current_nav = ?, updated_at = ? WHERE id = ?`,
		nav, updatedAt, fundID,
	)
	if err != nil {
		return fmt.Errorf("failed to update NAV: %w", err)
	}

	return requireRow(result, apperrors.ErrFundNotFound)
}

// DeleteFund removes a mutual fund by ID.
func (r *FundRepository) DeleteFund(fundID string) error {
	result, err := r.db.Exec(`DELETE FROM mutual_fund WHERE id = ?`, fundID)
	if err != nil {
		return fmt.Errorf("failed to delete mutual fund: %w", err)
	}

	return requireRow(result, apperrors.ErrFundNotFound)
}

// requireRow converts a zero-rows-affected result into the given sentinel.
func requireRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
