package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/model"
)

// ProfileRepository provides data access methods for the single-row
// user_profile table.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository with the provided database connection.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, name, designation, monthly_salary, alloc_crypto, alloc_mf, alloc_expenses, currency, created_at, updated_at`

func scanProfile(scanner interface{ Scan(...any) error }) (model.UserProfile, error) {
	var p model.UserProfile
	var name, designation sql.NullString
	var salary sql.NullFloat64
	var createdAt, updatedAt string

	err := scanner.Scan(
		&p.ID,
		&name,
		&designation,
		&salary,
		&p.Allocations.Crypto,
		&p.Allocations.MF,
		&p.Allocations.Expenses,
		&p.Currency,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.UserProfile{}, err
	}

	if name.Valid {
		p.Name = &name.String
	}
	if designation.Valid {
		p.Designation = &designation.String
	}
	if salary.Valid {
		p.MonthlySalary = &salary.Float64
	}

	if p.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.UserProfile{}, err
	}
	if p.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.UserProfile{}, err
	}

	return p, nil
}

// GetOrCreateProfile returns the profile row, creating an empty one on first
// read. The system is single-user so at most one row ever exists.
func (r *ProfileRepository) GetOrCreateProfile() (model.UserProfile, error) {
	profile, err := scanProfile(r.db.QueryRow(`SELECT ` + profileColumns + ` FROM user_profile LIMIT 1`))
	if err == nil {
		return profile, nil
	}
	if err != sql.ErrNoRows {
		return model.UserProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	now := time.Now().UTC()
	profile = model.UserProfile{
		ID:        uuid.New().String(),
		Currency:  "INR",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = r.db.Exec(
		`INSERT INTO user_profile (`+profileColumns+`) VALUES (?, NULL, NULL, NULL, 0, 0, 0, ?, ?, ?)`,
		profile.ID, profile.Currency, FormatTime(now), FormatTime(now),
	)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile writes the mutable state of the profile back by ID.
func (r *ProfileRepository) UpdateProfile(profile *model.UserProfile) error {
	query := `
		UPDATE user_profile
		SET name = ?, designation = ?, monthly_salary = ?,
		    alloc_crypto = ?, alloc_mf = ?, alloc_expenses = ?, currency = ?, updated_at = ?
		WHERE id = ?
	`

	var name, designation any
	if profile.Name != nil {
		name = *profile.Name
	}
	if profile.Designation != nil {
		designation = *profile.Designation
	}
	var salary any
	if profile.MonthlySalary != nil {
		salary = *profile.MonthlySalary
	}

	_, err := r.db.Exec(query,
		name,
		designation,
		salary,
		profile.Allocations.Crypto,
		profile.Allocations.MF,
		profile.Allocations.Expenses,
		profile.Currency,
		FormatTime(profile.UpdatedAt),
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}
