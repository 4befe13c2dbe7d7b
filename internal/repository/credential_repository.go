package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/apperrors"
	"fintrack/internal/model"
)

// CredentialRepository provides data access methods for stored exchange
// credentials. At most one credential row is kept.
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository creates a new CredentialRepository with the provided database connection.
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

const credentialColumns = `id, api_key, secret_encrypted, created_at, updated_at`

func scanCredential(scanner interface{ Scan(...any) error }) (model.ExchangeCredential, error) {
	var c model.ExchangeCredential
	var createdAt, updatedAt string

	err := scanner.Scan(&c.ID, &c.APIKey, &c.SecretEncrypted, &createdAt, &updatedAt)
	if err != nil {
		return model.ExchangeCredential{}, err
	}

	if c.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.ExchangeCredential{}, err
	}
	if c.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.ExchangeCredential{}, err
	}

	return c, nil
}

// GetCredential returns the stored exchange credential.
func (r *CredentialRepository) GetCredential() (model.ExchangeCredential, error) {
	cred, err := scanCredential(r.db.QueryRow(`SELECT ` + credentialColumns + ` FROM exchange_credential LIMIT 1`))
	if err == sql.ErrNoRows {
		return model.ExchangeCredential{}, apperrors.ErrCredentialNotFound
	}
	if err != nil {
		return model.ExchangeCredential{}, fmt.Errorf("failed to get credential: %w", err)
	}
	return cred, nil
}

// UpsertCredential replaces the stored credential. Storing a new key pair
// always overwrites the previous one.
func (r *CredentialRepository) UpsertCredential(apiKey, secretEncrypted string) (model.ExchangeCredential, error) {
	now := time.Now().UTC()

	existing, err := r.GetCredential()
	if err == nil {
		_, err = r.db.Exec(
			`UPDATE exchange_credential SET api_key = ?, secret_encrypted = ?, updated_at = ? WHERE id = ?`,
			apiKey, secretEncrypted, FormatTime(now), existing.ID,
		)
		if err != nil {
			return model.ExchangeCredential{}, fmt.Errorf("failed to update credential: %w", err)
		}
		existing.APIKey = apiKey
		existing.SecretEncrypted = secretEncrypted
		existing.UpdatedAt = now
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrCredentialNotFound) {
		return model.ExchangeCredential{}, err
	}

	cred := model.ExchangeCredential{
		ID:              uuid.New().String(),
		APIKey:          apiKey,
		SecretEncrypted: secretEncrypted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	_, err = r.db.Exec(
		`INSERT INTO exchange_credential (`+credentialColumns+`) VALUES (?, ?, ?, ?, ?)`,
		cred.ID, cred.APIKey, cred.SecretEncrypted, FormatTime(now), FormatTime(now),
	)
	if err != nil {
		return model.ExchangeCredential{}, fmt.Errorf("failed to create credential: %w", err)
	}

	return cred, nil
}

// DeleteCredential removes the stored credential if present.
func (r *CredentialRepository) DeleteCredential() error {
	_, err := r.db.Exec(`DELETE FROM exchange_credential`)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
