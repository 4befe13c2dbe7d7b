package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the migration files.
func createTestSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE mutual_fund (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_name VARCHAR(200) NOT NULL,
			scheme_code VARCHAR(20) NOT NULL,
			invested_amount REAL NOT NULL DEFAULT 0 CHECK (invested_amount >= 0),
			units REAL NOT NULL DEFAULT 0 CHECK (units >= 0),
			current_nav REAL NOT NULL DEFAULT 0,
			expected_value REAL NOT NULL DEFAULT 0,
			purchase_date TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE TABLE crypto_holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			token_symbol VARCHAR(20) NOT NULL,
			token_name VARCHAR(100) NOT NULL,
			quantity REAL NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			invested_amount REAL NOT NULL DEFAULT 0 CHECK (invested_amount >= 0),
			network VARCHAR(30) NOT NULL DEFAULT 'Ethereum',
			wallet_address VARCHAR(120) NOT NULL DEFAULT '',
			current_price REAL NOT NULL DEFAULT 0,
			purchase_date TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE TABLE expense (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			category VARCHAR(100) NOT NULL,
			amount REAL NOT NULL CHECK (amount > 0),
			note TEXT NOT NULL DEFAULT '',
			date TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE INDEX idx_expense_date ON expense (date DESC);
		CREATE INDEX idx_expense_category ON expense (category);

		CREATE TABLE category (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			monthly_limit REAL NOT NULL DEFAULT 0 CHECK (monthly_limit >= 0),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE TABLE user_profile (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100),
			designation VARCHAR(100),
			monthly_salary REAL,
			alloc_crypto REAL NOT NULL DEFAULT 0,
			alloc_mf REAL NOT NULL DEFAULT 0,
			alloc_expenses REAL NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL DEFAULT 'INR',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);

		CREATE TABLE exchange_credential (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			api_key VARCHAR(200) NOT NULL,
			secret_encrypted TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
