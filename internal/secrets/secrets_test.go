package secrets_test

import (
	"errors"
	"testing"

	"fintrack/internal/secrets"
)

// Fixed test keys, base64url encoded 32-byte values.
const (
	testKey  = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
	otherKey = "AQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQE="
)

// TestEncryptor tests the secret round-trip.
//
// WHY: The fernet token is all that lands in the database; it must decrypt
// back to the original under the same key and fail under any other.
func TestEncryptor(t *testing.T) {
	t.Run("round-trips a secret", func(t *testing.T) {
		enc, err := secrets.NewEncryptor(testKey)
		if err != nil {
			t.Fatalf("NewEncryptor() returned unexpected error: %v", err)
		}

		token, err := enc.Encrypt("binance-api-secret")
		if err != nil {
			t.Fatalf("Encrypt() returned unexpected error: %v", err)
		}
		if token == "binance-api-secret" {
			t.Fatal("Token equals the plaintext")
		}

		plaintext, err := enc.Decrypt(token)
		if err != nil {
			t.Fatalf("Decrypt() returned unexpected error: %v", err)
		}
		if plaintext != "binance-api-secret" {
			t.Errorf("Round-trip mismatch: got %q", plaintext)
		}
	})

	t.Run("rejects a token from another key", func(t *testing.T) {
		enc, err := secrets.NewEncryptor(testKey)
		if err != nil {
			t.Fatalf("NewEncryptor() returned unexpected error: %v", err)
		}
		other, err := secrets.NewEncryptor(otherKey)
		if err != nil {
			t.Fatalf("NewEncryptor() returned unexpected error: %v", err)
		}

		token, err := other.Encrypt("secret")
		if err != nil {
			t.Fatalf("Encrypt() returned unexpected error: %v", err)
		}

		if _, err := enc.Decrypt(token); !errors.Is(err, secrets.ErrDecryptFailed) {
			t.Errorf("Expected ErrDecryptFailed, got %v", err)
		}
	})

	t.Run("rejects a garbled token", func(t *testing.T) {
		enc, err := secrets.NewEncryptor(testKey)
		if err != nil {
			t.Fatalf("NewEncryptor() returned unexpected error: %v", err)
		}

		if _, err := enc.Decrypt("not-a-token"); !errors.Is(err, secrets.ErrDecryptFailed) {
			t.Errorf("Expected ErrDecryptFailed, got %v", err)
		}
	})

	t.Run("requires a key", func(t *testing.T) {
		if _, err := secrets.NewEncryptor(""); !errors.Is(err, secrets.ErrNoKey) {
			t.Errorf("Expected ErrNoKey, got %v", err)
		}
	})

	t.Run("rejects a malformed key", func(t *testing.T) {
		if _, err := secrets.NewEncryptor("short"); err == nil {
			t.Error("Expected error for a malformed key, got nil")
		}
	})
}
