// Package secrets encrypts exchange API secrets before they are stored in
// the database, so a copied database file does not leak account access.
package secrets

import (
	"errors"
	"time"

	"github.com/fernet/fernet-go"
)

var (
	// ErrNoKey is returned when no encryption key is configured.
	ErrNoKey = errors.New("encryption key not configured")

	// ErrDecryptFailed is returned when a stored token cannot be verified,
	// usually because the key changed since it was written.
	ErrDecryptFailed = errors.New("failed to decrypt stored secret")
)

// Encryptor encrypts and decrypts secrets with a fernet key.
type Encryptor struct {
	keys []*fernet.Key
}

// NewEncryptor creates an Encryptor from a base64-encoded fernet key.
func NewEncryptor(encodedKey string) (*Encryptor, error) {
	if encodedKey == "" {
		return nil, ErrNoKey
	}
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, err
	}
	return &Encryptor{keys: []*fernet.Key{key}}, nil
}

// Encrypt returns the fernet token for plaintext.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), e.keys[0])
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// Decrypt verifies and decrypts a stored token. Tokens do not expire: a zero
// TTL disables fernet's age check, since stored credentials stay valid until
// replaced.
func (e *Encryptor) Decrypt(token string) (string, error) {
	plaintext := fernet.VerifyAndDecrypt([]byte(token), time.Duration(0), e.keys)
	if plaintext == nil {
		return "", ErrDecryptFailed
	}
	return string(plaintext), nil
}
