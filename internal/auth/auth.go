package auth

import (
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fintrack/internal/apperrors"
)

// maxAttempts failed PIN entries trigger a lockout.
const maxAttempts = 5

// lockoutDuration is how long PIN validation stays locked after too many
// failed attempts.
const lockoutDuration = 5 * time.Minute

// Service validates the configured PIN and issues short-lived bearer
// tokens. The system is single-user, so the attempt counter is global.
type Service struct {
	pin           string
	secret        []byte
	tokenLifetime time.Duration

	mu          sync.Mutex
	attempts    int
	lockedUntil time.Time

	now func() time.Time
}

// NewService creates an auth service for the configured PIN and JWT secret.
func NewService(pin, jwtSecret string, tokenLifetime time.Duration) *Service {
	return &Service{
		pin:           pin,
		secret:        []byte(jwtSecret),
		tokenLifetime: tokenLifetime,
		now:           time.Now,
	}
}

// ValidatePIN checks the supplied PIN. A correct PIN resets the attempt
// counter and returns a signed token. After maxAttempts failures the
// service locks; waitSeconds reports how long the caller must wait.
func (s *Service) ValidatePIN(pin string) (token string, waitSeconds int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if now.Before(s.lockedUntil) {
		return "", remainingSeconds(s.lockedUntil, now), apperrors.ErrLockedOut
	}

	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.pin)) != 1 {
		s.attempts++
		if s.attempts >= maxAttempts {
			s.attempts = 0
			s.lockedUntil = now.Add(lockoutDuration)
			return "", remainingSeconds(s.lockedUntil, now), apperrors.ErrLockedOut
		}
		return "", 0, apperrors.ErrInvalidPIN
	}

	s.attempts = 0
	s.lockedUntil = time.Time{}

	token, err = s.issueToken(now)
	if err != nil {
		return "", 0, err
	}
	return token, 0, nil
}

// VerifyToken checks a bearer token's signature and expiry.
func (s *Service) VerifyToken(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return apperrors.ErrInvalidToken
	}
	return nil
}

func (s *Service) issueToken(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   "owner",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func remainingSeconds(until, now time.Time) int {
	remaining := int(until.Sub(now).Seconds())
	if remaining < 1 {
		remaining = 1
	}
	return remaining
}
