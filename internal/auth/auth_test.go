package auth

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/apperrors"
)

func newFixedClockService(pin string, start time.Time) (*Service, *time.Time) {
	current := start
	svc := NewService(pin, "test-secret", time.Hour)
	svc.now = func() time.Time { return current }
	return svc, &current
}

// TestValidatePIN tests PIN validation and the lockout counter.
//
// WHY: The PIN is the only credential; brute-force protection hinges on the
// counter locking at exactly five failures and unlocking only after the
// cooldown has fully elapsed.
func TestValidatePIN(t *testing.T) {
	start := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("correct PIN issues a verifiable token", func(t *testing.T) {
		svc, _ := newFixedClockService("1234", start)

		token, wait, err := svc.ValidatePIN("1234")
		if err != nil {
			t.Fatalf("ValidatePIN() returned unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("Expected a token, got empty string")
		}
		if wait != 0 {
			t.Errorf("Expected no wait on success, got %d", wait)
		}

		if err := svc.VerifyToken(token); err != nil {
			t.Errorf("VerifyToken() rejected a freshly issued token: %v", err)
		}
	})

	t.Run("wrong PIN fails without locking before the fifth attempt", func(t *testing.T) {
		svc, _ := newFixedClockService("1234", start)

		for i := 0; i < 4; i++ {
			_, wait, err := svc.ValidatePIN("0000")
			if !errors.Is(err, apperrors.ErrInvalidPIN) {
				t.Fatalf("Attempt %d: expected ErrInvalidPIN, got %v", i+1, err)
			}
			if wait != 0 {
				t.Errorf("Attempt %d: expected no wait, got %d", i+1, wait)
			}
		}

		// Still not locked: the correct PIN goes through.
		if _, _, err := svc.ValidatePIN("1234"); err != nil {
			t.Errorf("Expected success after four failures, got %v", err)
		}
	})

	t.Run("fifth failure locks for five minutes", func(t *testing.T) {
		svc, clock := newFixedClockService("1234", start)

		for i := 0; i < 4; i++ {
			svc.ValidatePIN("0000")
		}

		_, wait, err := svc.ValidatePIN("0000")
		if !errors.Is(err, apperrors.ErrLockedOut) {
			t.Fatalf("Expected ErrLockedOut on the fifth failure, got %v", err)
		}
		if wait != 300 {
			t.Errorf("Expected 300 seconds wait, got %d", wait)
		}

		// Even the correct PIN is rejected while locked.
		*clock = start.Add(2 * time.Minute)
		_, wait, err = svc.ValidatePIN("1234")
		if !errors.Is(err, apperrors.ErrLockedOut) {
			t.Fatalf("Expected ErrLockedOut during cooldown, got %v", err)
		}
		if wait != 180 {
			t.Errorf("Expected 180 seconds remaining, got %d", wait)
		}

		// After the cooldown the correct PIN works again.
		*clock = start.Add(5*time.Minute + time.Second)
		if _, _, err := svc.ValidatePIN("1234"); err != nil {
			t.Errorf("Expected success after cooldown, got %v", err)
		}
	})

	t.Run("success resets the attempt counter", func(t *testing.T) {
		svc, _ := newFixedClockService("1234", start)

		for i := 0; i < 4; i++ {
			svc.ValidatePIN("0000")
		}
		if _, _, err := svc.ValidatePIN("1234"); err != nil {
			t.Fatalf("ValidatePIN() returned unexpected error: %v", err)
		}

		// Four more failures must not lock; the counter restarted.
		for i := 0; i < 4; i++ {
			_, _, err := svc.ValidatePIN("0000")
			if !errors.Is(err, apperrors.ErrInvalidPIN) {
				t.Fatalf("Attempt %d after reset: expected ErrInvalidPIN, got %v", i+1, err)
			}
		}
	})
}

// TestVerifyToken tests token rejection paths.
func TestVerifyToken(t *testing.T) {
	start := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("rejects garbage", func(t *testing.T) {
		svc, _ := newFixedClockService("1234", start)

		if err := svc.VerifyToken("not-a-token"); !errors.Is(err, apperrors.ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		svc, _ := newFixedClockService("1234", start)
		other := NewService("1234", "other-secret", time.Hour)
		other.now = func() time.Time { return start }

		token, _, err := other.ValidatePIN("1234")
		if err != nil {
			t.Fatalf("ValidatePIN() returned unexpected error: %v", err)
		}

		if err := svc.VerifyToken(token); !errors.Is(err, apperrors.ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken for a foreign signature, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		// Issue against a clock two hours in the past; verification uses
		// the real clock, so the one-hour lifetime has lapsed.
		svc, _ := newFixedClockService("1234", time.Now().Add(-2*time.Hour))

		token, _, err := svc.ValidatePIN("1234")
		if err != nil {
			t.Fatalf("ValidatePIN() returned unexpected error: %v", err)
		}

		if err := svc.VerifyToken(token); !errors.Is(err, apperrors.ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken for an expired token, got %v", err)
		}
	})
}
