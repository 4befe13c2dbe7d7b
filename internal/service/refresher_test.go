package service

import (
	"errors"
	"fmt"
	"testing"
)

// TestRefreshAll tests the concurrent bulk-refresh helper.
//
// WHY: Bulk refreshes must survive individual failures and report outcomes
// in the same order as the input holdings, or the client cannot tell which
// holding failed.
func TestRefreshAll(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		outcomes := refreshAll(5, func(i int) (string, error) {
			return fmt.Sprintf("item-%d", i), nil
		})

		if len(outcomes) != 5 {
			t.Fatalf("Expected 5 outcomes, got %d", len(outcomes))
		}
		for i, outcome := range outcomes {
			want := fmt.Sprintf("item-%d", i)
			if outcome.Identifier != want {
				t.Errorf("Outcome %d: expected identifier %q, got %q", i, want, outcome.Identifier)
			}
			if !outcome.Success {
				t.Errorf("Outcome %d: expected success", i)
			}
		}
	})

	t.Run("one failure does not abort the others", func(t *testing.T) {
		outcomes := refreshAll(4, func(i int) (string, error) {
			if i == 2 {
				return "bad", errors.New("boom")
			}
			return fmt.Sprintf("ok-%d", i), nil
		})

		failed := 0
		for i, outcome := range outcomes {
			if !outcome.Success {
				failed++
				if i != 2 {
					t.Errorf("Unexpected failure at index %d", i)
				}
				if outcome.Identifier != "bad" {
					t.Errorf("Expected failing identifier 'bad', got %q", outcome.Identifier)
				}
			}
		}
		if failed != 1 {
			t.Errorf("Expected exactly 1 failure, got %d", failed)
		}
	})

	t.Run("zero items yields empty report", func(t *testing.T) {
		outcomes := refreshAll(0, func(i int) (string, error) {
			t.Fatal("task should never run")
			return "", nil
		})

		if len(outcomes) != 0 {
			t.Errorf("Expected empty report, got %d outcomes", len(outcomes))
		}
	})
}
