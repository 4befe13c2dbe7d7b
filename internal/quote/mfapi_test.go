package quote

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/apperrors"
)

// TestMFAPIClient_LatestNAV tests the mutual fund NAV adapter.
//
// WHY: mfapi.in wraps the NAV in a data array of string-encoded records; an
// empty array or a zero NAV must be treated as a failed fetch, never as a
// zero-valued fund.
func TestMFAPIClient_LatestNAV(t *testing.T) {
	t.Run("parses the newest NAV record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/mf/120503" {
				t.Errorf("Expected path /mf/120503, got %q", r.URL.Path)
			}
			w.Write([]byte(`{
				"meta": {"scheme_name": "Axis Bluechip Fund"},
				"data": [
					{"date": "30-08-2026", "nav": "84.2300"},
					{"date": "29-08-2026", "nav": "83.9100"}
				]
			}`))
		}))
		defer server.Close()

		client := NewMFAPIClient(time.Second).WithBaseURL(server.URL)

		nav, err := client.LatestNAV("120503")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if nav != 84.23 {
			t.Errorf("Expected 84.23, got %v", nav)
		}
	})

	t.Run("empty data array is quote unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"meta": {}, "data": []}`))
		}))
		defer server.Close()

		client := NewMFAPIClient(time.Second).WithBaseURL(server.URL)

		_, err := client.LatestNAV("999999")
		if !errors.Is(err, apperrors.ErrQuoteUnavailable) {
			t.Errorf("Expected ErrQuoteUnavailable, got %v", err)
		}
	})

	t.Run("zero NAV is quote unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"data": [{"date": "30-08-2026", "nav": "0.0000"}]}`))
		}))
		defer server.Close()

		client := NewMFAPIClient(time.Second).WithBaseURL(server.URL)

		_, err := client.LatestNAV("120503")
		if !errors.Is(err, apperrors.ErrQuoteUnavailable) {
			t.Errorf("Expected ErrQuoteUnavailable for zero NAV, got %v", err)
		}
	})

	t.Run("non-2xx is quote unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewMFAPIClient(time.Second).WithBaseURL(server.URL)

		_, err := client.LatestNAV("120503")
		if !errors.Is(err, apperrors.ErrQuoteUnavailable) {
			t.Errorf("Expected ErrQuoteUnavailable, got %v", err)
		}
	})
}
