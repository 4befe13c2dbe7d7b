package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/api/handlers"
	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/model"
	"fintrack/internal/testutil"
)

// TestCryptoHandler_TokenPrice tests the spot price endpoint.
//
// WHY: The price lookup proxies an external exchange; an upstream outage
// must surface as 502, not as an internal error.
func TestCryptoHandler_TokenPrice(t *testing.T) {
	t.Run("returns the spot price for a symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		prices := testutil.NewMockCryptoSource().WithPrice("ETHUSDT", 3200)
		handler := handlers.NewCryptoHandler(testutil.NewTestCryptoService(t, db, prices))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/crypto/price/eth",
			map[string]string{"symbol": "eth"})
		w := httptest.NewRecorder()

		handler.TokenPrice(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		env := testutil.DecodeJSON[struct {
			Success bool `json:"success"`
			Data    struct {
				Symbol string  `json:"symbol"`
				Price  float64 `json:"price"`
			} `json:"data"`
		}](t, w)
		if env.Data.Symbol != "ETH" {
			t.Errorf("Expected upper-cased symbol ETH, got %q", env.Data.Symbol)
		}
		if env.Data.Price != 3200 {
			t.Errorf("Expected price 3200, got %v", env.Data.Price)
		}
	})

	t.Run("returns 502 when the quote source is down", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		prices := testutil.NewMockCryptoSource().WithError("BTCUSDT", apperrors.ErrQuoteUnavailable)
		handler := handlers.NewCryptoHandler(testutil.NewTestCryptoService(t, db, prices))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/crypto/price/btc",
			map[string]string{"symbol": "btc"})
		w := httptest.NewRecorder()

		handler.TokenPrice(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected status 502, got %d", w.Code)
		}
	})
}

// TestCryptoHandler_CreateHolding tests holding creation over HTTP.
func TestCryptoHandler_CreateHolding(t *testing.T) {
	t.Run("creates a holding and responds 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		prices := testutil.NewMockCryptoSource().WithPrice("BTCUSDT", 60000)
		handler := handlers.NewCryptoHandler(testutil.NewTestCryptoService(t, db, prices))

		body := request.CreateHoldingRequest{
			TokenSymbol:    "BTC",
			TokenName:      "Bitcoin",
			Quantity:       0.25,
			InvestedAmount: 10000,
			PurchaseDate:   "2026-01-10",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/crypto", body, nil)
		w := httptest.NewRecorder()

		handler.CreateHolding(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		env := testutil.DecodeJSON[struct {
			Success bool                        `json:"success"`
			Data    model.CryptoHoldingResponse `json:"data"`
		}](t, w)
		if env.Data.TokenSymbol != "BTC" {
			t.Errorf("Expected BTC, got %q", env.Data.TokenSymbol)
		}
		if env.Data.Network != "Ethereum" {
			t.Errorf("Expected default network Ethereum, got %q", env.Data.Network)
		}
	})

	t.Run("rejects a missing symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCryptoHandler(testutil.NewTestCryptoService(t, db, testutil.NewMockCryptoSource()))

		body := request.CreateHoldingRequest{TokenName: "Bitcoin", Quantity: 1}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/crypto", body, nil)
		w := httptest.NewRecorder()

		handler.CreateHolding(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestCryptoHandler_RefreshPrices tests the bulk refresh report.
func TestCryptoHandler_RefreshPrices(t *testing.T) {
	db := testutil.SetupTestDB(t)
	prices := testutil.NewMockCryptoSource().
		WithPrice("BTCUSDT", 61000).
		WithError("SCAMUSDT", apperrors.ErrQuoteUnavailable)
	handler := handlers.NewCryptoHandler(testutil.NewTestCryptoService(t, db, prices))

	testutil.NewHolding().WithSymbol("BTC", "Bitcoin").Build(t, db)
	testutil.NewHolding().WithSymbol("SCAM", "Scamcoin").Build(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/crypto/refresh-prices", nil)
	w := httptest.NewRecorder()

	handler.RefreshPrices(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 despite failures, got %d", w.Code)
	}

	report := testutil.DecodeJSON[struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Results []model.RefreshOutcome `json:"results"`
	}](t, w)

	if len(report.Results) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(report.Results))
	}

	bySymbol := map[string]bool{}
	for _, outcome := range report.Results {
		bySymbol[outcome.Identifier] = outcome.Success
	}
	if !bySymbol["BTC"] {
		t.Error("Expected BTC to refresh")
	}
	if bySymbol["SCAM"] {
		t.Error("Expected SCAM to fail")
	}
}
