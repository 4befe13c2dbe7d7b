package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/api/handlers"
	"fintrack/internal/model"
	"fintrack/internal/quote"
	"fintrack/internal/testutil"
)

// TestWalletHandler_SyncBinance tests the exchange sync endpoint.
//
// WHY: Like the bulk refreshes, the sync reports per-asset outcomes in the
// body with HTTP 200; a single unpriceable asset must show up as a failed
// result, not hide behind a successful-looking response.
func TestWalletHandler_SyncBinance(t *testing.T) {
	t.Run("reports per-asset outcomes on partial failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		balances := &testutil.MockBalanceSource{
			Balances: []quote.SpotBalance{
				{Asset: "BTC", Free: 0.5},
				{Asset: "DOGE", Free: 10},
			},
		}
		prices := testutil.NewMockCryptoSource().WithPrice("BTCUSDT", 43000)
		handler := handlers.NewWalletHandler(testutil.NewTestWalletService(t, db, balances, prices))

		req := httptest.NewRequest(http.MethodPost, "/api/wallet-integration/sync-binance", nil)
		w := httptest.NewRecorder()

		handler.SyncBinance(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200 on partial failure, got %d: %s", w.Code, w.Body.String())
		}

		report := testutil.DecodeJSON[struct {
			Success bool                          `json:"success"`
			Message string                        `json:"message"`
			Data    []model.CryptoHoldingResponse `json:"data"`
			Results []model.RefreshOutcome        `json:"results"`
		}](t, w)

		if !report.Success {
			t.Error("Expected success envelope")
		}
		if len(report.Data) != 2 {
			t.Errorf("Expected 2 synced holdings, got %d", len(report.Data))
		}
		if len(report.Results) != 2 {
			t.Fatalf("Expected 2 results, got %d", len(report.Results))
		}
		byAsset := map[string]bool{}
		for _, outcome := range report.Results {
			byAsset[outcome.Identifier] = outcome.Success
		}
		if !byAsset["BTC"] {
			t.Error("Expected BTC result to succeed")
		}
		if success, ok := byAsset["DOGE"]; !ok || success {
			t.Errorf("Expected DOGE result to fail, got %v (present %v)", success, ok)
		}
	})
}
