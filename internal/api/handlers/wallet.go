package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"fintrack/internal/api/request"
	"fintrack/internal/api/response"
	"fintrack/internal/apperrors"
	"fintrack/internal/service"
	"fintrack/internal/validation"
)

// WalletHandler handles HTTP requests for exchange and browser-wallet
// integration endpoints.
type WalletHandler struct {
	walletService *service.WalletService
}

// NewWalletHandler creates a new WalletHandler with the provided service dependency.
func NewWalletHandler(walletService *service.WalletService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// BinanceConfig handles GET requests to check whether Binance credentials
// are configured.
//
// Endpoint: GET /api/wallet-integration/binance-config
// Response: 200 OK with configured flag
func (h *WalletHandler) BinanceConfig(w http.ResponseWriter, r *http.Request) {
	response.RespondData(w, http.StatusOK, map[string]bool{
		"configured": h.walletService.BinanceConfigured(),
	})
}

// SaveCredentials handles PUT requests to store Binance API credentials.
// The secret is encrypted before storage.
//
// Endpoint: PUT /api/wallet-integration/credentials
// Request Body: SaveCredentialsRequest (api_key, api_secret)
// Response: 200 OK with confirmation message
// Error: 400 Bad Request if either field is missing
// Error: 500 Internal Server Error if no encryption key is configured
func (h *WalletHandler) SaveCredentials(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SaveCredentialsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSaveCredentials(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.walletService.SaveCredentials(req); err != nil {
		if errors.Is(err, apperrors.ErrCredentialsMissing) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCredentialsMissing.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store credentials", err.Error())
		return
	}

	response.RespondMessage(w, http.StatusOK, "credentials stored", nil)
}

// SyncBinance handles POST requests to pull the signed exchange balances
// into crypto holdings. Per-asset failures are reported in the results, not
// as transport errors.
//
// Endpoint: POST /api/wallet-integration/sync-binance
// Response: 200 OK with the synced holdings and per-asset outcomes
// Error: 400 Bad Request if credentials are not configured
// Error: 502 Bad Gateway if the exchange call fails
func (h *WalletHandler) SyncBinance(w http.ResponseWriter, r *http.Request) {
	synced, results, err := h.walletService.SyncBinance()
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCredentialsMissing):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCredentialsMissing.Error(), "")
		case errors.Is(err, apperrors.ErrQuoteUnavailable):
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToSyncBalances.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSyncBalances.Error(), err.Error())
		}
		return
	}

	response.RespondSync(w, fmt.Sprintf("synced %d holdings from binance", len(synced)), synced, results)
}

// SyncMetaMask handles POST requests to store client-reported wallet
// balances as crypto holdings.
//
// Endpoint: POST /api/wallet-integration/sync-metamask
// Request Body: SyncWalletRequest (wallet_address, holdings)
// Response: 200 OK with the synced holdings
// Error: 400 Bad Request if validation fails
func (h *WalletHandler) SyncMetaMask(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SyncWalletRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSyncWallet(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	synced, err := h.walletService.SyncWallet(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSyncBalances.Error(), err.Error())
		return
	}

	response.RespondMessage(w, http.StatusOK, "wallet sync completed", synced)
}

// Aggregated handles GET requests for the refreshed, grouped holdings view.
//
// Endpoint: GET /api/wallet-integration/aggregated
// Response: 200 OK with AggregatedHoldings
// Error: 500 Internal Server Error if retrieval fails
func (h *WalletHandler) Aggregated(w http.ResponseWriter, r *http.Request) {
	aggregated, err := h.walletService.Aggregated()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, aggregated)
}
