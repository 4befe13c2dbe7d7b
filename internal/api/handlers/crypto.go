package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/api/request"
	"fintrack/internal/api/response"
	"fintrack/internal/apperrors"
	"fintrack/internal/service"
	"fintrack/internal/validation"
)

// CryptoHandler handles HTTP requests for crypto holding endpoints.
type CryptoHandler struct {
	cryptoService *service.CryptoService
}

// NewCryptoHandler creates a new CryptoHandler with the provided service dependency.
func NewCryptoHandler(cryptoService *service.CryptoService) *CryptoHandler {
	return &CryptoHandler{
		cryptoService: cryptoService,
	}
}

// Holdings handles GET requests to retrieve all crypto holdings.
//
// Endpoint: GET /api/crypto
// Response: 200 OK with array of CryptoHoldingResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *CryptoHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.cryptoService.GetAllHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, holdings)
}

// Holding handles GET requests to retrieve a single crypto holding.
//
// Endpoint: GET /api/crypto/{uuid}
// Response: 200 OK with CryptoHoldingResponse
// Error: 404 Not Found if the holding does not exist
func (h *CryptoHandler) Holding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	holding, err := h.cryptoService.GetHolding(holdingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, holding)
}

// CreateHolding handles POST requests to add a crypto holding.
//
// Endpoint: POST /api/crypto
// Request Body: CreateHoldingRequest
// Response: 201 Created with CryptoHoldingResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *CryptoHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.cryptoService.CreateHolding(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create crypto holding", err.Error())
		return
	}

	response.RespondData(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests to edit a crypto holding.
//
// Endpoint: PUT /api/crypto/{uuid}
// Request Body: UpdateHoldingRequest
// Response: 200 OK with updated CryptoHoldingResponse
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the holding does not exist
func (h *CryptoHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.cryptoService.UpdateHolding(holdingID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update crypto holding", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests to remove a crypto holding.
//
// Endpoint: DELETE /api/crypto/{uuid}
// Response: 200 OK with confirmation message
// Error: 404 Not Found if the holding does not exist
func (h *CryptoHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	if err := h.cryptoService.DeleteHolding(holdingID); err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete crypto holding", err.Error())
		return
	}

	response.RespondMessage(w, http.StatusOK, "crypto holding deleted", nil)
}

// TokenPrice handles GET requests for an ad-hoc token price lookup.
// Used by the add-holding form before any holding exists.
//
// Endpoint: GET /api/crypto/price/{symbol}
// Response: 200 OK with symbol and price
// Error: 400 Bad Request if the symbol is empty
// Error: 502 Bad Gateway if the quote source is unavailable
func (h *CryptoHandler) TokenPrice(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))
	if symbol == "" {
		response.RespondError(w, http.StatusBadRequest, "token symbol is required", "")
		return
	}

	price, err := h.cryptoService.TokenPrice(symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrQuoteUnavailable) {
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrQuoteUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to fetch token price", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, map[string]any{
		"symbol": symbol,
		"price":  price,
	})
}

// RefreshPrices handles POST requests to refresh every holding's price.
// Always responds 200: per-holding outcomes carry the partial failures.
//
// Endpoint: POST /api/crypto/refresh-prices
// Response: 200 OK with per-holding outcome report
// Error: 500 Internal Server Error only if the holding list cannot be loaded
func (h *CryptoHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	outcomes, err := h.cryptoService.RefreshAllPrices()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondRefresh(w, "price refresh completed", outcomes)
}
