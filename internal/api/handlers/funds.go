package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/api/request"
	"fintrack/internal/api/response"
	"fintrack/internal/apperrors"
	"fintrack/internal/service"
	"fintrack/internal/validation"
)

// FundHandler handles HTTP requests for mutual fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// Funds handles GET requests to retrieve all mutual funds.
//
// Endpoint: GET /api/mutual-funds
// Response: 200 OK with array of MutualFundResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) Funds(w http.ResponseWriter, r *http.Request) {
	funds, err := h.fundService.GetAllFunds()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFunds.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, funds)
}

// Fund handles GET requests to retrieve a single mutual fund.
//
// Endpoint: GET /api/mutual-funds/{uuid}
// Response: 200 OK with MutualFundResponse
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) Fund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	fund, err := h.fundService.GetFund(fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFunds.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, fund)
}

// CreateFund handles POST requests to add a mutual fund position.
//
// Endpoint: POST /api/mutual-funds
// Request Body: CreateFundRequest
// Response: 201 Created with MutualFundResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.CreateFund(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create mutual fund", err.Error())
		return
	}

	response.RespondData(w, http.StatusCreated, fund)
}

// UpdateFund handles PUT requests to edit a mutual fund position.
//
// Endpoint: PUT /api/mutual-funds/{uuid}
// Request Body: UpdateFundRequest
// Response: 200 OK with updated MutualFundResponse
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) UpdateFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.UpdateFund(fundID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update mutual fund", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, fund)
}

// DeleteFund handles DELETE requests to remove a mutual fund position.
//
// Endpoint: DELETE /api/mutual-funds/{uuid}
// Response: 200 OK with confirmation message
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) DeleteFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	if err := h.fundService.DeleteFund(fundID); err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete mutual fund", err.Error())
		return
	}

	response.RespondMessage(w, http.StatusOK, "mutual fund deleted", nil)
}

// ApplyInstallment handles POST requests to record one SIP installment.
//
// Endpoint: POST /api/mutual-funds/{uuid}/installment
// Request Body: InstallmentRequest (amount, nav, purchase_date)
// Response: 200 OK with updated MutualFundResponse
// Error: 400 Bad Request if the amount or NAV is not positive
// Error: 404 Not Found if the fund does not exist
func (h *FundHandler) ApplyInstallment(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.InstallmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInstallment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.ApplyInstallment(fundID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrFundNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrInvalidInstallment):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidInstallment.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to apply installment", err.Error())
		}
		return
	}

	response.RespondMessage(w, http.StatusOK, "installment applied", fund)
}

// RefreshNAVs handles POST requests to refresh every fund's NAV.
// Always responds 200: per-fund outcomes carry the partial failures.
//
// Endpoint: POST /api/mutual-funds/refresh-nav
// Response: 200 OK with per-fund outcome report
// Error: 500 Internal Server Error only if the fund list cannot be loaded
func (h *FundHandler) RefreshNAVs(w http.ResponseWriter, r *http.Request) {
	outcomes, err := h.fundService.RefreshAllNAVs()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFunds.Error(), err.Error())
		return
	}

	response.RespondRefresh(w, "NAV refresh completed", outcomes)
}
