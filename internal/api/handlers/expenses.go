package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/api/request"
	"fintrack/internal/api/response"
	"fintrack/internal/apperrors"
	"fintrack/internal/model"
	"fintrack/internal/service"
	"fintrack/internal/validation"
)

// defaultExpenseLimit caps unpaged expense listings.
const defaultExpenseLimit = 50

// ExpenseHandler handles HTTP requests for expense endpoints.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler with the provided service dependency.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// Expenses handles GET requests for a filtered, paged expense listing.
//
// Endpoint: GET /api/expenses?date=2025-01-15&month=2025-01&category=Food&limit=50&offset=0
// Response: 200 OK with ExpensePage
// Error: 400 Bad Request on a malformed date or month filter
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	filter, err := parseExpenseFilter(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	page, err := h.expenseService.GetExpenses(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpenses.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, page)
}

// Expense handles GET requests to retrieve a single expense.
//
// Endpoint: GET /api/expenses/{uuid}
// Response: 200 OK with Expense
// Error: 404 Not Found if the expense does not exist
func (h *ExpenseHandler) Expense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	expense, err := h.expenseService.GetExpense(expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpenses.Error(), err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, expense)
}

// CreateExpense handles POST requests to record an expense.
//
// Endpoint: POST /api/expenses
// Request Body: CreateExpenseRequest
// Response: 201 Created with Expense
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create expense", err.Error())
		return
	}

	response.RespondData(w, http.StatusCreated, expense)
}

// UpdateExpense handles PUT requests to edit an expense.
//
// Endpoint: PUT /api/expenses/{uuid}
// Request Body: UpdateExpenseRequest
// Response: 200 OK with updated Expense
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the expense does not exist
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(expenseID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update expense", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, expense)
}

// DeleteExpense handles DELETE requests to remove an expense.
//
// Endpoint: DELETE /api/expenses/{uuid}
// Response: 200 OK with confirmation message
// Error: 404 Not Found if the expense does not exist
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	if err := h.expenseService.DeleteExpense(expenseID); err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete expense", err.Error())
		return
	}

	response.RespondMessage(w, http.StatusOK, "expense deleted", nil)
}

// parseExpenseFilter builds an ExpenseFilter from query parameters.
// date is "2006-01-02", month is "2006-01"; they are mutually exclusive
// with date taking precedence.
func parseExpenseFilter(r *http.Request) (model.ExpenseFilter, error) {
	filter := model.ExpenseFilter{
		Category: r.URL.Query().Get("category"),
		Limit:    defaultExpenseLimit,
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return model.ExpenseFilter{}, err
		}
		filter.Date = &day
	} else if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := time.Parse("2006-01", raw)
		if err != nil {
			return model.ExpenseFilter{}, err
		}
		filter.Month = &month
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return model.ExpenseFilter{}, errors.New("limit must be a positive integer")
		}
		filter.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return model.ExpenseFilter{}, errors.New("offset must be a non-negative integer")
		}
		filter.Offset = offset
	}

	return filter, nil
}
