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

// CategoryHandler handles HTTP requests for expense category endpoints.
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler with the provided service dependency.
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Categories handles GET requests to retrieve all categories.
//
// Endpoint: GET /api/categories
// Response: 200 OK with array of Category
func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve categories", err.Error())
		return
	}

	response.RespondData(w, http.StatusOK, categories)
}

// CreateCategory handles POST requests to add a category.
//
// Endpoint: POST /api/categories
// Request Body: CreateCategoryRequest
// Response: 201 Created with Category
// Error: 400 Bad Request if validation fails
// Error: 409 Conflict on a duplicate name
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCategoryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCategory(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateCategory) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateCategory.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create category", err.Error())
		return
	}

	response.RespondData(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT requests to edit a category.
//
// Endpoint: PUT /api/categories/{uuid}
// Request Body: UpdateCategoryRequest
// Response: 200 OK with updated Category
// Error: 404 Not Found if the category does not exist
// Error: 409 Conflict on a duplicate name
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateCategoryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateCategory(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCategoryNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCategoryNotFound.Error(), "")
		case errors.Is(err, apperrors.ErrDuplicateCategory):
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateCategory.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update category", err.Error())
		}
		return
	}

	response.RespondData(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE requests to remove a category.
//
// Endpoint: DELETE /api/categories/{uuid}
// Response: 200 OK with confirmation message
// Error: 404 Not Found if the category does not exist
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "uuid")

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCategoryNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete category", err.Error())
		return
	}

	response.RespondMessage(w, http.StatusOK, "category deleted", nil)
}
