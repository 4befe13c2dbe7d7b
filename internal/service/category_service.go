package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// CategoryService handles expense-category business logic operations.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService with the provided repository dependency.
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// GetAllCategories retrieves all expense categories sorted by name.
func (s *CategoryService) GetAllCategories() ([]model.Category, error) {
	return s.categoryRepo.GetAllCategories()
}

// GetCategory retrieves a single category by ID.
func (s *CategoryService) GetCategory(categoryID string) (model.Category, error) {
	return s.categoryRepo.GetCategory(categoryID)
}

// CreateCategory adds an expense category. Names are unique; a duplicate
// returns ErrDuplicateCategory.
func (s *CategoryService) CreateCategory(req request.CreateCategoryRequest) (model.Category, error) {
	if req.MonthlyLimit < 0 {
		return model.Category{}, apperrors.ErrNegativeAmount
	}

	if _, err := s.categoryRepo.GetCategoryByName(req.Name); err == nil {
		return model.Category{}, apperrors.ErrDuplicateCategory
	} else if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		return model.Category{}, err
	}

	now := time.Now().UTC()
	category := model.Category{
		ID:           uuid.New().String(),
		Name:         req.Name,
		MonthlyLimit: req.MonthlyLimit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.categoryRepo.CreateCategory(&category); err != nil {
		return model.Category{}, err
	}

	return category, nil
}

// UpdateCategory edits a category. Renaming onto another category's name
// returns ErrDuplicateCategory.
func (s *CategoryService) UpdateCategory(categoryID string, req request.UpdateCategoryRequest) (model.Category, error) {
	if req.MonthlyLimit < 0 {
		return model.Category{}, apperrors.ErrNegativeAmount
	}

	category, err := s.categoryRepo.GetCategory(categoryID)
	if err != nil {
		return model.Category{}, err
	}

	if existing, err := s.categoryRepo.GetCategoryByName(req.Name); err == nil && existing.ID != categoryID {
		return model.Category{}, apperrors.ErrDuplicateCategory
	} else if err != nil && !errors.Is(err, apperrors.ErrCategoryNotFound) {
		return model.Category{}, err
	}

	category.Name = req.Name
	category.MonthlyLimit = req.MonthlyLimit
	category.UpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.UpdateCategory(&category); err != nil {
		return model.Category{}, err
	}

	return category, nil
}

// DeleteCategory removes a category. Existing expenses keep their category
// string; they are not reassigned.
func (s *CategoryService) DeleteCategory(categoryID string) error {
	return s.categoryRepo.DeleteCategory(categoryID)
}
