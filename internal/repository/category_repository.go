package repository

import (
	"database/sql"
	"fmt"

	"fintrack/internal/apperrors"
	"fintrack/internal/model"
)

// CategoryRepository provides data access methods for the category table.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository with the provided database connection.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `id, name, monthly_limit, created_at, updated_at`

func scanCategory(scanner interface{ Scan(...any) error }) (model.Category, error) {
	var c model.Category
	var createdAt, updatedAt string

	err := scanner.Scan(&c.ID, &c.Name, &c.MonthlyLimit, &createdAt, &updatedAt)
	if err != nil {
		return model.Category{}, err
	}

	if c.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Category{}, err
	}
	if c.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Category{}, err
	}

	return c, nil
}

// GetAllCategories retrieves all categories ordered by name.
func (r *CategoryRepository) GetAllCategories() ([]model.Category, error) {
	rows, err := r.db.Query(`SELECT ` + categoryColumns + ` FROM category ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetCategory retrieves a single category by ID.
func (r *CategoryRepository) GetCategory(categoryID string) (model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM category WHERE id = ?`

	category, err := scanCategory(r.db.QueryRow(query, categoryID))
	if err == sql.ErrNoRows {
		return model.Category{}, apperrors.ErrCategoryNotFound
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// GetCategoryByName retrieves a single category by its unique name.
func (r *CategoryRepository) GetCategoryByName(name string) (model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM category WHERE name = ?`

	category, err := scanCategory(r.db.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return model.Category{}, apperrors.ErrCategoryNotFound
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// CreateCategory inserts a new category record.
func (r *CategoryRepository) CreateCategory(category *model.Category) error {
	query := `INSERT INTO category (` + categoryColumns + `) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		category.ID,
		category.Name,
		category.MonthlyLimit,
		FormatTime(category.CreatedAt),
		FormatTime(category.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// UpdateCategory writes the mutable state of a category back by ID.
func (r *CategoryRepository) UpdateCategory(category *model.Category) error {
	query := `UPDATE category SET name = ?, monthly_limit = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.Exec(query,
		category.Name,
		category.MonthlyLimit,
		FormatTime(category.UpdatedAt),
		category.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return requireRow(result, apperrors.ErrCategoryNotFound)
}

// DeleteCategory removes a category by ID.
func (r *CategoryRepository) DeleteCategory(categoryID string) error {
	result, err := r.db.Exec(`DELETE FROM category WHERE id = ?`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return requireRow(result, apperrors.ErrCategoryNotFound)
}
