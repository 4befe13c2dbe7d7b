package service_test

import (
	"errors"
	"testing"

	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/testutil"
)

// TestCategoryService_CreateCategory tests the category name uniqueness rule.
//
// WHY: Categories are matched by name string on expenses, so two categories
// with the same name would split one budget across indistinguishable rows.
func TestCategoryService_CreateCategory(t *testing.T) {
	t.Run("creates a category with a monthly limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCategoryService(t, db)

		category, err := svc.CreateCategory(request.CreateCategoryRequest{Name: "Food", MonthlyLimit: 5000})
		if err != nil {
			t.Fatalf("CreateCategory() returned unexpected error: %v", err)
		}
		if category.Name != "Food" || category.MonthlyLimit != 5000 {
			t.Errorf("Unexpected category: %+v", category)
		}
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCategoryService(t, db)
		testutil.CreateCategory(t, db, "Food", 5000)

		_, err := svc.CreateCategory(request.CreateCategoryRequest{Name: "Food", MonthlyLimit: 1000})
		if !errors.Is(err, apperrors.ErrDuplicateCategory) {
			t.Errorf("Expected ErrDuplicateCategory, got %v", err)
		}
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCategoryService(t, db)

		_, err := svc.CreateCategory(request.CreateCategoryRequest{Name: "Food", MonthlyLimit: -1})
		if !errors.Is(err, apperrors.ErrNegativeAmount) {
			t.Errorf("Expected ErrNegativeAmount, got %v", err)
		}
	})
}

// TestCategoryService_UpdateCategory tests renames against the uniqueness rule.
func TestCategoryService_UpdateCategory(t *testing.T) {
	t.Run("allows saving a category under its own name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCategoryService(t, db)
		category := testutil.CreateCategory(t, db, "Food", 5000)

		updated, err := svc.UpdateCategory(category.ID, request.UpdateCategoryRequest{Name: "Food", MonthlyLimit: 6000})
		if err != nil {
			t.Fatalf("UpdateCategory() returned unexpected error: %v", err)
		}
		if updated.MonthlyLimit != 6000 {
			t.Errorf("Expected limit 6000, got %v", updated.MonthlyLimit)
		}
	})

	t.Run("rejects renaming onto another category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCategoryService(t, db)
		testutil.CreateCategory(t, db, "Food", 5000)
		transport := testutil.CreateCategory(t, db, "Transport", 2000)

		_, err := svc.UpdateCategory(transport.ID, request.UpdateCategoryRequest{Name: "Food", MonthlyLimit: 2000})
		if !errors.Is(err, apperrors.ErrDuplicateCategory) {
			t.Errorf("Expected ErrDuplicateCategory, got %v", err)
		}
	})

	t.Run("returns not found for a missing category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCategoryService(t, db)

		_, err := svc.UpdateCategory(testutil.MakeID(), request.UpdateCategoryRequest{Name: "Food", MonthlyLimit: 100})
		if !errors.Is(err, apperrors.ErrCategoryNotFound) {
			t.Errorf("Expected ErrCategoryNotFound, got %v", err)
		}
	})
}

// TestCategoryService_DeleteCategory tests that deletion leaves expenses alone.
func TestCategoryService_DeleteCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestCategoryService(t, db)
	expenseSvc := testutil.NewTestExpenseService(t, db)

	category := testutil.CreateCategory(t, db, "Food", 5000)
	expense := testutil.NewExpense().WithCategory("Food").Build(t, db)

	if err := svc.DeleteCategory(category.ID); err != nil {
		t.Fatalf("DeleteCategory() returned unexpected error: %v", err)
	}

	if _, err := svc.GetCategory(category.ID); !errors.Is(err, apperrors.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound after delete, got %v", err)
	}

	// The expense keeps its category string.
	stored, err := expenseSvc.GetExpense(expense.ID)
	if err != nil {
		t.Fatalf("GetExpense() returned unexpected error: %v", err)
	}
	if stored.Category != "Food" {
		t.Errorf("Expected expense to keep its category, got %q", stored.Category)
	}
}
