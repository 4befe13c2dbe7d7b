package service_test

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/model"
	"fintrack/internal/testutil"
)

// TestExpenseService_CreateExpense tests expense creation rules.
//
// WHY: Amounts below one paisa would record meaningless rows, and both
// accepted date formats must land on the intended calendar day.
func TestExpenseService_CreateExpense(t *testing.T) {
	t.Run("creates an expense from a plain date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		expense, err := svc.CreateExpense(request.CreateExpenseRequest{
			Category: "Food",
			Amount:   250.50,
			Note:     "groceries",
			Date:     "2026-03-15",
		})
		if err != nil {
			t.Fatalf("CreateExpense() returned unexpected error: %v", err)
		}

		if expense.ID == "" {
			t.Error("Expected a generated expense ID")
		}
		if expense.Amount != 250.50 {
			t.Errorf("Expected amount 250.50, got %v", expense.Amount)
		}
		if got := expense.Date.Format("2006-01-02"); got != "2026-03-15" {
			t.Errorf("Expected date 2026-03-15, got %s", got)
		}

		stored, err := svc.GetExpense(expense.ID)
		if err != nil {
			t.Fatalf("GetExpense() returned unexpected error: %v", err)
		}
		if stored.Note != "groceries" {
			t.Errorf("Expected stored note, got %q", stored.Note)
		}
	})

	t.Run("rejects amounts below one paisa", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		for _, amount := range []float64{0, -10, 0.001} {
			_, err := svc.CreateExpense(request.CreateExpenseRequest{
				Category: "Food",
				Amount:   amount,
				Date:     "2026-03-15",
			})
			if !errors.Is(err, apperrors.ErrNegativeAmount) {
				t.Errorf("Amount %v: expected ErrNegativeAmount, got %v", amount, err)
			}
		}
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		_, err := svc.CreateExpense(request.CreateExpenseRequest{
			Category: "Food",
			Amount:   100,
			Date:     "15/03/2026",
		})
		if err == nil {
			t.Fatal("Expected error for unparseable date, got nil")
		}
	})
}

// TestExpenseService_UpdateExpense tests editing and deletion.
func TestExpenseService_UpdateExpense(t *testing.T) {
	t.Run("updates all editable fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)
		expense := testutil.NewExpense().WithCategory("Food").WithAmount(100).Build(t, db)

		updated, err := svc.UpdateExpense(expense.ID, request.UpdateExpenseRequest{
			Category: "Transport",
			Amount:   80,
			Note:     "metro",
			Date:     "2026-04-01",
		})
		if err != nil {
			t.Fatalf("UpdateExpense() returned unexpected error: %v", err)
		}

		if updated.Category != "Transport" || updated.Amount != 80 || updated.Note != "metro" {
			t.Errorf("Unexpected updated expense: %+v", updated)
		}
	})

	t.Run("returns not found for a missing expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		_, err := svc.UpdateExpense(testutil.MakeID(), request.UpdateExpenseRequest{
			Category: "Food",
			Amount:   100,
			Date:     "2026-04-01",
		})
		if !errors.Is(err, apperrors.ErrExpenseNotFound) {
			t.Errorf("Expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("deletes an expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)
		expense := testutil.NewExpense().Build(t, db)

		if err := svc.DeleteExpense(expense.ID); err != nil {
			t.Fatalf("DeleteExpense() returned unexpected error: %v", err)
		}

		if _, err := svc.GetExpense(expense.ID); !errors.Is(err, apperrors.ErrExpenseNotFound) {
			t.Errorf("Expected ErrExpenseNotFound after delete, got %v", err)
		}
	})
}

// TestExpenseService_GetExpenses tests filtering and paging.
//
// WHY: The listing backs the daily view, the monthly view, and category
// drill-downs; the filters must be independent and the totals must count
// matches, not page sizes.
func TestExpenseService_GetExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestExpenseService(t, db)

	march10 := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	march11 := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	april2 := time.Date(2026, time.April, 2, 18, 0, 0, 0, time.UTC)

	testutil.NewExpense().WithCategory("Food").WithAmount(100).WithDate(march10).Build(t, db)
	testutil.NewExpense().WithCategory("Food").WithAmount(50).WithDate(march11).Build(t, db)
	testutil.NewExpense().WithCategory("Transport").WithAmount(30).WithDate(march11).Build(t, db)
	testutil.NewExpense().WithCategory("Food").WithAmount(200).WithDate(april2).Build(t, db)

	t.Run("filters by calendar day", func(t *testing.T) {
		page, err := svc.GetExpenses(model.ExpenseFilter{Date: &march11, Limit: 50})
		if err != nil {
			t.Fatalf("GetExpenses() returned unexpected error: %v", err)
		}
		if page.Total != 2 {
			t.Errorf("Expected 2 expenses on March 11, got %d", page.Total)
		}
	})

	t.Run("filters by month", func(t *testing.T) {
		page, err := svc.GetExpenses(model.ExpenseFilter{Month: &march10, Limit: 50})
		if err != nil {
			t.Fatalf("GetExpenses() returned unexpected error: %v", err)
		}
		if page.Total != 3 {
			t.Errorf("Expected 3 expenses in March, got %d", page.Total)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		page, err := svc.GetExpenses(model.ExpenseFilter{Category: "Food", Limit: 50})
		if err != nil {
			t.Fatalf("GetExpenses() returned unexpected error: %v", err)
		}
		if page.Total != 3 {
			t.Errorf("Expected 3 Food expenses, got %d", page.Total)
		}
	})

	t.Run("pages with a total count of matches", func(t *testing.T) {
		page, err := svc.GetExpenses(model.ExpenseFilter{Limit: 2, Offset: 0})
		if err != nil {
			t.Fatalf("GetExpenses() returned unexpected error: %v", err)
		}
		if len(page.Expenses) != 2 {
			t.Errorf("Expected a page of 2, got %d", len(page.Expenses))
		}
		if page.Total != 4 {
			t.Errorf("Expected total 4 across pages, got %d", page.Total)
		}

		rest, err := svc.GetExpenses(model.ExpenseFilter{Limit: 2, Offset: 2})
		if err != nil {
			t.Fatalf("GetExpenses() returned unexpected error: %v", err)
		}
		if len(rest.Expenses) != 2 {
			t.Errorf("Expected 2 expenses on the second page, got %d", len(rest.Expenses))
		}
	})
}
