package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/api/handlers"
	"fintrack/internal/api/request"
	"fintrack/internal/model"
	"fintrack/internal/testutil"
)

// TestExpenseHandler_Expenses tests listing with query filters.
//
// WHY: The filter grammar is the contract with the daily and monthly views:
// date beats month, malformed values are a 400, and the page metadata must
// reflect the full match count.
func TestExpenseHandler_Expenses(t *testing.T) {
	t.Run("lists expenses for a specific day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewExpenseHandler(testutil.NewTestExpenseService(t, db))

		day := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
		testutil.NewExpense().WithAmount(120).WithDate(day).Build(t, db)
		testutil.NewExpense().WithAmount(80).WithDate(day.AddDate(0, 0, 1)).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/expenses?date=2026-03-05", nil)
		w := httptest.NewRecorder()

		handler.Expenses(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		env := testutil.DecodeJSON[struct {
			Success bool              `json:"success"`
			Data    model.ExpensePage `json:"data"`
		}](t, w)
		if env.Data.Total != 1 {
			t.Errorf("Expected 1 expense on the day, got %d", env.Data.Total)
		}
		if len(env.Data.Expenses) != 1 || env.Data.Expenses[0].Amount != 120 {
			t.Errorf("Unexpected page contents: %+v", env.Data.Expenses)
		}
	})

	t.Run("rejects a malformed date filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewExpenseHandler(testutil.NewTestExpenseService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/expenses?date=05-03-2026", nil)
		w := httptest.NewRecorder()

		handler.Expenses(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("rejects a malformed month filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewExpenseHandler(testutil.NewTestExpenseService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/expenses?month=March", nil)
		w := httptest.NewRecorder()

		handler.Expenses(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("rejects non-positive paging values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewExpenseHandler(testutil.NewTestExpenseService(t, db))

		for _, query := range []string{"limit=0", "limit=abc", "offset=-1"} {
			req := httptest.NewRequest(http.MethodGet, "/api/expenses?"+query, nil)
			w := httptest.NewRecorder()

			handler.Expenses(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("%s: expected status 400, got %d", query, w.Code)
			}
		}
	})

	t.Run("date filter wins over month filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewExpenseHandler(testutil.NewTestExpenseService(t, db))

		march5 := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
		testutil.NewExpense().WithAmount(120).WithDate(march5).Build(t, db)
		testutil.NewExpense().WithAmount(80).WithDate(march5.AddDate(0, 0, 10)).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/expenses?date=2026-03-05&month=2026-03", nil)
		w := httptest.NewRecorder()

		handler.Expenses(w, req)

		env := testutil.DecodeJSON[struct {
			Success bool              `json:"success"`
			Data    model.ExpensePage `json:"data"`
		}](t, w)
		if env.Data.Total != 1 {
			t.Errorf("Expected the day filter to win, got %d matches", env.Data.Total)
		}
	})
}

// TestExpenseHandler_CreateExpense tests expense creation over HTTP.
func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("creates an expense and responds 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewExpenseHandler(testutil.NewTestExpenseService(t, db))

		body := request.CreateExpenseRequest{Category: "Food", Amount: 250, Date: "2026-03-05"}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/expenses", body, nil)
		w := httptest.NewRecorder()

		handler.CreateExpense(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		env := testutil.DecodeJSON[struct {
			Success bool          `json:"success"`
			Data    model.Expense `json:"data"`
		}](t, w)
		if env.Data.Amount != 250 || env.Data.Category != "Food" {
			t.Errorf("Unexpected created expense: %+v", env.Data)
		}
	})

	t.Run("rejects a zero amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewExpenseHandler(testutil.NewTestExpenseService(t, db))

		body := request.CreateExpenseRequest{Category: "Food", Amount: 0, Date: "2026-03-05"}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/expenses", body, nil)
		w := httptest.NewRecorder()

		handler.CreateExpense(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestExpenseHandler_Expense tests single-expense retrieval.
func TestExpenseHandler_Expense(t *testing.T) {
	t.Run("returns 404 for a missing expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewExpenseHandler(testutil.NewTestExpenseService(t, db))

		missing := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/expenses/"+missing,
			map[string]string{"uuid": missing})
		w := httptest.NewRecorder()

		handler.Expense(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
