package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/apperrors"
	"fintrack/internal/model"
)

// ExpenseRepository provides data access methods for the expense table.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository with the provided database connection.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `id, category, amount, note, date, created_at, updated_at`

func scanExpense(scanner interface{ Scan(...any) error }) (model.Expense, error) {
	var e model.Expense
	var date, createdAt, updatedAt string

	err := scanner.Scan(&e.ID, &e.Category, &e.Amount, &e.Note, &date, &createdAt, &updatedAt)
	if err != nil {
		return model.Expense{}, err
	}

	if e.Date, err = ParseTime(date); err != nil {
		return model.Expense{}, err
	}
	if e.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Expense{}, err
	}
	if e.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Expense{}, err
	}

	return e, nil
}

// filterClause builds the WHERE clause and args for an expense filter.
func filterClause(filter model.ExpenseFilter) (string, []any) {
	clause := ` WHERE 1=1`
	args := []any{}

	if filter.Date != nil {
		start, end := DayBounds(*filter.Date)
		clause += ` AND date >= ? AND date <= ?`
		args = append(args, FormatTime(start), FormatTime(end))
	}
	if filter.Month != nil {
		start, end := MonthBounds(*filter.Month)
		clause += ` AND date >= ? AND date <= ?`
		args = append(args, FormatTime(start), FormatTime(end))
	}
	if filter.Category != "" {
		clause += ` AND category = ?`
		args = append(args, filter.Category)
	}

	return clause, args
}

// GetExpenses retrieves a filtered, paged expense listing, newest first,
// along with the unpaged total for the filter.
func (r *ExpenseRepository) GetExpenses(filter model.ExpenseFilter) (model.ExpensePage, error) {
	clause, args := filterClause(filter)

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM expense`+clause, args...).Scan(&total); err != nil {
		return model.ExpensePage{}, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `SELECT ` + expenseColumns + ` FROM expense` + clause + ` ORDER BY date DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return model.ExpensePage{}, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return model.ExpensePage{}, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err = rows.Err(); err != nil {
		return model.ExpensePage{}, fmt.Errorf("error iterating expenses: %w", err)
	}

	return model.ExpensePage{
		Expenses: expenses,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}, nil
}

// GetExpense retrieves a single expense by ID.
func (r *ExpenseRepository) GetExpense(expenseID string) (model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense WHERE id = ?`

	expense, err := scanExpense(r.db.QueryRow(query, expenseID))
	if err == sql.ErrNoRows {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// CreateExpense inserts a new expense record.
func (r *ExpenseRepository) CreateExpense(expense *model.Expense) error {
	query := `INSERT INTO expense (` + expenseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		expense.ID,
		expense.Category,
		expense.Amount,
		expense.Note,
		FormatTime(expense.Date),
		FormatTime(expense.CreatedAt),
		FormatTime(expense.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// UpdateExpense writes the mutable state of an expense back by ID.
func (r *ExpenseRepository) UpdateExpense(expense *model.Expense) error {
	query := `UPDATE expense SET category = ?, amount = ?, note = ?, date = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.Exec(query,
		expense.Category,
		expense.Amount,
		expense.Note,
		FormatTime(expense.Date),
		FormatTime(expense.UpdatedAt),
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	return requireRow(result, apperrors.ErrExpenseNotFound)
}

// DeleteExpense removes an expense by ID.
func (r *ExpenseRepository) DeleteExpense(expenseID string) error {
	result, err := r.db.Exec(`DELETE FROM expense WHERE id = ?`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return requireRow(result, apperrors.ErrExpenseNotFound)
}

// SumByDateRange totals expense amounts within [start, end].
func (r *ExpenseRepository) SumByDateRange(start, end time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM expense WHERE date >= ? AND date <= ?`,
		FormatTime(start), FormatTime(end),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return total, nil
}

// CategoryTotalsByDateRange totals expense amounts per category within [start, end].
func (r *ExpenseRepository) CategoryTotalsByDateRange(start, end time.Time) (map[string]float64, error) {
	rows, err := r.db.Query(
		`SELECT category, SUM(amount) FROM expense WHERE date >= ? AND date <= ? GROUP BY category`,
		FormatTime(start), FormatTime(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	totals := map[string]float64{}
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals[category] = amount
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}

	return totals, nil
}

// DailyTotalsByDateRange totals expense amounts per calendar day within
// [start, end], keyed by "2006-01-02".
func (r *ExpenseRepository) DailyTotalsByDateRange(start, end time.Time) (map[string]float64, error) {
	rows, err := r.db.Query(
		`SELECT substr(date, 1, 10), SUM(amount) FROM expense WHERE date >= ? AND date <= ? GROUP BY substr(date, 1, 10)`,
		FormatTime(start), FormatTime(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily totals: %w", err)
	}
	defer rows.Close()

	totals := map[string]float64{}
	for rows.Next() {
		var day string
		var amount float64
		if err := rows.Scan(&day, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		totals[day] = amount
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily totals: %w", err)
	}

	return totals, nil
}

// DayBounds returns the inclusive start and end of the calendar day containing t, in UTC.
func DayBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// MonthBounds returns the inclusive start and end of the calendar month containing t, in UTC.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
