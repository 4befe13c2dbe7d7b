package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/api/request"
	"fintrack/internal/apperrors"
	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// ExpenseService handles expense business logic operations.
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService with the provided repository dependency.
func NewExpenseService(expenseRepo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// GetExpenses retrieves a filtered, paged expense listing, newest first.
func (s *ExpenseService) GetExpenses(filter model.ExpenseFilter) (model.ExpensePage, error) {
	return s.expenseRepo.GetExpenses(filter)
}

// GetExpense retrieves a single expense by ID.
func (s *ExpenseService) GetExpense(expenseID string) (model.Expense, error) {
	return s.expenseRepo.GetExpense(expenseID)
}

// CreateExpense records a new expense. The amount must be positive.
func (s *ExpenseService) CreateExpense(req request.CreateExpenseRequest) (model.Expense, error) {
	if req.Amount < 0.01 {
		return model.Expense{}, apperrors.ErrNegativeAmount
	}

	date, err := repository.ParseTime(req.Date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid expense date: %w", err)
	}

	now := time.Now().UTC()
	expense := model.Expense{
		ID:        uuid.New().String(),
		Category:  req.Category,
		Amount:    req.Amount,
		Note:      req.Note,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.expenseRepo.CreateExpense(&expense); err != nil {
		return model.Expense{}, err
	}

	return expense, nil
}

// UpdateExpense edits an expense.
func (s *ExpenseService) UpdateExpense(expenseID string, req request.UpdateExpenseRequest) (model.Expense, error) {
	if req.Amount < 0.01 {
		return model.Expense{}, apperrors.ErrNegativeAmount
	}

	expense, err := s.expenseRepo.GetExpense(expenseID)
	if err != nil {
		return model.Expense{}, err
	}

	date, err := repository.ParseTime(req.Date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid expense date: %w", err)
	}

	expense.Category = req.Category
	expense.Amount = req.Amount
	expense.Note = req.Note
	expense.Date = date
	expense.UpdatedAt = time.Now().UTC()

	if err := s.expenseRepo.UpdateExpense(&expense); err != nil {
		return model.Expense{}, err
	}

	return expense, nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(expenseID string) error {
	return s.expenseRepo.DeleteExpense(expenseID)
}
