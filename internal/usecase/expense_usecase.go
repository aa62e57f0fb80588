package usecase

import (
	"context"
	"time"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
)

// ExpenseInput carries an admin expense entry.
type ExpenseInput struct {
	Category    string    `json:"category" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description"`
	SpentAt     time.Time `json:"spent_at"`
}

// ExpenseUsecase manages operating expenses.
type ExpenseUsecase interface {
	// CreateExpense records a new expense against the acting admin.
	CreateExpense(ctx context.Context, adminID uuid.UUID, input *ExpenseInput) (*entity.Expense, error)

	// ListExpenses retrieves expenses matching the filter.
	ListExpenses(ctx context.Context, filter repository.ExpenseFilter) ([]*entity.Expense, error)

	// UpdateExpense modifies an existing expense.
	UpdateExpense(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}
