package impl

import (
	"context"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

// ExpenseServiceParams holds dependencies for ExpenseService, injected by Fx.
type ExpenseServiceParams struct {
	fx.In

	ExpenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service instance
func NewExpenseService(params ExpenseServiceParams) usecase.ExpenseUsecase {
	return &expenseService{
		expenseRepo: params.ExpenseRepo,
	}
}

// CreateExpense records a new expense against the acting admin.
func (s *expenseService) CreateExpense(ctx context.Context, adminID uuid.UUID, input *usecase.ExpenseInput) (*entity.Expense, error) {
	spentAt := input.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now()
	}

	expense := &entity.Expense{
		ID:          uuid.New(),
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
		SpentAt:     spentAt,
		RecordedBy:  adminID,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, errors.Wrap(err, "failed to create expense")
	}

	return expense, nil
}

// ListExpenses retrieves expenses matching the filter.
func (s *expenseService) ListExpenses(ctx context.Context, filter repository.ExpenseFilter) ([]*entity.Expense, error) {
	expenses, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return expenses, nil
}

// UpdateExpense modifies an existing expense.
func (s *expenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *usecase.ExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load expense")
	}

	expense.Category = input.Category
	expense.Amount = input.Amount
	expense.Description = input.Description
	if !input.SpentAt.IsZero() {
		expense.SpentAt = input.SpentAt
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, errors.Wrap(err, "failed to update expense")
	}

	return expense, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete expense")
	}

	return nil
}
