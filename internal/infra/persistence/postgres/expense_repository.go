// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// expenseRepository implements the repository.ExpenseRepository interface using GORM.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// FindByID retrieves a single expense by its unique ID.
func (repo *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseM model.ExpenseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&expenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExpenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find expense by ID")
	}

	return toExpenseDomain(&expenseM), nil
}

// List retrieves expenses matching the filter, newest first.
func (repo *expenseRepository) List(ctx context.Context, filter repository.ExpenseFilter) ([]*entity.Expense, error) {
	query := repo.db.WithContext(ctx).Model(&model.ExpenseModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.From != nil {
		query = query.Where("spent_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("spent_at <= ?", *filter.To)
	}

	var expenseModels []*model.ExpenseModel
	if err := query.Order("spent_at DESC").Find(&expenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for _, expenseM := range expenseModels {
		expenses = append(expenses, toExpenseDomain(expenseM))
	}

	return expenses, nil
}

// Create persists a new expense entity to the database.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := fromExpenseDomain(expense)

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required expense information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt
	expense.UpdatedAt = expenseM.UpdatedAt

	return nil
}

// Update modifies an existing expense entity in the database.
func (repo *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseM := fromExpenseDomain(expense)

	result := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(expenseM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update expense")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// Delete removes an expense by its ID.
func (repo *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExpenseModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete expense")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toExpenseDomain converts a GORM ExpenseModel to a domain Expense entity.
func toExpenseDomain(data *model.ExpenseModel) *entity.Expense {
	if data == nil {
		return nil
	}

	return &entity.Expense{
		ID:          data.ID,
		Category:    data.Category,
		Amount:      data.Amount,
		Description: data.Description,
		SpentAt:     data.SpentAt,
		RecordedBy:  data.RecordedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromExpenseDomain converts a domain Expense entity to a GORM ExpenseModel for persistence.
func fromExpenseDomain(data *entity.Expense) *model.ExpenseModel {
	if data == nil {
		return nil
	}

	return &model.ExpenseModel{
		ID:          data.ID,
		Category:    data.Category,
		Amount:      data.Amount,
		Description: data.Description,
		SpentAt:     data.SpentAt,
		RecordedBy:  data.RecordedBy,
	}
}
