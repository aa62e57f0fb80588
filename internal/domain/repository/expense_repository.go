// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
)

// ErrExpenseNotFound is returned when an expense is not found.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseFilter narrows expense listings. Zero values mean "no constraint".
type ExpenseFilter struct {
	Category string
	From     *time.Time
	To       *time.Time
}

// ExpenseRepository defines the standard operations for expense persistence.
type ExpenseRepository interface {
	// FindByID retrieves a single expense by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// List retrieves expenses matching the filter, newest first.
	List(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Create persists a new expense entity to the storage.
	Create(ctx context.Context, expense *entity.Expense) error

	// Update modifies an existing expense entity in the storage.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
