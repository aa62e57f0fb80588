// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentFilter narrows payment listings. Zero values mean "no constraint".
type PaymentFilter struct {
	ResidentID *uuid.UUID
	Status     entity.PaymentStatus
	Month      string // "January 2026" style label
}

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// FindByID retrieves a single payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByResident retrieves all payments for a resident, newest first.
	FindByResident(ctx context.Context, residentID uuid.UUID) ([]*entity.Payment, error)

	// List retrieves payments matching the filter, newest first.
	List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)

	// CoveredMonths returns every month label already covered by the
	// resident's recorded payments, across all rows.
	CoveredMonths(ctx context.Context, residentID uuid.UUID) ([]string, error)

	// Create persists a new payment entity to the storage.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update modifies an existing payment entity in the storage.
	Update(ctx context.Context, payment *entity.Payment) error

	// Delete removes a payment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
