// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
)

// ErrComplaintNotFound is returned when a complaint is not found.
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintFilter narrows complaint listings. Zero values mean "no constraint".
type ComplaintFilter struct {
	ResidentID *uuid.UUID
	Status     entity.ComplaintStatus
	Category   string
}

// ComplaintRepository defines the standard operations for complaint persistence.
type ComplaintRepository interface {
	// FindByID retrieves a single complaint by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)

	// List retrieves complaints matching the filter, newest first.
	List(ctx context.Context, filter ComplaintFilter) ([]*entity.Complaint, error)

	// Create persists a new complaint entity to the storage.
	Create(ctx context.Context, complaint *entity.Complaint) error

	// Update modifies an existing complaint entity in the storage.
	Update(ctx context.Context, complaint *entity.Complaint) error

	// Delete removes a complaint by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
