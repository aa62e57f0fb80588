// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
)

// ErrVisitRequestNotFound is returned when a visit request is not found.
var ErrVisitRequestNotFound = errors.New("visit request not found")

// VisitRequestRepository defines the standard operations for visit request persistence.
type VisitRequestRepository interface {
	// FindByID retrieves a single visit request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error)

	// List retrieves visit requests, optionally filtered by status, newest first.
	List(ctx context.Context, status entity.VisitStatus) ([]*entity.VisitRequest, error)

	// Create persists a new visit request entity to the storage.
	Create(ctx context.Context, request *entity.VisitRequest) error

	// Update modifies an existing visit request entity in the storage.
	Update(ctx context.Context, request *entity.VisitRequest) error
}
