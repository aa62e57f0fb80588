// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for resident persistence.
var (
	// ErrResidentNotFound is returned when a resident is not found.
	ErrResidentNotFound = errors.New("resident not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ResidentFilter narrows resident listings. Zero values mean "no constraint".
type ResidentFilter struct {
	RegistrationStatus entity.RegistrationStatus
	RoomID             *uuid.UUID
	IsActive           *bool
	Search             string // matches name, email or pgId
}

// ResidentRepository defines the standard operations for resident persistence.
type ResidentRepository interface {
	// FindByID retrieves a single resident by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error)

	// FindByEmail retrieves a single resident by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Resident, error)

	// FindByPGID retrieves a single resident by their hostel-issued identifier.
	FindByPGID(ctx context.Context, pgID string) (*entity.Resident, error)

	// FindActiveByRoom retrieves all active residents allocated to a room,
	// ordered by bed number.
	FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*entity.Resident, error)

	// List retrieves residents matching the filter, newest first.
	List(ctx context.Context, filter ResidentFilter) ([]*entity.Resident, error)

	// Create persists a new resident entity to the storage.
	Create(ctx context.Context, resident *entity.Resident) error

	// Update modifies an existing resident entity in the storage.
	Update(ctx context.Context, resident *entity.Resident) error

	// Delete removes a resident row by ID. Archival must happen before this.
	Delete(ctx context.Context, id uuid.UUID) error
}
