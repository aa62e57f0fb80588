// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for room persistence.
var (
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("room not found")
	// ErrDuplicateRoom is returned when a room with the same building and number already exists.
	ErrDuplicateRoom = errors.New("room already exists")
)

// RoomFilter narrows room listings. Zero values mean "no constraint".
type RoomFilter struct {
	Building string
	Status   entity.RoomStatus
	OnlyFree bool  // only rooms with CurrentOccupancy < Capacity
	IsActive *bool // nil means both active and inactive
}

// RoomRepository defines the standard operations for room persistence.
type RoomRepository interface {
	// FindByID retrieves a single room by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// FindByIDForUpdate retrieves a room by ID while holding a row-level lock
	// until the surrounding transaction ends. Callers must invoke this inside
	// TransactionManager.Execute; outside a transaction the lock has no effect.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// List retrieves rooms matching the filter, ordered by building and room number.
	List(ctx context.Context, filter RoomFilter) ([]*entity.Room, error)

	// Create persists a new room entity to the storage.
	Create(ctx context.Context, room *entity.Room) error

	// Update modifies an existing room entity in the storage.
	Update(ctx context.Context, room *entity.Room) error

	// Delete removes a room by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// OccupiedBeds returns the set of bed numbers currently held by active
	// residents of the room.
	OccupiedBeds(ctx context.Context, roomID uuid.UUID) (map[int]struct{}, error)
}
