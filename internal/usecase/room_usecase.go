package usecase

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
)

// RoomInput carries the admin room create/update form.
type RoomInput struct {
	Building   string            `json:"building" validate:"required"`
	RoomNumber string            `json:"room_number" validate:"required"`
	Floor      int               `json:"floor"`
	Capacity   int               `json:"capacity" validate:"required,min=1"`
	Status     entity.RoomStatus `json:"status"`
	Price      float64           `json:"price" validate:"required,gt=0"`
	Amenities  []string          `json:"amenities"`
}

// RoomDetail bundles a room with its derived bed layout.
type RoomDetail struct {
	Room *entity.Room `json:"room"`
	Beds []entity.Bed `json:"beds"`
}

// RoomUsecase manages rooms and the derived bed view.
type RoomUsecase interface {
	// CreateRoom persists a new room.
	CreateRoom(ctx context.Context, input *RoomInput) (*entity.Room, error)

	// UpdateRoom modifies an existing room's attributes. Capacity may not
	// shrink below the current occupancy.
	UpdateRoom(ctx context.Context, id uuid.UUID, input *RoomInput) (*entity.Room, error)

	// DeleteRoom removes an empty room. Rooms with active residents cannot
	// be deleted.
	DeleteRoom(ctx context.Context, id uuid.UUID) error

	// GetRoom retrieves a room together with its bed layout.
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomDetail, error)

	// ListRooms retrieves rooms matching the filter.
	ListRooms(ctx context.Context, filter repository.RoomFilter) ([]*entity.Room, error)

	// AvailableRooms retrieves active rooms with at least one free bed,
	// served from cache when warm.
	AvailableRooms(ctx context.Context) ([]*entity.Room, error)
}
