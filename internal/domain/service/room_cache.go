package service

import (
	"context"

	"comfortstay/internal/domain/entity"
)

// RoomCache caches the available-rooms listing, the hottest read path on the
// public site. Implementations must treat the cache as advisory: a miss or a
// cache error falls through to the database.
type RoomCache interface {
	// GetAvailableRooms returns the cached listing, or (nil, nil) on a miss.
	GetAvailableRooms(ctx context.Context) ([]*entity.Room, error)

	// SetAvailableRooms stores the listing with the configured TTL.
	SetAvailableRooms(ctx context.Context, rooms []*entity.Room) error

	// Invalidate drops the cached listing after any occupancy change.
	Invalidate(ctx context.Context) error
}
