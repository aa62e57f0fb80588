package impl

import (
	"context"
	"log/slog"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type roomService struct {
	roomRepo     repository.RoomRepository
	residentRepo repository.ResidentRepository
	roomCache    service.RoomCache
	logger       *slog.Logger
}

// RoomServiceParams holds dependencies for RoomService, injected by Fx.
type RoomServiceParams struct {
	fx.In

	RoomRepo     repository.RoomRepository
	ResidentRepo repository.ResidentRepository
	RoomCache    service.RoomCache
	Logger       *slog.Logger
}

// NewRoomService creates a new room service instance
func NewRoomService(params RoomServiceParams) usecase.RoomUsecase {
	return &roomService{
		roomRepo:     params.RoomRepo,
		residentRepo: params.ResidentRepo,
		roomCache:    params.RoomCache,
		logger:       params.Logger,
	}
}

// CreateRoom persists a new room.
func (s *roomService) CreateRoom(ctx context.Context, input *usecase.RoomInput) (*entity.Room, error) {
	status := input.Status
	if status == "" {
		status = entity.RoomStatusAvailable
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown room status")
	}

	room := &entity.Room{
		ID:         uuid.New(),
		Building:   input.Building,
		RoomNumber: input.RoomNumber,
		Floor:      input.Floor,
		Capacity:   input.Capacity,
		Status:     status,
		Price:      input.Price,
		Amenities:  input.Amenities,
		IsActive:   true,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicateRoom) {
			return nil, domainerrors.ErrConflict.WrapMessage("room number already exists in building")
		}

		return nil, errors.Wrap(err, "failed to create room")
	}

	s.invalidateCache(ctx)

	return room, nil
}

// UpdateRoom modifies an existing room's attributes.
func (s *roomService) UpdateRoom(ctx context.Context, id uuid.UUID, input *usecase.RoomInput) (*entity.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to load room")
	}

	if input.Capacity < room.CurrentOccupancy {
		return nil, domainerrors.ErrConflict.WrapMessage("capacity cannot drop below current occupancy")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown room status")
	}

	room.Building = input.Building
	room.RoomNumber = input.RoomNumber
	room.Floor = input.Floor
	room.Capacity = input.Capacity
	room.Price = input.Price
	room.Amenities = input.Amenities
	if input.Status != "" {
		// Status is admin-managed and may drift from occupancy on purpose.
		room.Status = input.Status
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, errors.Wrap(err, "failed to update room")
	}

	s.invalidateCache(ctx)

	return room, nil
}

// DeleteRoom removes an empty room.
func (s *roomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return domainerrors.ErrRoomNotFound
		}

		return errors.Wrap(err, "failed to load room")
	}

	if room.CurrentOccupancy > 0 {
		return domainerrors.ErrConflict.WrapMessage("room still has active residents")
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete room")
	}

	s.invalidateCache(ctx)

	return nil
}

// GetRoom retrieves a room together with its derived bed layout.
func (s *roomService) GetRoom(ctx context.Context, id uuid.UUID) (*usecase.RoomDetail, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to load room")
	}

	residents, err := s.residentRepo.FindActiveByRoom(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load room residents")
	}

	return &usecase.RoomDetail{
		Room: room,
		Beds: entity.BedView(room, residents),
	}, nil
}

// ListRooms retrieves rooms matching the filter.
func (s *roomService) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]*entity.Room, error) {
	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return rooms, nil
}

// AvailableRooms retrieves active rooms with at least one free bed, served
// from cache when warm. Cache failures fall through to the database.
func (s *roomService) AvailableRooms(ctx context.Context) ([]*entity.Room, error) {
	cached, err := s.roomCache.GetAvailableRooms(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "room cache read failed",
			slog.String("error", err.Error()),
		)
	}
	if cached != nil {
		return cached, nil
	}

	active := true
	rooms, err := s.roomRepo.List(ctx, repository.RoomFilter{
		OnlyFree: true,
		IsActive: &active,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available rooms")
	}

	if err := s.roomCache.SetAvailableRooms(ctx, rooms); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "room cache write failed",
			slog.String("error", err.Error()),
		)
	}

	return rooms, nil
}

func (s *roomService) invalidateCache(ctx context.Context) {
	if err := s.roomCache.Invalidate(ctx); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to invalidate room cache",
			slog.String("error", err.Error()),
		)
	}
}
