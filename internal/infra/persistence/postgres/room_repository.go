// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roomRepository implements the repository.RoomRepository interface using GORM.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// FindByID retrieves a single room by its unique ID.
func (repo *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by ID")
	}

	return toRoomDomain(&roomM), nil
}

// FindByIDForUpdate retrieves a room by ID under SELECT ... FOR UPDATE.
// The row lock serializes concurrent occupancy changes on the same room; it
// is released when the surrounding transaction commits or rolls back.
func (repo *roomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to lock room for update")
	}

	return toRoomDomain(&roomM), nil
}

// List retrieves rooms matching the filter, ordered by building and room number.
func (repo *roomRepository) List(ctx context.Context, filter repository.RoomFilter) ([]*entity.Room, error) {
	query := repo.db.WithContext(ctx).Model(&model.RoomModel{})

	if filter.Building != "" {
		query = query.Where("building = ?", filter.Building)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.OnlyFree {
		query = query.Where("current_occupancy < capacity")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var roomModels []*model.RoomModel
	if err := query.Order("building, room_number").Find(&roomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	rooms := make([]*entity.Room, 0, len(roomModels))
	for _, roomM := range roomModels {
		rooms = append(rooms, toRoomDomain(roomM))
	}

	return rooms, nil
}

// Create persists a new room entity to the database.
func (repo *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	roomM := fromRoomDomain(room)

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRoom
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required room information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create room")
	}

	// Update the entity with generated values
	room.ID = roomM.ID
	room.CreatedAt = roomM.CreatedAt
	room.UpdatedAt = roomM.UpdatedAt

	return nil
}

// Update modifies an existing room entity in the database.
func (repo *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	roomM := fromRoomDomain(room)

	result := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ?", room.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(roomM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateRoom
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update room")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

// Delete removes a room by its ID.
func (repo *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RoomModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete room")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

// OccupiedBeds returns the bed numbers held by active residents of the room.
func (repo *roomRepository) OccupiedBeds(ctx context.Context, roomID uuid.UUID) (map[int]struct{}, error) {
	var bedNumbers []int

	if err := repo.db.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("room_id = ? AND is_active = ? AND bed_number IS NOT NULL", roomID, true).
		Pluck("bed_number", &bedNumbers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load occupied beds")
	}

	occupied := make(map[int]struct{}, len(bedNumbers))
	for _, number := range bedNumbers {
		occupied[number] = struct{}{}
	}

	return occupied, nil
}

// --- Mapper Functions ---

// toRoomDomain converts a GORM RoomModel to a domain Room entity.
func toRoomDomain(data *model.RoomModel) *entity.Room {
	if data == nil {
		return nil
	}

	var amenities []string
	if len(data.Amenities) > 0 {
		// A malformed JSONB payload degrades to an empty amenity list.
		_ = json.Unmarshal(data.Amenities, &amenities)
	}

	return &entity.Room{
		ID:               data.ID,
		Building:         data.Building,
		RoomNumber:       data.RoomNumber,
		Floor:            data.Floor,
		Capacity:         data.Capacity,
		CurrentOccupancy: data.CurrentOccupancy,
		Status:           entity.RoomStatus(data.Status),
		Price:            data.Price,
		Amenities:        amenities,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromRoomDomain converts a domain Room entity to a GORM RoomModel for persistence.
func fromRoomDomain(data *entity.Room) *model.RoomModel {
	if data == nil {
		return nil
	}

	var amenities []byte
	if data.Amenities != nil {
		amenities, _ = json.Marshal(data.Amenities)
	}

	return &model.RoomModel{
		ID:               data.ID,
		Building:         data.Building,
		RoomNumber:       data.RoomNumber,
		Floor:            data.Floor,
		Capacity:         data.Capacity,
		CurrentOccupancy: data.CurrentOccupancy,
		Status:           string(data.Status),
		Price:            data.Price,
		Amenities:        amenities,
		IsActive:         data.IsActive,
	}
}
