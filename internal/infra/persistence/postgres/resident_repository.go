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
)

// residentRepository implements the repository.ResidentRepository interface using GORM.
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository is the constructor for residentRepository.
func NewResidentRepository(db *gorm.DB) repository.ResidentRepository {
	return &residentRepository{
		db: db,
	}
}

// FindByID retrieves a single resident by their unique ID.
func (repo *residentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	var residentM model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&residentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find resident by ID")
	}

	return toResidentDomain(&residentM), nil
}

// FindByEmail retrieves a single resident by their email address.
func (repo *residentRepository) FindByEmail(ctx context.Context, email string) (*entity.Resident, error) {
	var residentM model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&residentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find resident by email")
	}

	return toResidentDomain(&residentM), nil
}

// FindByPGID retrieves a single resident by their hostel-issued identifier.
func (repo *residentRepository) FindByPGID(ctx context.Context, pgID string) (*entity.Resident, error) {
	var residentM model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("pg_id = ?", pgID).
		First(&residentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find resident by pg_id")
	}

	return toResidentDomain(&residentM), nil
}

// FindActiveByRoom retrieves all active residents allocated to a room, ordered by bed number.
func (repo *residentRepository) FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*entity.Resident, error) {
	var residentModels []*model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("room_id = ? AND is_active = ?", roomID, true).
		Order("bed_number").
		Find(&residentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active residents by room")
	}

	residents := make([]*entity.Resident, 0, len(residentModels))
	for _, residentM := range residentModels {
		residents = append(residents, toResidentDomain(residentM))
	}

	return residents, nil
}

// List retrieves residents matching the filter, newest first.
func (repo *residentRepository) List(ctx context.Context, filter repository.ResidentFilter) ([]*entity.Resident, error) {
	query := repo.db.WithContext(ctx).Model(&model.ResidentModel{})

	if filter.RegistrationStatus != "" {
		query = query.Where("registration_status = ?", string(filter.RegistrationStatus))
	}
	if filter.RoomID != nil {
		query = query.Where("room_id = ?", *filter.RoomID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR pg_id ILIKE ?", pattern, pattern, pattern)
	}

	var residentModels []*model.ResidentModel
	if err := query.Order("created_at DESC").Find(&residentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list residents")
	}

	residents := make([]*entity.Resident, 0, len(residentModels))
	for _, residentM := range residentModels {
		residents = append(residents, toResidentDomain(residentM))
	}

	return residents, nil
}

// Create persists a new resident entity to the database.
func (repo *residentRepository) Create(ctx context.Context, resident *entity.Resident) error {
	residentM := fromResidentDomain(resident)

	if err := repo.db.WithContext(ctx).Create(residentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required resident information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create resident")
	}

	// Update the entity with generated values
	resident.ID = residentM.ID
	resident.CreatedAt = residentM.CreatedAt
	resident.UpdatedAt = residentM.UpdatedAt

	return nil
}

// Update modifies an existing resident entity in the database. All columns
// are written so that cleared pointers (room_id, bed_number) become NULL.
func (repo *residentRepository) Update(ctx context.Context, resident *entity.Resident) error {
	residentM := fromResidentDomain(resident)

	result := repo.db.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("id = ?", resident.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(residentM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update resident")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResidentNotFound
	}

	return nil
}

// Delete removes a resident row by ID.
func (repo *residentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ResidentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete resident")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResidentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toResidentDomain converts a GORM ResidentModel to a domain Resident entity.
func toResidentDomain(data *model.ResidentModel) *entity.Resident {
	if data == nil {
		return nil
	}

	var depositReturn *entity.DepositReturn
	if len(data.DepositReturn) > 0 {
		depositReturn = &entity.DepositReturn{}
		if err := json.Unmarshal(data.DepositReturn, depositReturn); err != nil {
			depositReturn = nil
		}
	}

	return &entity.Resident{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		Phone:              data.Phone,
		PGID:               data.PGID,
		PasswordHash:       data.PasswordHash,
		Role:               entity.Role(data.Role),
		RegistrationStatus: entity.RegistrationStatus(data.RegistrationStatus),
		RoomID:             data.RoomID,
		BedNumber:          data.BedNumber,
		MoveInDate:         data.MoveInDate,
		MoveOutDate:        data.MoveOutDate,
		IsActive:           data.IsActive,
		IsOnNoticePeriod:   data.IsOnNoticePeriod,
		LastStayingDate:    data.LastStayingDate,
		DepositFees:        data.DepositFees,
		KeyIssued:          data.KeyIssued,
		DepositReturn:      depositReturn,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromResidentDomain converts a domain Resident entity to a GORM ResidentModel for persistence.
func fromResidentDomain(data *entity.Resident) *model.ResidentModel {
	if data == nil {
		return nil
	}

	var depositReturn []byte
	if data.DepositReturn != nil {
		depositReturn, _ = json.Marshal(data.DepositReturn)
	}

	return &model.ResidentModel{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		Phone:              data.Phone,
		PGID:               data.PGID,
		PasswordHash:       data.PasswordHash,
		Role:               string(data.Role),
		RegistrationStatus: string(data.RegistrationStatus),
		RoomID:             data.RoomID,
		BedNumber:          data.BedNumber,
		MoveInDate:         data.MoveInDate,
		MoveOutDate:        data.MoveOutDate,
		IsActive:           data.IsActive,
		IsOnNoticePeriod:   data.IsOnNoticePeriod,
		LastStayingDate:    data.LastStayingDate,
		DepositFees:        data.DepositFees,
		KeyIssued:          data.KeyIssued,
		DepositReturn:      depositReturn,
	}
}
