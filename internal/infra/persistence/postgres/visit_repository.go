// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRequestRepository implements the repository.VisitRequestRepository interface using GORM.
type visitRequestRepository struct {
	db *gorm.DB
}

// NewVisitRequestRepository is the constructor for visitRequestRepository.
func NewVisitRequestRepository(db *gorm.DB) repository.VisitRequestRepository {
	return &visitRequestRepository{
		db: db,
	}
}

// FindByID retrieves a single visit request by its unique ID.
func (repo *visitRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	var visitM model.VisitRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit request by ID")
	}

	return toVisitRequestDomain(&visitM), nil
}

// List retrieves visit requests, optionally filtered by status, newest first.
func (repo *visitRequestRepository) List(ctx context.Context, status entity.VisitStatus) ([]*entity.VisitRequest, error) {
	query := repo.db.WithContext(ctx).Model(&model.VisitRequestModel{})

	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var visitModels []*model.VisitRequestModel
	if err := query.Order("created_at DESC").Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visit requests")
	}

	requests := make([]*entity.VisitRequest, 0, len(visitModels))
	for _, visitM := range visitModels {
		requests = append(requests, toVisitRequestDomain(visitM))
	}

	return requests, nil
}

// Create persists a new visit request entity to the database.
func (repo *visitRequestRepository) Create(ctx context.Context, request *entity.VisitRequest) error {
	visitM := fromVisitRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required visit request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit request")
	}

	request.ID = visitM.ID
	request.CreatedAt = visitM.CreatedAt
	request.UpdatedAt = visitM.UpdatedAt

	return nil
}

// Update modifies an existing visit request entity in the database.
func (repo *visitRequestRepository) Update(ctx context.Context, request *entity.VisitRequest) error {
	visitM := fromVisitRequestDomain(request)

	result := repo.db.WithContext(ctx).
		Model(&model.VisitRequestModel{}).
		Where("id = ?", request.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(visitM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update visit request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitRequestNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVisitRequestDomain converts a GORM VisitRequestModel to a domain VisitRequest entity.
func toVisitRequestDomain(data *model.VisitRequestModel) *entity.VisitRequest {
	if data == nil {
		return nil
	}

	return &entity.VisitRequest{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		PreferredDate: data.PreferredDate,
		ScheduledAt:   data.ScheduledAt,
		Status:        entity.VisitStatus(data.Status),
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromVisitRequestDomain converts a domain VisitRequest entity to a GORM VisitRequestModel.
func fromVisitRequestDomain(data *entity.VisitRequest) *model.VisitRequestModel {
	if data == nil {
		return nil
	}

	return &model.VisitRequestModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		PreferredDate: data.PreferredDate,
		ScheduledAt:   data.ScheduledAt,
		Status:        string(data.Status),
		Notes:         data.Notes,
	}
}
