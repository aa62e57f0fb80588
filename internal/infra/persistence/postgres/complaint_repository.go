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

// complaintRepository implements the repository.ComplaintRepository interface using GORM.
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{
		db: db,
	}
}

// FindByID retrieves a single complaint by its unique ID.
func (repo *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	var complaintM model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&complaintM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by ID")
	}

	return toComplaintDomain(&complaintM), nil
}

// List retrieves complaints matching the filter, newest first.
func (repo *complaintRepository) List(ctx context.Context, filter repository.ComplaintFilter) ([]*entity.Complaint, error) {
	query := repo.db.WithContext(ctx).Model(&model.ComplaintModel{})

	if filter.ResidentID != nil {
		query = query.Where("resident_id = ?", *filter.ResidentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var complaintModels []*model.ComplaintModel
	if err := query.Order("created_at DESC").Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	complaints := make([]*entity.Complaint, 0, len(complaintModels))
	for _, complaintM := range complaintModels {
		complaints = append(complaints, toComplaintDomain(complaintM))
	}

	return complaints, nil
}

// Create persists a new complaint entity to the database.
func (repo *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	if err := repo.db.WithContext(ctx).Create(complaintM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required complaint information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	complaint.ID = complaintM.ID
	complaint.CreatedAt = complaintM.CreatedAt
	complaint.UpdatedAt = complaintM.UpdatedAt

	return nil
}

// Update modifies an existing complaint entity in the database.
func (repo *complaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	result := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ?", complaint.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(complaintM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update complaint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

// Delete removes a complaint by its ID.
func (repo *complaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ComplaintModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete complaint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toComplaintDomain converts a GORM ComplaintModel to a domain Complaint entity.
func toComplaintDomain(data *model.ComplaintModel) *entity.Complaint {
	if data == nil {
		return nil
	}

	return &entity.Complaint{
		ID:          data.ID,
		ResidentID:  data.ResidentID,
		Category:    data.Category,
		Subject:     data.Subject,
		Description: data.Description,
		Status:      entity.ComplaintStatus(data.Status),
		AdminNotes:  data.AdminNotes,
		ResolvedAt:  data.ResolvedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromComplaintDomain converts a domain Complaint entity to a GORM ComplaintModel for persistence.
func fromComplaintDomain(data *entity.Complaint) *model.ComplaintModel {
	if data == nil {
		return nil
	}

	return &model.ComplaintModel{
		ID:          data.ID,
		ResidentID:  data.ResidentID,
		Category:    data.Category,
		Subject:     data.Subject,
		Description: data.Description,
		Status:      string(data.Status),
		AdminNotes:  data.AdminNotes,
		ResolvedAt:  data.ResolvedAt,
	}
}
