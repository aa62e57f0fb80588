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

// archiveRepository implements the repository.ArchiveRepository interface using GORM.
type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository is the constructor for archiveRepository.
func NewArchiveRepository(db *gorm.DB) repository.ArchiveRepository {
	return &archiveRepository{
		db: db,
	}
}

// FindByID retrieves an archive record by its own unique ID.
func (repo *archiveRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ResidentArchive, error) {
	var archiveM model.ResidentArchiveModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&archiveM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArchiveNotFound
		}

		return nil, errors.Wrap(err, "failed to find archive by ID")
	}

	return toArchiveDomain(&archiveM), nil
}

// FindByResidentID retrieves the archive record for a departed resident.
func (repo *archiveRepository) FindByResidentID(ctx context.Context, residentID uuid.UUID) (*entity.ResidentArchive, error) {
	var archiveM model.ResidentArchiveModel

	if err := repo.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		First(&archiveM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArchiveNotFound
		}

		return nil, errors.Wrap(err, "failed to find archive by resident ID")
	}

	return toArchiveDomain(&archiveM), nil
}

// List retrieves archive records, most recent checkout first.
func (repo *archiveRepository) List(ctx context.Context) ([]*entity.ResidentArchive, error) {
	var archiveModels []*model.ResidentArchiveModel

	if err := repo.db.WithContext(ctx).
		Order("archive_date DESC").
		Find(&archiveModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list archives")
	}

	archives := make([]*entity.ResidentArchive, 0, len(archiveModels))
	for _, archiveM := range archiveModels {
		archives = append(archives, toArchiveDomain(archiveM))
	}

	return archives, nil
}

// Upsert creates the archive record for a resident, or updates the existing
// one in place when the resident was archived before. The conflict target is
// the unique resident_id column, which makes repeated checkouts converge on
// a single row.
func (repo *archiveRepository) Upsert(ctx context.Context, archive *entity.ResidentArchive) error {
	archiveM := fromArchiveDomain(archive)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resident_id"}},
			UpdateAll: true,
		}).
		Create(archiveM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert archive")
	}

	archive.ID = archiveM.ID
	archive.CreatedAt = archiveM.CreatedAt
	archive.UpdatedAt = archiveM.UpdatedAt

	return nil
}

// Update modifies an existing archive record (exit survey, refunds).
func (repo *archiveRepository) Update(ctx context.Context, archive *entity.ResidentArchive) error {
	archiveM := fromArchiveDomain(archive)

	result := repo.db.WithContext(ctx).
		Model(&model.ResidentArchiveModel{}).
		Where("id = ?", archive.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(archiveM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update archive")
	}

	if result.RowsAffected == 0 {
		return repository.ErrArchiveNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toArchiveDomain converts a GORM ResidentArchiveModel to a domain ResidentArchive entity.
func toArchiveDomain(data *model.ResidentArchiveModel) *entity.ResidentArchive {
	if data == nil {
		return nil
	}

	var feedback *entity.ExitFeedback
	if len(data.ExitFeedback) > 0 {
		feedback = &entity.ExitFeedback{}
		if err := json.Unmarshal(data.ExitFeedback, feedback); err != nil {
			feedback = nil
		}
	}

	var depositReturn *entity.DepositReturn
	if len(data.DepositReturn) > 0 {
		depositReturn = &entity.DepositReturn{}
		if err := json.Unmarshal(data.DepositReturn, depositReturn); err != nil {
			depositReturn = nil
		}
	}

	return &entity.ResidentArchive{
		ID:                  data.ID,
		ResidentID:          data.ResidentID,
		Name:                data.Name,
		Email:               data.Email,
		Phone:               data.Phone,
		PGID:                data.PGID,
		RoomID:              data.RoomID,
		BedNumber:           data.BedNumber,
		MoveInDate:          data.MoveInDate,
		MoveOutDate:         data.MoveOutDate,
		StayDuration:        data.StayDuration,
		ArchiveReason:       entity.ArchiveReason(data.ArchiveReason),
		ArchiveDate:         data.ArchiveDate,
		ExitSurveyCompleted: data.ExitSurveyCompleted,
		ExitFeedback:        feedback,
		DepositFees:         data.DepositFees,
		DepositReturn:       depositReturn,
		RefundAmount:        data.RefundAmount,
		RefundMethod:        data.RefundMethod,
		KeyIssued:           data.KeyIssued,
		AdminComments:       data.AdminComments,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromArchiveDomain converts a domain ResidentArchive entity to a GORM ResidentArchiveModel.
func fromArchiveDomain(data *entity.ResidentArchive) *model.ResidentArchiveModel {
	if data == nil {
		return nil
	}

	var feedback []byte
	if data.ExitFeedback != nil {
		feedback, _ = json.Marshal(data.ExitFeedback)
	}

	var depositReturn []byte
	if data.DepositReturn != nil {
		depositReturn, _ = json.Marshal(data.DepositReturn)
	}

	return &model.ResidentArchiveModel{
		ID:                  data.ID,
		ResidentID:          data.ResidentID,
		Name:                data.Name,
		Email:               data.Email,
		Phone:               data.Phone,
		PGID:                data.PGID,
		RoomID:              data.RoomID,
		BedNumber:           data.BedNumber,
		MoveInDate:          data.MoveInDate,
		MoveOutDate:         data.MoveOutDate,
		StayDuration:        data.StayDuration,
		ArchiveReason:       string(data.ArchiveReason),
		ArchiveDate:         data.ArchiveDate,
		ExitSurveyCompleted: data.ExitSurveyCompleted,
		ExitFeedback:        feedback,
		DepositFees:         data.DepositFees,
		DepositReturn:       depositReturn,
		RefundAmount:        data.RefundAmount,
		RefundMethod:        data.RefundMethod,
		KeyIssued:           data.KeyIssued,
		AdminComments:       data.AdminComments,
	}
}
