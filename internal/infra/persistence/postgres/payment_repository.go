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

// paymentRepository implements the repository.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByResident retrieves all payments for a resident, newest first.
func (repo *paymentRepository) FindByResident(ctx context.Context, residentID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("payment_date DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payments by resident")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// List retrieves payments matching the filter, newest first.
func (repo *paymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	query := repo.db.WithContext(ctx).Model(&model.PaymentModel{})

	if filter.ResidentID != nil {
		query = query.Where("resident_id = ?", *filter.ResidentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Month != "" {
		// Months is a JSONB array of labels; containment matches one label.
		query = query.Where("months @> ?", mustJSONArray(filter.Month))
	}

	var paymentModels []*model.PaymentModel
	if err := query.Order("payment_date DESC").Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// CoveredMonths returns every month label already covered by the resident's
// non-deposit payments, across all rows.
func (repo *paymentRepository) CoveredMonths(ctx context.Context, residentID uuid.UUID) ([]string, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Select("months").
		Where("resident_id = ? AND is_deposit = ?", residentID, false).
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load covered months")
	}

	var covered []string
	for _, paymentM := range paymentModels {
		if len(paymentM.Months) == 0 {
			continue
		}

		var months []string
		if err := json.Unmarshal(paymentM.Months, &months); err != nil {
			continue
		}
		covered = append(covered, months...)
	}

	return covered, nil
}

// Create persists a new payment entity to the database.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("receipt number already used")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// Update modifies an existing payment entity in the database.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(paymentM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// Delete removes a payment by its ID.
func (repo *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PaymentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// mustJSONArray renders a single label as a JSON array for JSONB containment.
func mustJSONArray(label string) []byte {
	data, _ := json.Marshal([]string{label})

	return data
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	var months []string
	if len(data.Months) > 0 {
		_ = json.Unmarshal(data.Months, &months)
	}

	return &entity.Payment{
		ID:            data.ID,
		ResidentID:    data.ResidentID,
		Amount:        data.Amount,
		Months:        months,
		PaymentDate:   data.PaymentDate,
		DueDate:       data.DueDate,
		Status:        entity.PaymentStatus(data.Status),
		Method:        entity.PaymentMethod(data.Method),
		ReceiptNumber: data.ReceiptNumber,
		TransactionID: data.TransactionID,
		Remarks:       data.Remarks,
		IsDeposit:     data.IsDeposit,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel for persistence.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	var months []byte
	if data.Months != nil {
		months, _ = json.Marshal(data.Months)
	}

	return &model.PaymentModel{
		ID:            data.ID,
		ResidentID:    data.ResidentID,
		Amount:        data.Amount,
		Months:        months,
		PaymentDate:   data.PaymentDate,
		DueDate:       data.DueDate,
		Status:        string(data.Status),
		Method:        string(data.Method),
		ReceiptNumber: data.ReceiptNumber,
		TransactionID: data.TransactionID,
		Remarks:       data.Remarks,
		IsDeposit:     data.IsDeposit,
	}
}
