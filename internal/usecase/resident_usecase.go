package usecase

import (
	"context"
	"time"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
)

// ResidentUpdateInput carries editable profile fields.
type ResidentUpdateInput struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// NoticeInput schedules a resident's departure.
type NoticeInput struct {
	LastStayingDate time.Time `json:"last_staying_date" validate:"required"`
}

// ResidentUsecase serves resident profiles and the notice period flow.
type ResidentUsecase interface {
	// GetResident retrieves a single resident.
	GetResident(ctx context.Context, id uuid.UUID) (*entity.Resident, error)

	// ListResidents retrieves residents matching the filter.
	ListResidents(ctx context.Context, filter repository.ResidentFilter) ([]*entity.Resident, error)

	// UpdateResident applies profile edits.
	UpdateResident(ctx context.Context, id uuid.UUID, input *ResidentUpdateInput) (*entity.Resident, error)

	// StartNoticePeriod marks an active resident as departing on a given date.
	StartNoticePeriod(ctx context.Context, id uuid.UUID, input *NoticeInput) (*entity.Resident, error)

	// CancelNoticePeriod withdraws a previously given notice.
	CancelNoticePeriod(ctx context.Context, id uuid.UUID) (*entity.Resident, error)
}
