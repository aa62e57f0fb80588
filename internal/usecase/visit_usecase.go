package usecase

import (
	"context"
	"time"

	"comfortstay/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitRequestInput carries a prospective visitor's tour request.
type VisitRequestInput struct {
	Name          string     `json:"name" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone"`
	PreferredDate *time.Time `json:"preferred_date,omitempty"`
	Notes         string     `json:"notes"`
}

// VisitUsecase manages the guarded visit request pipeline
// (Pending -> Scheduled -> Completed, with cancellation from the first two).
type VisitUsecase interface {
	// RequestVisit files a new visit request in the Pending state.
	RequestVisit(ctx context.Context, input *VisitRequestInput) (*entity.VisitRequest, error)

	// ListVisits retrieves visit requests, optionally filtered by status.
	ListVisits(ctx context.Context, status entity.VisitStatus) ([]*entity.VisitRequest, error)

	// ScheduleVisit confirms a pending request for a concrete slot.
	ScheduleVisit(ctx context.Context, id uuid.UUID, scheduledAt time.Time, notes string) (*entity.VisitRequest, error)

	// CompleteVisit marks a scheduled visit as completed.
	CompleteVisit(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error)

	// CancelVisit cancels a pending or scheduled visit.
	CancelVisit(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error)
}
