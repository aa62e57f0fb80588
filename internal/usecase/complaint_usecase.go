package usecase

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
)

// ComplaintInput carries a resident's new complaint.
type ComplaintInput struct {
	ResidentID  uuid.UUID `json:"resident_id" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Subject     string    `json:"subject" validate:"required"`
	Description string    `json:"description"`
}

// ComplaintUpdateInput carries an admin update. Status moves freely between
// states; there is deliberately no transition guard on complaints.
type ComplaintUpdateInput struct {
	Status     *entity.ComplaintStatus `json:"status,omitempty"`
	AdminNotes *string                 `json:"admin_notes,omitempty"`
}

// ComplaintUsecase manages resident complaints.
type ComplaintUsecase interface {
	// CreateComplaint files a new complaint in the Open state.
	CreateComplaint(ctx context.Context, input *ComplaintInput) (*entity.Complaint, error)

	// GetComplaint retrieves a single complaint.
	GetComplaint(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)

	// ListComplaints retrieves complaints matching the filter.
	ListComplaints(ctx context.Context, filter repository.ComplaintFilter) ([]*entity.Complaint, error)

	// UpdateComplaint applies an admin update. Moving into Resolved stamps
	// the resolution time.
	UpdateComplaint(ctx context.Context, id uuid.UUID, input *ComplaintUpdateInput) (*entity.Complaint, error)

	// DeleteComplaint removes a complaint.
	DeleteComplaint(ctx context.Context, id uuid.UUID) error
}
