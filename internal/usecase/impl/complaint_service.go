package impl

import (
	"context"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	residentRepo  repository.ResidentRepository
}

// ComplaintServiceParams holds dependencies for ComplaintService, injected by Fx.
type ComplaintServiceParams struct {
	fx.In

	ComplaintRepo repository.ComplaintRepository
	ResidentRepo  repository.ResidentRepository
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(params ComplaintServiceParams) usecase.ComplaintUsecase {
	return &complaintService{
		complaintRepo: params.ComplaintRepo,
		residentRepo:  params.ResidentRepo,
	}
}

// CreateComplaint files a new complaint in the Open state.
func (s *complaintService) CreateComplaint(ctx context.Context, input *usecase.ComplaintInput) (*entity.Complaint, error) {
	if _, err := s.residentRepo.FindByID(ctx, input.ResidentID); err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to load resident")
	}

	complaint := &entity.Complaint{
		ID:          uuid.New(),
		ResidentID:  input.ResidentID,
		Category:    input.Category,
		Subject:     input.Subject,
		Description: input.Description,
		Status:      entity.ComplaintStatusOpen,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to create complaint")
	}

	return complaint, nil
}

// GetComplaint retrieves a single complaint.
func (s *complaintService) GetComplaint(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load complaint")
	}

	return complaint, nil
}

// ListComplaints retrieves complaints matching the filter.
func (s *complaintService) ListComplaints(ctx context.Context, filter repository.ComplaintFilter) ([]*entity.Complaint, error) {
	complaints, err := s.complaintRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return complaints, nil
}

// UpdateComplaint applies an admin update. Complaint status is a free enum:
// any state may move to any other. Entering Resolved stamps the resolution
// time; leaving it clears the stamp.
func (s *complaintService) UpdateComplaint(ctx context.Context, id uuid.UUID, input *usecase.ComplaintUpdateInput) (*entity.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load complaint")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown complaint status")
		}

		if *input.Status == entity.ComplaintStatusResolved && complaint.Status != entity.ComplaintStatusResolved {
			now := time.Now()
			complaint.ResolvedAt = &now
		}
		if *input.Status != entity.ComplaintStatusResolved {
			complaint.ResolvedAt = nil
		}

		complaint.Status = *input.Status
	}
	if input.AdminNotes != nil {
		complaint.AdminNotes = *input.AdminNotes
	}

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to update complaint")
	}

	return complaint, nil
}

// DeleteComplaint removes a complaint.
func (s *complaintService) DeleteComplaint(ctx context.Context, id uuid.UUID) error {
	if err := s.complaintRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete complaint")
	}

	return nil
}
