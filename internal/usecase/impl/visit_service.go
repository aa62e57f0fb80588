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

type visitService struct {
	visitRepo repository.VisitRequestRepository
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	VisitRepo repository.VisitRequestRepository
}

// NewVisitService creates a new visit service instance
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		visitRepo: params.VisitRepo,
	}
}

// RequestVisit files a new visit request in the Pending state.
func (s *visitService) RequestVisit(ctx context.Context, input *usecase.VisitRequestInput) (*entity.VisitRequest, error) {
	request := &entity.VisitRequest{
		ID:            uuid.New(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		PreferredDate: input.PreferredDate,
		Status:        entity.VisitStatusPending,
		Notes:         input.Notes,
	}

	if err := s.visitRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create visit request")
	}

	return request, nil
}

// ListVisits retrieves visit requests, optionally filtered by status.
func (s *visitService) ListVisits(ctx context.Context, status entity.VisitStatus) ([]*entity.VisitRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown visit status")
	}

	requests, err := s.visitRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visit requests")
	}

	return requests, nil
}

// ScheduleVisit confirms a pending request for a concrete slot.
func (s *visitService) ScheduleVisit(ctx context.Context, id uuid.UUID, scheduledAt time.Time, notes string) (*entity.VisitRequest, error) {
	request, err := s.transition(ctx, id, entity.VisitStatusScheduled)
	if err != nil {
		return nil, err
	}

	request.ScheduledAt = &scheduledAt
	if notes != "" {
		request.Notes = notes
	}

	if err := s.visitRepo.Update(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to schedule visit")
	}

	return request, nil
}

// CompleteVisit marks a scheduled visit as completed.
func (s *visitService) CompleteVisit(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	request, err := s.transition(ctx, id, entity.VisitStatusCompleted)
	if err != nil {
		return nil, err
	}

	if err := s.visitRepo.Update(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to complete visit")
	}

	return request, nil
}

// CancelVisit cancels a pending or scheduled visit.
func (s *visitService) CancelVisit(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	request, err := s.transition(ctx, id, entity.VisitStatusCancelled)
	if err != nil {
		return nil, err
	}

	if err := s.visitRepo.Update(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to cancel visit")
	}

	return request, nil
}

// transition loads the request and applies the guarded status change without
// persisting it, so callers can set companion fields first.
func (s *visitService) transition(ctx context.Context, id uuid.UUID, next entity.VisitStatus) (*entity.VisitRequest, error) {
	request, err := s.visitRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVisitRequestNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load visit request")
	}

	if !request.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			string(request.Status) + " -> " + string(next),
		)
	}

	request.Status = next

	return request, nil
}
