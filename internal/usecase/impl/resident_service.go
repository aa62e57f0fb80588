package impl

import (
	"context"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type residentService struct {
	residentRepo repository.ResidentRepository
}

// ResidentServiceParams holds dependencies for ResidentService, injected by Fx.
type ResidentServiceParams struct {
	fx.In

	ResidentRepo repository.ResidentRepository
}

// NewResidentService creates a new resident service instance
func NewResidentService(params ResidentServiceParams) usecase.ResidentUsecase {
	return &residentService{
		residentRepo: params.ResidentRepo,
	}
}

// GetResident retrieves a single resident.
func (s *residentService) GetResident(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	resident, err := s.residentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to load resident")
	}

	return resident, nil
}

// ListResidents retrieves residents matching the filter.
func (s *residentService) ListResidents(ctx context.Context, filter repository.ResidentFilter) ([]*entity.Resident, error) {
	residents, err := s.residentRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list residents")
	}

	return residents, nil
}

// UpdateResident applies profile edits.
func (s *residentService) UpdateResident(ctx context.Context, id uuid.UUID, input *usecase.ResidentUpdateInput) (*entity.Resident, error) {
	resident, err := s.residentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to load resident")
	}

	if input.Name != nil {
		resident.Name = *input.Name
	}
	if input.Phone != nil {
		resident.Phone = *input.Phone
	}

	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, errors.Wrap(err, "failed to update resident")
	}

	return resident, nil
}

// StartNoticePeriod marks an active resident as departing on a given date.
func (s *residentService) StartNoticePeriod(ctx context.Context, id uuid.UUID, input *usecase.NoticeInput) (*entity.Resident, error) {
	resident, err := s.residentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to load resident")
	}

	if !resident.IsActive {
		return nil, domainerrors.ErrConflict.WrapMessage("resident is not active")
	}

	lastStaying := input.LastStayingDate
	resident.IsOnNoticePeriod = true
	resident.LastStayingDate = &lastStaying

	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, errors.Wrap(err, "failed to start notice period")
	}

	return resident, nil
}

// CancelNoticePeriod withdraws a previously given notice.
func (s *residentService) CancelNoticePeriod(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	resident, err := s.residentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to load resident")
	}

	if !resident.IsOnNoticePeriod {
		return nil, domainerrors.ErrConflict.WrapMessage("resident is not on notice period")
	}

	resident.IsOnNoticePeriod = false
	resident.LastStayingDate = nil

	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, errors.Wrap(err, "failed to cancel notice period")
	}

	return resident, nil
}
