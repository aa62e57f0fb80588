package impl

import (
	"context"
	"log/slog"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkoutService struct {
	txManager   repository.TransactionManager
	archiveRepo repository.ArchiveRepository
	publisher   service.EventPublisher
	roomCache   service.RoomCache
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ArchiveRepo repository.ArchiveRepository
	Publisher   service.EventPublisher
	RoomCache   service.RoomCache
	Logger      *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:   params.TxManager,
		archiveRepo: params.ArchiveRepo,
		publisher:   params.Publisher,
		roomCache:   params.RoomCache,
		logger:      params.Logger,
	}
}

// Checkout archives a resident, frees their bed and deactivates the account.
func (s *checkoutService) Checkout(ctx context.Context, residentID uuid.UUID, input *usecase.CheckoutInput) (*entity.ResidentArchive, error) {
	reason := input.ArchiveReason
	if reason == "" {
		reason = entity.ArchiveReasonCompletedStay
	}
	if !reason.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown archive reason")
	}

	var feedback *entity.ExitFeedback
	if input.ExitSurvey != nil {
		feedback = &entity.ExitFeedback{
			Rating:           input.ExitSurvey.Rating,
			Comments:         input.ExitSurvey.Comments,
			WouldRecommend:   input.ExitSurvey.WouldRecommend,
			ReasonForLeaving: input.ExitSurvey.ReasonForLeaving,
		}
	}

	archive, err := s.depart(ctx, residentID, departure{
		reason:          reason,
		feedback:        feedback,
		surveyCompleted: input.ExitSurvey != nil || input.SkipSurvey,
		refundAmount:    input.RefundAmount,
		refundMethod:    input.RefundMethod,
		adminComments:   input.AdminComments,
		failIfArchived:  true,
	})
	if err != nil {
		return nil, err
	}

	return archive, nil
}

// Deactivate is the admin-initiated departure path. It converges on the same
// archive row as Checkout: if the resident was checked out earlier, the
// existing archive is updated in place instead of failing.
func (s *checkoutService) Deactivate(ctx context.Context, residentID uuid.UUID, input *usecase.DeactivateInput) error {
	_, err := s.depart(ctx, residentID, departure{
		reason:          entity.ArchiveReasonOther,
		surveyCompleted: false,
		keyIssued:       input.KeyIssued,
		depositReturn:   input.DepositReturn,
		failIfArchived:  false,
	})

	return err
}

// departure carries the per-path knobs of the shared departure flow.
type departure struct {
	reason          entity.ArchiveReason
	feedback        *entity.ExitFeedback
	surveyCompleted bool
	refundAmount    float64
	refundMethod    string
	adminComments   string
	keyIssued       *bool
	depositReturn   *entity.DepositReturn
	failIfArchived  bool
}

// depart runs the canonical departure transaction: snapshot to archive,
// free the bed, decrement occupancy, deactivate the account.
func (s *checkoutService) depart(ctx context.Context, residentID uuid.UUID, d departure) (*entity.ResidentArchive, error) {
	var (
		archive  *entity.ResidentArchive
		departed *entity.Resident
	)

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		residentRepo := f.NewResidentRepository()
		roomRepo := f.NewRoomRepository()
		archiveRepo := f.NewArchiveRepository()

		resident, err := residentRepo.FindByID(ctx, residentID)
		if err != nil {
			if errors.Is(err, repository.ErrResidentNotFound) {
				return domainerrors.ErrResidentNotFound
			}

			return errors.Wrap(err, "failed to load resident")
		}

		if resident.IsCheckedOut() && d.failIfArchived {
			return domainerrors.ErrAlreadyCheckedOut
		}

		moveOut := time.Now()
		if resident.MoveOutDate != nil {
			// A repeated deactivation keeps the original departure date.
			moveOut = *resident.MoveOutDate
		}

		if d.keyIssued != nil {
			resident.KeyIssued = *d.keyIssued
		}
		if d.depositReturn != nil {
			resident.DepositReturn = d.depositReturn
		}

		archive = &entity.ResidentArchive{
			ID:                  uuid.New(),
			ResidentID:          resident.ID,
			Name:                resident.Name,
			Email:               resident.Email,
			Phone:               resident.Phone,
			PGID:                resident.PGID,
			RoomID:              resident.RoomID,
			BedNumber:           resident.BedNumber,
			MoveInDate:          resident.MoveInDate,
			MoveOutDate:         moveOut,
			StayDuration:        entity.StayDurationDays(resident.StayStart(), moveOut),
			ArchiveReason:       d.reason,
			ArchiveDate:         time.Now(),
			ExitSurveyCompleted: d.surveyCompleted,
			ExitFeedback:        d.feedback,
			DepositFees:         resident.DepositFees,
			DepositReturn:       resident.DepositReturn,
			RefundAmount:        d.refundAmount,
			RefundMethod:        d.refundMethod,
			KeyIssued:           resident.KeyIssued,
			AdminComments:       d.adminComments,
		}

		if err := archiveRepo.Upsert(ctx, archive); err != nil {
			return errors.Wrap(err, "failed to write archive")
		}

		// Free the bed under a room row lock so the occupancy decrement
		// cannot race a concurrent allocation on the same room.
		if resident.IsActive && resident.RoomID != nil {
			room, err := roomRepo.FindByIDForUpdate(ctx, *resident.RoomID)
			if err != nil {
				return errors.Wrap(err, "failed to lock room")
			}

			room.CurrentOccupancy--
			if room.CurrentOccupancy < 0 {
				room.CurrentOccupancy = 0
			}
			if room.CurrentOccupancy == 0 {
				room.Status = entity.RoomStatusAvailable
			}

			if err := roomRepo.Update(ctx, room); err != nil {
				return errors.Wrap(err, "failed to decrement room occupancy")
			}
		}

		resident.IsActive = false
		resident.MoveOutDate = &moveOut
		resident.RoomID = nil
		resident.BedNumber = nil
		resident.IsOnNoticePeriod = false
		resident.LastStayingDate = nil

		if err := residentRepo.Update(ctx, resident); err != nil {
			return errors.Wrap(err, "failed to deactivate resident")
		}

		departed = resident

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.roomCache.Invalidate(ctx); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to invalidate room cache",
			slog.String("error", err.Error()),
		)
	}

	event := &service.HostelEvent{
		Type:         service.EventResidentCheckedOut,
		ResidentID:   departed.ID.String(),
		ResidentName: departed.Name,
		Email:        departed.Email,
		PGID:         departed.PGID,
	}
	if err := s.publisher.PublishHostelEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to publish checkout event",
			slog.String("residentId", departed.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return archive, nil
}

// GetExitSurvey retrieves the archive record holding a resident's exit-survey data.
func (s *checkoutService) GetExitSurvey(ctx context.Context, residentID uuid.UUID) (*entity.ResidentArchive, error) {
	archive, err := s.archiveRepo.FindByResidentID(ctx, residentID)
	if err != nil {
		if errors.Is(err, repository.ErrArchiveNotFound) {
			return nil, domainerrors.ErrArchiveNotFound
		}

		return nil, errors.Wrap(err, "failed to load archive")
	}

	return archive, nil
}

// UpdateExitSurvey amends the exit survey after checkout. StayDuration stays
// derived and is never touched here.
func (s *checkoutService) UpdateExitSurvey(ctx context.Context, residentID uuid.UUID, input *usecase.ExitSurveyInput) (*entity.ResidentArchive, error) {
	archive, err := s.archiveRepo.FindByResidentID(ctx, residentID)
	if err != nil {
		if errors.Is(err, repository.ErrArchiveNotFound) {
			return nil, domainerrors.ErrArchiveNotFound
		}

		return nil, errors.Wrap(err, "failed to load archive")
	}

	archive.ExitFeedback = &entity.ExitFeedback{
		Rating:           input.Rating,
		Comments:         input.Comments,
		WouldRecommend:   input.WouldRecommend,
		ReasonForLeaving: input.ReasonForLeaving,
	}
	archive.ExitSurveyCompleted = true

	if err := s.archiveRepo.Update(ctx, archive); err != nil {
		return nil, errors.Wrap(err, "failed to update exit survey")
	}

	return archive, nil
}

// ListArchives retrieves all archive records, most recent first.
func (s *checkoutService) ListArchives(ctx context.Context) ([]*entity.ResidentArchive, error) {
	archives, err := s.archiveRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list archives")
	}

	return archives, nil
}
