// Package impl contains the concrete use case implementations.
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

type registrationService struct {
	txManager     repository.TransactionManager
	residentRepo  repository.ResidentRepository
	credentialSvc service.CredentialService
	hasher        service.PasswordHasher
	publisher     service.EventPublisher
	roomCache     service.RoomCache
	logger        *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ResidentRepo  repository.ResidentRepository
	CredentialSvc service.CredentialService
	Hasher        service.PasswordHasher
	Publisher     service.EventPublisher
	RoomCache     service.RoomCache
	Logger        *slog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager:     params.TxManager,
		residentRepo:  params.ResidentRepo,
		credentialSvc: params.CredentialSvc,
		hasher:        params.Hasher,
		publisher:     params.Publisher,
		roomCache:     params.RoomCache,
		logger:        params.Logger,
	}
}

// Register creates a Pending resident from a public registration form.
func (s *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Resident, error) {
	resident := &entity.Resident{
		ID:                 uuid.New(),
		Name:               input.Name,
		Email:              input.Email,
		Phone:              input.Phone,
		Role:               entity.RoleResident,
		RegistrationStatus: entity.RegistrationPending,
		IsActive:           false,
	}

	if err := s.residentRepo.Create(ctx, resident); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrResidentAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create registration")
	}

	return resident, nil
}

// ListPending retrieves registrations awaiting an admin decision.
func (s *registrationService) ListPending(ctx context.Context) ([]*entity.Resident, error) {
	residents, err := s.residentRepo.List(ctx, repository.ResidentFilter{
		RegistrationStatus: entity.RegistrationPending,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending registrations")
	}

	return residents, nil
}

// Confirm approves a pending registration. The whole decision runs in one
// transaction with the room row locked, so two concurrent approvals against
// the same room serialize: the second sees the occupancy the first wrote.
func (s *registrationService) Confirm(ctx context.Context, registrationID uuid.UUID, input *usecase.ConfirmInput) (*usecase.ConfirmResult, error) {
	var (
		result    usecase.ConfirmResult
		approved  *entity.Resident
		tempPass  string
		eventRoom string
	)

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		residentRepo := f.NewResidentRepository()
		roomRepo := f.NewRoomRepository()

		resident, err := residentRepo.FindByID(ctx, registrationID)
		if err != nil {
			if errors.Is(err, repository.ErrResidentNotFound) {
				return domainerrors.ErrResidentNotFound
			}

			return errors.Wrap(err, "failed to load registration")
		}

		if resident.RegistrationStatus.IsTerminal() {
			return domainerrors.ErrRegistrationProcessed
		}

		room, err := roomRepo.FindByIDForUpdate(ctx, input.RoomID)
		if err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return domainerrors.ErrRoomNotFound
			}

			return errors.Wrap(err, "failed to lock room")
		}

		if !room.IsActive {
			return domainerrors.ErrRoomNotFound.WrapMessage("room is not active")
		}
		if room.IsFull() {
			return domainerrors.ErrRoomFull
		}

		occupied, err := roomRepo.OccupiedBeds(ctx, room.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load occupied beds")
		}

		bedNumber, ok := entity.LowestFreeBed(room.Capacity, occupied)
		if !ok {
			return domainerrors.ErrNoBedAvailable
		}

		tempPass, err = s.credentialSvc.GenerateTempPassword()
		if err != nil {
			return errors.Wrap(err, "failed to generate temporary password")
		}

		passwordHash, err := s.hasher.Hash(tempPass)
		if err != nil {
			return errors.Wrap(err, "failed to hash temporary password")
		}

		moveIn := input.CheckInDate
		if moveIn.IsZero() {
			moveIn = time.Now()
		}

		resident.PGID = s.credentialSvc.GeneratePGID(resident.Email)
		resident.PasswordHash = passwordHash
		resident.RegistrationStatus = entity.RegistrationApproved
		resident.RoomID = &room.ID
		resident.BedNumber = &bedNumber
		resident.MoveInDate = &moveIn
		resident.IsActive = true
		resident.KeyIssued = input.KeyIssued
		if input.Deposit != nil {
			resident.DepositFees = input.Deposit.Amount
		}

		if err := residentRepo.Update(ctx, resident); err != nil {
			return errors.Wrap(err, "failed to persist approval")
		}

		// Room status is an admin-managed field and is deliberately not
		// flipped to "occupied" when the room fills up; only occupancy moves.
		room.CurrentOccupancy++
		if err := roomRepo.Update(ctx, room); err != nil {
			return errors.Wrap(err, "failed to increment room occupancy")
		}

		if input.Deposit != nil {
			payment := &entity.Payment{
				ID:            uuid.New(),
				ResidentID:    resident.ID,
				Amount:        input.Deposit.Amount,
				PaymentDate:   time.Now(),
				Status:        entity.PaymentStatusPaid,
				Method:        input.Deposit.Method,
				ReceiptNumber: generateReceiptNumber(),
				TransactionID: input.Deposit.TransactionID,
				Remarks:       input.Deposit.Remarks,
				IsDeposit:     true,
			}
			if err := f.NewPaymentRepository().Create(ctx, payment); err != nil {
				return errors.Wrap(err, "failed to record deposit payment")
			}
		}

		approved = resident
		eventRoom = room.RoomNumber
		result = usecase.ConfirmResult{
			Resident:  resident,
			BedNumber: bedNumber,
			PGID:      resident.PGID,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateRoomCache(ctx)

	// Credential delivery is asynchronous: a publish failure must not undo a
	// committed approval. The admin can re-send credentials later.
	event := &service.HostelEvent{
		Type:         service.EventResidentApproved,
		ResidentID:   approved.ID.String(),
		ResidentName: approved.Name,
		Email:        approved.Email,
		PGID:         approved.PGID,
		TempPassword: tempPass,
		RoomNumber:   eventRoom,
		BedNumber:    result.BedNumber,
	}
	if err := s.publisher.PublishHostelEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to publish approval event",
			slog.String("residentId", approved.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return &result, nil
}

// Reject marks a pending registration as rejected. Terminal.
func (s *registrationService) Reject(ctx context.Context, registrationID uuid.UUID, reason string) error {
	resident, err := s.residentRepo.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return domainerrors.ErrResidentNotFound
		}

		return errors.Wrap(err, "failed to load registration")
	}

	if resident.RegistrationStatus.IsTerminal() {
		return domainerrors.ErrRegistrationProcessed
	}

	resident.RegistrationStatus = entity.RegistrationRejected
	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return errors.Wrap(err, "failed to persist rejection")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "registration rejected",
		slog.String("residentId", resident.ID.String()),
		slog.String("reason", reason),
	)

	return nil
}

// invalidateRoomCache drops the cached available-rooms listing after an
// occupancy change. Cache errors are logged and swallowed.
func (s *registrationService) invalidateRoomCache(ctx context.Context) {
	if err := s.roomCache.Invalidate(ctx); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to invalidate room cache",
			slog.String("error", err.Error()),
		)
	}
}
